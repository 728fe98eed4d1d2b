package api

import (
	stderrors "errors"
	"net/http"

	"github.com/maksimkurb/keen-console/src/internal/configdoc"
	"github.com/maksimkurb/keen-console/src/internal/session"
	"github.com/maksimkurb/keen-console/src/internal/store"
)

// ListApps returns the apps known to the store.
// GET /api/v1/apps
func (h *Handler) ListApps(w http.ResponseWriter, r *http.Request) {
	apps, err := store.List(r.Context(), h.deps.Store)
	if stderrors.Is(err, store.ErrListUnsupported) {
		WriteNotFound(w, "App listing")
		return
	}
	if err != nil {
		WriteStoreError(w, "Failed to list apps: "+err.Error())
		return
	}
	if apps == nil {
		apps = []string{}
	}
	writeJSONData(w, AppsResponse{Apps: apps})
}

// OpenSession loads the configuration of an app into a new session.
// POST /api/v1/apps/{app}/sessions
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Sessions.Open(r.Context(), urlParam(r, "app"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeCreated(w, s.View(withForm(r)))
}

// ListSessions returns all open sessions without their forms.
// GET /api/v1/sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	list := h.deps.Sessions.List()
	views := make([]session.View, 0, len(list))
	for _, s := range list {
		views = append(views, s.View(false))
	}
	writeJSONData(w, SessionsResponse{Sessions: views})
}

// GetSession returns one session.
// GET /api/v1/sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Sessions.Get(urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONData(w, s.View(withForm(r)))
}

// CloseSession discards a session and its unsaved changes.
// DELETE /api/v1/sessions/{id}
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Sessions.Close(urlParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeNoContent(w)
}

// SetText replaces the raw text of a session.
// PUT /api/v1/sessions/{id}/text
func (h *Handler) SetText(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Sessions.Get(urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var req TextRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}
	if details := validateRequest(req); details != nil {
		WriteValidationError(w, "Invalid request", details)
		return
	}

	_ = s.Do(func(doc *configdoc.Document) error {
		doc.SetText(*req.Text)
		return nil
	})
	writeJSONData(w, s.View(withForm(r)))
}

// Toggle expands or collapses a container of the session form.
// PUT /api/v1/sessions/{id}/toggles
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Sessions.Get(urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var req ToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}
	if details := validateRequest(req); details != nil {
		WriteValidationError(w, "Invalid request", details)
		return
	}

	s.Toggle(req.Path, *req.Open)
	writeJSONData(w, s.View(withForm(r)))
}

// SaveSession submits the session text to the store.
// POST /api/v1/sessions/{id}/save
func (h *Handler) SaveSession(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "id")
	if err := h.deps.Sessions.Save(r.Context(), id); err != nil {
		h.metrics.observeSave(false)
		writeDomainError(w, err)
		return
	}
	h.metrics.observeSave(true)

	s, err := h.deps.Sessions.Get(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONData(w, s.View(withForm(r)))
}
