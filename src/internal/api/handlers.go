package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/keen-console/src/internal/probe"
	"github.com/maksimkurb/keen-console/src/internal/session"
	"github.com/maksimkurb/keen-console/src/internal/store"
)

// ProbeFunc checks the DNS server. A nil ProbeFunc skips the check.
type ProbeFunc func(ctx context.Context) (probe.Result, error)

// Dependencies are the services the API handlers work with.
type Dependencies struct {
	Sessions *session.Manager
	Store    store.ConfigStore
	// StoreDriver is reported by the status endpoint.
	StoreDriver string
	Probe       ProbeFunc
	// UIPath is the directory of the web UI; empty disables it.
	UIPath string
}

// Handler manages all API endpoints and dependencies.
type Handler struct {
	deps    Dependencies
	metrics *Metrics
	started time.Time
}

// NewHandler creates a new API handler.
func NewHandler(deps Dependencies, metrics *Metrics) *Handler {
	return &Handler{
		deps:    deps,
		metrics: metrics,
		started: time.Now(),
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeCreated writes a 201 Created response with data.
func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// writeNoContent writes a 204 No Content response.
func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// urlParam returns a path parameter with any percent-encoding removed.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// withForm reports whether the session view should include the form.
func withForm(r *http.Request) bool {
	return r.URL.Query().Get("form") != "false"
}
