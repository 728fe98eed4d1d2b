package api

import (
	"net/http"

	"github.com/maksimkurb/keen-console/src/internal/configdoc"
	"github.com/maksimkurb/keen-console/src/internal/errors"
	"github.com/maksimkurb/keen-console/src/internal/formview"
	"github.com/maksimkurb/keen-console/src/internal/jsontree"
	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

// ApplyEdit applies one edit to a session document.
// POST /api/v1/sessions/{id}/edits
func (h *Handler) ApplyEdit(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Sessions.Get(urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var req EditRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}
	if details := validateRequest(req); details != nil {
		WriteValidationError(w, "Invalid request", details)
		return
	}

	err = s.Do(func(doc *configdoc.Document) error {
		edit, err := buildEdit(doc, req)
		if err != nil {
			return err
		}
		return doc.Apply(edit)
	})
	h.metrics.observeEdit(req.Op, err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONData(w, s.View(withForm(r)))
}

// buildEdit turns a request into a jsontree edit against the current
// document.
func buildEdit(doc *configdoc.Document, req EditRequest) (jsontree.Edit, error) {
	switch req.Op {
	case string(jsontree.OpSet), string(jsontree.OpInsert):
		if len(req.Value) == 0 {
			return jsontree.Edit{}, errors.NewValidationError("value is required for "+req.Op, nil)
		}
		v, err := jsonvalue.Parse(string(req.Value))
		if err != nil {
			return jsontree.Edit{}, errors.NewValidationError("invalid value", err)
		}
		if req.Op == string(jsontree.OpSet) {
			return jsontree.Set(req.Path, v), nil
		}
		return jsontree.Insert(req.Path, v), nil

	case string(jsontree.OpRemove):
		if req.Index == nil {
			return jsontree.Edit{}, errors.NewValidationError("index is required for remove", nil)
		}
		return jsontree.Remove(req.Path, *req.Index), nil
	}

	form := doc.Form()
	if form == nil {
		return jsontree.Edit{}, errors.NewParseError("form edits need a valid configuration, edit the raw text instead", nil)
	}
	f := formview.Find(form, req.Path)
	if f == nil {
		return jsontree.Edit{}, errors.New(errors.ErrCodeAddress, "no form field at "+req.Path.String())
	}

	var (
		edit jsontree.Edit
		err  error
	)
	switch req.Op {
	case EditOpCommit:
		if req.Input == nil {
			return jsontree.Edit{}, errors.NewValidationError("input is required for commit", nil)
		}
		edit, err = formview.CommitText(f, *req.Input)
	case EditOpAddItem:
		edit, err = formview.AddItem(f)
	case EditOpRemoveItem:
		edit, err = formview.RemoveItem(f)
	default:
		return jsontree.Edit{}, errors.NewValidationError("unknown operation "+req.Op, nil)
	}
	if err != nil {
		return jsontree.Edit{}, errors.NewValidationError("cannot "+req.Op, err)
	}
	return edit, nil
}
