package api

import (
	"encoding/json"

	"github.com/maksimkurb/keen-console/src/internal/jsontree"
	"github.com/maksimkurb/keen-console/src/internal/probe"
	"github.com/maksimkurb/keen-console/src/internal/session"
)

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// AppsResponse lists the apps known to the store.
type AppsResponse struct {
	Apps []string `json:"apps"`
}

// SessionsResponse lists open sessions without their forms.
type SessionsResponse struct {
	Sessions []session.View `json:"sessions"`
}

// TextRequest replaces the raw text of a session.
type TextRequest struct {
	Text *string `json:"text" validate:"required"`
}

// Edit operations accepted by the edits endpoint in addition to the
// jsontree operations.
const (
	EditOpCommit     = "commit"
	EditOpAddItem    = "add_item"
	EditOpRemoveItem = "remove_item"
)

// EditRequest is one change to a session document.
//
// The set, insert and remove operations are structural edits addressed by
// path. The commit, add_item and remove_item operations act on the form
// field at path: commit coerces input to the field's type.
type EditRequest struct {
	Op    string          `json:"op" validate:"required,oneof=set insert remove commit add_item remove_item"`
	Path  jsontree.Path   `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
	Index *int            `json:"index,omitempty" validate:"omitempty,gte=0"`
	Input *string         `json:"input,omitempty"`
}

// ToggleRequest expands or collapses a container in the session form.
type ToggleRequest struct {
	Path jsontree.Path `json:"path"`
	Open *bool         `json:"open" validate:"required"`
}

// StatusResponse returns console status information.
type StatusResponse struct {
	Version       VersionInfo `json:"version"`
	Uptime        string      `json:"uptime"`
	StoreDriver   string      `json:"store_driver"`
	ServerVersion string      `json:"server_version,omitempty"`
	Sessions      int         `json:"sessions"`
	DNS           *DNSStatus  `json:"dns,omitempty"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// DNSStatus is the result of probing the DNS server.
type DNSStatus struct {
	probe.Result
	Error string `json:"error,omitempty"`
}
