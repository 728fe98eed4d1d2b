// Package api provides the REST API of the console.
//
// The API edits app configurations through sessions. A client opens a
// session for an app, changes the document with raw text replacements or
// structural edits, and saves it back to the store:
//   - POST /api/v1/apps/{app}/sessions opens a session
//   - PUT /api/v1/sessions/{id}/text replaces the raw text
//   - POST /api/v1/sessions/{id}/edits applies a structural or form edit
//   - POST /api/v1/sessions/{id}/save submits the text to the store
//
// Every session response carries the document state, its text and, for a
// valid document, the form field tree.
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "conflict",
//	    "message": "Human-readable error message",
//	    "details": { "code": "RANGE_ERROR" }
//	  }
//	}
package api
