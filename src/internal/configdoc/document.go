// Package configdoc keeps an app configuration as JSON text together with
// the tree parsed from it.
//
// The text is authoritative. Every change, whether a raw-text replacement or
// a structural edit, ends with the text being replaced and the parsed state
// derived from it again by a full parse.
package configdoc

import (
	stderrors "errors"
	"strings"

	"github.com/maksimkurb/keen-console/src/internal/errors"
	"github.com/maksimkurb/keen-console/src/internal/formview"
	"github.com/maksimkurb/keen-console/src/internal/jsontree"
	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

// State is the parse state of a document.
type State int

const (
	// StateEmpty means there is no configuration: the text is blank or
	// contains only comment lines.
	StateEmpty State = iota
	// StateValid means the text is a JSON object.
	StateValid
	// StateInvalid means the text is not JSON, or is JSON but not an object.
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const notAnObjectMessage = "configuration must be a JSON object"

// Document holds configuration text and the state derived from it.
// A Document is not safe for concurrent use.
type Document struct {
	text     string
	state    State
	root     jsonvalue.Value
	message  string
	revision uint64
}

// Open returns a document for text loaded from a store. Valid text is
// re-indented once so that later structural edits produce stable diffs.
func Open(text string) *Document {
	d := &Document{}
	d.replace(text)
	if d.state == StateValid {
		d.text = string(jsonvalue.MarshalIndent(d.root))
	}
	return d
}

// SetText replaces the text verbatim, as typed into a raw editor.
func (d *Document) SetText(text string) {
	d.replace(text)
	d.revision++
}

// Apply performs a structural edit and re-serializes the document. It fails
// unless the document is valid; on failure the document is unchanged.
func (d *Document) Apply(e jsontree.Edit) error {
	if d.state != StateValid {
		return errors.NewParseError("structural edits need a valid configuration, edit the raw text instead", nil)
	}

	root, err := jsontree.Apply(d.root, e)
	if err != nil {
		return editError(e, err)
	}
	if root.Kind() != jsonvalue.Object {
		return errors.New(errors.ErrCodeType, notAnObjectMessage)
	}

	d.replace(string(jsonvalue.MarshalIndent(root)))
	d.revision++
	return nil
}

func editError(e jsontree.Edit, err error) error {
	var (
		addrErr  *jsontree.AddressError
		typeErr  *jsontree.TypeError
		rangeErr *jsontree.RangeError
	)
	msg := "cannot apply " + e.String()
	switch {
	case stderrors.As(err, &addrErr):
		return errors.Wrap(errors.ErrCodeAddress, msg, err)
	case stderrors.As(err, &typeErr):
		return errors.Wrap(errors.ErrCodeType, msg, err)
	case stderrors.As(err, &rangeErr):
		return errors.Wrap(errors.ErrCodeRange, msg, err)
	}
	return errors.NewValidationError(msg, err)
}

func (d *Document) replace(text string) {
	d.text = text
	d.root = jsonvalue.Value{}
	d.message = ""

	if IsBlank(text) {
		d.state = StateEmpty
		return
	}

	root, err := jsonvalue.Parse(text)
	switch {
	case err != nil:
		d.state = StateInvalid
		d.message = err.Error()
	case root.Kind() != jsonvalue.Object:
		d.state = StateInvalid
		d.message = notAnObjectMessage
	default:
		d.state = StateValid
		d.root = root
	}
}

// Text returns the current text.
func (d *Document) Text() string { return d.text }

func (d *Document) State() State { return d.state }

// Root returns the parsed object. It reports false unless the document is valid.
func (d *Document) Root() (jsonvalue.Value, bool) {
	return d.root, d.state == StateValid
}

// Message returns the parse error of an invalid document.
func (d *Document) Message() string { return d.message }

// Revision is incremented on every change of the text after Open.
func (d *Document) Revision() uint64 { return d.revision }

// Form returns the field tree of a valid document, or nil.
func (d *Document) Form(opts ...formview.Option) *formview.Field {
	if d.state != StateValid {
		return nil
	}
	return formview.Build(d.root, opts...)
}

// Serialize returns the indented text of the current tree. For a document
// that was opened or edited structurally it equals Text.
func (d *Document) Serialize() (string, bool) {
	if d.state != StateValid {
		return "", false
	}
	return string(jsonvalue.MarshalIndent(d.root)), true
}

// IsBlank reports whether text holds no configuration: only whitespace,
// blank lines and lines starting with "//" or "#".
func IsBlank(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		return false
	}
	return true
}
