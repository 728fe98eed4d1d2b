// Package formview turns a JSON value into a tree of typed form fields.
//
// The tree is rebuilt from scratch for every new root value and is never
// edited in place. A field reports changes as jsontree edits addressed by its
// path; see the Commit helpers.
package formview

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/maksimkurb/keen-console/src/internal/jsontree"
	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

const (
	// MaxDepth is the depth at which fields stop being editable and the
	// remaining subtree is shown as pretty-printed text. The root object is
	// depth 0 and its members are depth 1, so a value nested three levels
	// below a top-level member is static.
	MaxDepth = 4

	// openDepth is the depth below which containers start expanded: the root
	// (depth 0) and top-level members (depth 1) are open, deeper containers
	// start closed.
	openDepth = 2

	// NullAnnotation marks a text control standing in for a null value.
	NullAnnotation = "(null)"
)

// Field describes how to render one JSON value.
type Field struct {
	// Label is the member key, or "[i]" for an array element.
	Label string `json:"label"`
	// Title is a human-readable form of Label.
	Title string          `json:"title"`
	Value jsonvalue.Value `json:"value"`
	Path  jsontree.Path   `json:"path"`
	Depth int             `json:"depth"`
	Class Class           `json:"-"`

	Control    Control `json:"control"`
	Annotation string  `json:"annotation,omitempty"`
	Open       bool    `json:"open"`
	// Static holds the indented JSON text of a field at or past MaxDepth.
	Static string `json:"static,omitempty"`

	CanAddItem bool `json:"can_add_item,omitempty"`
	CanRemove  bool `json:"can_remove,omitempty"`

	Children []*Field `json:"children,omitempty"`
}

// Kind returns the class name, used by API consumers.
func (f *Field) Kind() string {
	return f.Class.String()
}

// IsStatic reports whether the field is shown as read-only text.
func (f *Field) IsStatic() bool {
	return f.Control == ControlStatic
}

type buildOptions struct {
	toggles map[string]bool
}

// Option configures Build.
type Option func(*buildOptions)

// WithToggles overrides the default open state of containers. Keys are
// path strings as returned by jsontree.Path.String.
func WithToggles(toggles map[string]bool) Option {
	return func(o *buildOptions) {
		o.toggles = toggles
	}
}

// Build returns the field tree for root. The root itself is depth 0.
func Build(root jsonvalue.Value, opts ...Option) *Field {
	o := &buildOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return build(root, "", "", jsontree.Path{}, 0, false, o)
}

func build(v jsonvalue.Value, label, title string, path jsontree.Path, depth int, inArray bool, o *buildOptions) *Field {
	class := Classify(v)
	f := &Field{
		Label:     label,
		Title:     title,
		Value:     v,
		Path:      path,
		Depth:     depth,
		Class:     class,
		CanRemove: inArray,
	}

	if depth >= MaxDepth {
		f.Control = ControlStatic
		f.Static = string(jsonvalue.MarshalIndent(v))
		f.CanRemove = false
		return f
	}

	f.Control = controlFor(class, v)
	if class == LeafNull {
		f.Annotation = NullAnnotation
	}
	if !class.IsContainer() {
		return f
	}

	f.Open = depth < openDepth
	if open, ok := o.toggles[path.String()]; ok {
		f.Open = open
	}

	switch class {
	case ContainerObject:
		for _, m := range v.Members() {
			f.Children = append(f.Children,
				build(m.Value, m.Key, displayTitle(m.Key), path.Append(jsontree.Member(m.Key)), depth+1, false, o))
		}
	case ContainerArray:
		f.CanAddItem = true
		for i, item := range v.Items() {
			f.Children = append(f.Children,
				build(item, fmt.Sprintf("[%d]", i), fmt.Sprintf("Item %d", i+1), path.Append(jsontree.Element(i)), depth+1, true, o))
		}
	}
	return f
}

// displayTitle turns a config key such as "upstream_servers" or "dnsPort"
// into "Upstream Servers" or "Dns Port".
func displayTitle(key string) string {
	words := strings.Fields(strcase.ToDelimited(key, ' '))
	if len(words) == 0 {
		return key
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Walk visits f and all of its built descendants depth-first, including the
// children of closed containers. Returning false from fn skips the subtree.
func Walk(f *Field, fn func(*Field) bool) {
	if f == nil || !fn(f) {
		return
	}
	for _, c := range f.Children {
		Walk(c, fn)
	}
}

// Visible returns f and the descendants reachable through open containers,
// in render order.
func Visible(f *Field) []*Field {
	var out []*Field
	Walk(f, func(n *Field) bool {
		out = append(out, n)
		return n.Open
	})
	return out
}

// Find returns the field at path, or nil if no field was built for it.
func Find(root *Field, path jsontree.Path) *Field {
	var found *Field
	Walk(root, func(n *Field) bool {
		if found != nil {
			return false
		}
		if n.Path.Equal(path) {
			found = n
			return false
		}
		return len(n.Path) < len(path)
	})
	return found
}
