// Package render draws documents and field trees as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maksimkurb/keen-console/src/internal/configdoc"
	"github.com/maksimkurb/keen-console/src/internal/formview"
	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

const (
	indentUnit   = "  "
	openMarker   = "▾ "
	closedMarker = "▸ "
	leafMarker   = "  "
	// maxInline is the longest string value shown on the field line.
	maxInline = 60
)

// Options controls rendering.
type Options struct {
	// Color enables ANSI styling.
	Color bool
	// Paths appends the path of every field.
	Paths bool
}

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	muted    lipgloss.Style
	static   lipgloss.Style
	errorMsg lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		static:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Document renders a header line with the document state followed by the
// form of a valid document, the parse error of an invalid one, or a hint for
// an empty one.
func Document(title string, doc *configdoc.Document, opts Options) string {
	st := newStyles(opts.Color)

	var b strings.Builder
	b.WriteString(st.title.Render(title))
	b.WriteString(st.muted.Render(fmt.Sprintf(" (%s, revision %d)", doc.State(), doc.Revision())))
	b.WriteString("\n")

	switch doc.State() {
	case configdoc.StateValid:
		b.WriteString(Form(doc.Form(), opts))
	case configdoc.StateInvalid:
		b.WriteString(st.errorMsg.Render("error: " + doc.Message()))
		b.WriteString("\n")
	default:
		b.WriteString(st.muted.Render("no configuration"))
		b.WriteString("\n")
	}
	return b.String()
}

// Form renders the visible fields below root, one per line. Children of
// closed containers are not shown.
func Form(root *formview.Field, opts Options) string {
	if root == nil {
		return ""
	}
	st := newStyles(opts.Color)

	var b strings.Builder
	var arrays []*formview.Field // open arrays awaiting their add-item line
	closeArrays := func(depth int) {
		for len(arrays) > 0 && arrays[len(arrays)-1].Depth >= depth {
			writeAddItem(&b, arrays[len(arrays)-1], st)
			arrays = arrays[:len(arrays)-1]
		}
	}

	for _, child := range root.Children {
		for _, f := range formview.Visible(child) {
			closeArrays(f.Depth)
			writeField(&b, f, st, opts)
			if f.Open && f.CanAddItem {
				arrays = append(arrays, f)
			}
		}
	}
	closeArrays(0)
	return b.String()
}

func writeField(b *strings.Builder, f *formview.Field, st styles, opts Options) {
	indent := strings.Repeat(indentUnit, f.Depth-1)

	b.WriteString(indent)
	switch {
	case f.IsStatic():
		b.WriteString(leafMarker)
	case f.Class.IsContainer() && f.Open:
		b.WriteString(openMarker)
	case f.Class.IsContainer():
		b.WriteString(closedMarker)
	default:
		b.WriteString(leafMarker)
	}
	b.WriteString(st.label.Render(f.Title))

	switch {
	case f.IsStatic():
		b.WriteString(":")
	case f.Class.IsContainer():
		b.WriteString(" " + st.muted.Render(summary(f.Value)))
	default:
		b.WriteString(": " + st.value.Render(leafText(f)))
		if f.Annotation != "" {
			b.WriteString(" " + st.muted.Render(f.Annotation))
		}
	}
	if opts.Paths {
		b.WriteString(" " + st.muted.Render(f.Path.String()))
	}
	b.WriteString("\n")

	if f.IsStatic() {
		for _, line := range strings.Split(f.Static, "\n") {
			b.WriteString(indent + indentUnit + indentUnit)
			b.WriteString(st.static.Render(line))
			b.WriteString("\n")
		}
	}
}

func writeAddItem(b *strings.Builder, f *formview.Field, st styles) {
	b.WriteString(strings.Repeat(indentUnit, f.Depth) + leafMarker)
	b.WriteString(st.muted.Render("+ add item"))
	b.WriteString("\n")
}

func summary(v jsonvalue.Value) string {
	n := v.Len()
	switch v.Kind() {
	case jsonvalue.Array:
		if n == 1 {
			return "[1 item]"
		}
		return fmt.Sprintf("[%d items]", n)
	default:
		if n == 1 {
			return "{1 field}"
		}
		return fmt.Sprintf("{%d fields}", n)
	}
}

func leafText(f *formview.Field) string {
	switch f.Class {
	case formview.LeafNull:
		return `""`
	case formview.LeafString:
		s := f.Value.Str()
		if f.Control == formview.ControlTextarea {
			if i := strings.IndexAny(s, "\r\n"); i >= 0 {
				s = s[:i] + "…"
			}
		}
		if r := []rune(s); len(r) > maxInline {
			s = string(r[:maxInline]) + "…"
		}
		return string(jsonvalue.Marshal(jsonvalue.StringValue(s)))
	default:
		return string(jsonvalue.Marshal(f.Value))
	}
}
