package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/keen-console/src/internal/configdoc"
	"github.com/maksimkurb/keen-console/src/internal/formview"
	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

func TestForm(t *testing.T) {
	root := jsonvalue.MustParse(`{
		"enable": true,
		"dnsPort": 53,
		"comment": null,
		"networks": ["10.0.0.0/8"],
		"nested": {"inner": {"deep": 1}}
	}`)

	out := Form(formview.Build(root), Options{})

	want := strings.Join([]string{
		`  Enable: true`,
		`  Dns Port: 53`,
		`  Comment: "" (null)`,
		`▾ Networks [1 item]`,
		`    Item 1: "10.0.0.0/8"`,
		`    + add item`,
		`▾ Nested {1 field}`,
		`  ▸ Inner {1 field}`,
		``,
	}, "\n")
	assert.Equal(t, want, out)
}

func TestForm_StaticBelowMaxDepth(t *testing.T) {
	root := jsonvalue.MustParse(`{"a":{"b":{"c":{"d":[1]}}}}`)
	toggles := map[string]bool{`["a","b"]`: true, `["a","b","c"]`: true}

	out := Form(formview.Build(root, formview.WithToggles(toggles)), Options{})

	assert.Contains(t, out, "    ▾ C {1 field}\n")
	assert.Contains(t, out, "        D:\n")
	assert.Contains(t, out, "          [\n            1\n          ]\n")
}

func TestForm_NestedArraysCloseInOrder(t *testing.T) {
	root := jsonvalue.MustParse(`{"groups":[{"hosts":["a"]}],"port":1}`)
	toggles := map[string]bool{`["groups",0]`: true, `["groups",0,"hosts"]`: true}

	out := Form(formview.Build(root, formview.WithToggles(toggles)), Options{})

	inner := strings.Index(out, "\n        + add item\n")
	outer := strings.Index(out, "\n    + add item\n")
	port := strings.Index(out, "\n  Port: 1\n")
	require.NotEqual(t, -1, inner, out)
	require.NotEqual(t, -1, outer, out)
	require.NotEqual(t, -1, port, out)
	assert.Less(t, inner, outer)
	assert.Less(t, outer, port)
	assert.Contains(t, out, "    ▾ Hosts [1 item]\n")
}

func TestForm_Paths(t *testing.T) {
	out := Form(formview.Build(jsonvalue.MustParse(`{"a":1}`)), Options{Paths: true})
	assert.Equal(t, "  A: 1 [\"a\"]\n", out)
}

func TestForm_LongStringsAreShortened(t *testing.T) {
	long := strings.Repeat("x", 200)
	out := Form(formview.Build(jsonvalue.ObjectValue(jsonvalue.Member{Key: "s", Value: jsonvalue.StringValue(long)})), Options{})
	assert.Contains(t, out, strings.Repeat("x", maxInline)+"…")

	out = Form(formview.Build(jsonvalue.MustParse(`{"s":"line one\nline two"}`)), Options{})
	assert.Equal(t, "  S: \"line one…\"\n", out)
}

func TestDocument(t *testing.T) {
	out := Document("Split Horizon", configdoc.Open(`{"a":1}`), Options{})
	assert.Equal(t, "Split Horizon (valid, revision 0)\n  A: 1\n", out)

	out = Document("Split Horizon", configdoc.Open(`{"a":`), Options{})
	require.True(t, strings.HasPrefix(out, "Split Horizon (invalid, revision 0)\nerror: "))

	out = Document("Split Horizon", configdoc.Open(""), Options{})
	assert.Equal(t, "Split Horizon (empty, revision 0)\nno configuration\n", out)
}

func TestColorDoesNotChangeText(t *testing.T) {
	doc := configdoc.Open(`{"a":{"b":[true]}}`)
	plain := Document("App", doc, Options{})
	colored := Document("App", doc, Options{Color: true})

	// styles may or may not emit escapes depending on the terminal; the
	// visible text is the same
	assert.Equal(t, strings.Count(plain, "\n"), strings.Count(colored, "\n"))
	assert.Contains(t, colored, "App")
}
