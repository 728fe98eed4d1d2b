package formview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/keen-console/src/internal/jsontree"
	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text      string
		want      Class
		container bool
	}{
		{`null`, LeafNull, false},
		{`true`, LeafBool, false},
		{`-1.5e3`, LeafNumber, false},
		{`"x"`, LeafString, false},
		{`[]`, ContainerArray, true},
		{`{}`, ContainerObject, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Classify(jsonvalue.MustParse(tt.text))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.container, got.IsContainer())
			assert.Equal(t, !tt.container, got.IsLeaf())
		})
	}
}

func TestBuild_BooleanAndArray(t *testing.T) {
	root := Build(jsonvalue.MustParse(`{"enable": true, "servers": ["1.1.1.1"]}`))

	require.Len(t, root.Children, 2)

	enable := root.Children[0]
	assert.Equal(t, "enable", enable.Label)
	assert.Equal(t, `["enable"]`, enable.Path.String())
	assert.Equal(t, LeafBool, enable.Class)
	assert.Equal(t, ControlToggle, enable.Control)
	assert.True(t, enable.Value.Bool())

	servers := root.Children[1]
	assert.Equal(t, `["servers"]`, servers.Path.String())
	assert.Equal(t, ContainerArray, servers.Class)
	assert.True(t, servers.CanAddItem)
	require.Len(t, servers.Children, 1)

	first := servers.Children[0]
	assert.Equal(t, `["servers",0]`, first.Path.String())
	assert.Equal(t, LeafString, first.Class)
	assert.Equal(t, "1.1.1.1", first.Value.Str())
	assert.Equal(t, "[0]", first.Label)
	assert.Equal(t, "Item 1", first.Title)
	assert.True(t, first.CanRemove)
}

func TestBuild_DepthIncreasesByOne(t *testing.T) {
	root := Build(jsonvalue.MustParse(`{"a":{"b":[{"c":1}]}}`))

	Walk(root, func(f *Field) bool {
		assert.Equal(t, len(f.Path), f.Depth, f.Path.String())
		for _, c := range f.Children {
			assert.Equal(t, f.Depth+1, c.Depth)
		}
		return true
	})
}

func TestBuild_OpenDefaults(t *testing.T) {
	root := Build(jsonvalue.MustParse(`{"a":{"b":{"c":{}}}}`))

	a := Find(root, jsontree.NewPath("a"))
	b := Find(root, jsontree.NewPath("a", "b"))
	c := Find(root, jsontree.NewPath("a", "b", "c"))
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.NotNil(t, c)

	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, 1, a.Depth)
	assert.True(t, root.Open)
	assert.True(t, a.Open)
	assert.False(t, b.Open)
	assert.False(t, c.Open)
}

func TestBuild_Toggles(t *testing.T) {
	toggles := map[string]bool{
		`["a"]`:     false,
		`["a","b"]`: true,
	}
	root := Build(jsonvalue.MustParse(`{"a":{"b":{"c":1}}}`), WithToggles(toggles))

	assert.False(t, Find(root, jsontree.NewPath("a")).Open)
	assert.True(t, Find(root, jsontree.NewPath("a", "b")).Open)

	visible := Visible(root)
	require.Len(t, visible, 2)
	assert.Equal(t, "a", visible[1].Label)
}

func TestBuild_DepthCeiling(t *testing.T) {
	text := `{"l1":{"l2":{"l3":{"l4":{"l5":{"l6":[1,2,3]}}}}}}`
	root := Build(jsonvalue.MustParse(text))

	ceiling := Find(root, jsontree.NewPath("l1", "l2", "l3", "l4"))
	require.NotNil(t, ceiling)
	assert.Equal(t, MaxDepth, ceiling.Depth)
	assert.True(t, ceiling.IsStatic())
	assert.Empty(t, ceiling.Children)
	assert.Contains(t, ceiling.Static, `"l6": [`)

	assert.Nil(t, Find(root, jsontree.NewPath("l1", "l2", "l3", "l4", "l5")))

	maxSeen := 0
	Walk(root, func(f *Field) bool {
		if f.Depth > maxSeen {
			maxSeen = f.Depth
		}
		return true
	})
	assert.Equal(t, MaxDepth, maxSeen)
}

func TestBuild_DeepNestingDoesNotRecurse(t *testing.T) {
	text := strings.Repeat(`{"x":`, 500) + "1" + strings.Repeat("}", 500)
	root := Build(jsonvalue.MustParse(text))

	leaf := Find(root, jsontree.NewPath("x", "x", "x", "x"))
	require.NotNil(t, leaf)
	assert.True(t, leaf.IsStatic())
}

func TestBuild_StaticLeafAtCeiling(t *testing.T) {
	root := Build(jsonvalue.MustParse(`{"a":{"b":{"c":{"d":"deep"}}}}`))

	d := Find(root, jsontree.NewPath("a", "b", "c", "d"))
	require.NotNil(t, d)
	assert.True(t, d.IsStatic())
	assert.Equal(t, `"deep"`, d.Static)

	_, err := CommitText(d, "changed")
	assert.Error(t, err)
}

func TestBuild_Controls(t *testing.T) {
	long := strings.Repeat("a", 101)
	exact := strings.Repeat("b", 100)
	root := Build(jsonvalue.MustParse(`{
  "n": 5,
  "s": "short",
  "multi": "line1\nline2",
  "long": "` + long + `",
  "exact": "` + exact + `",
  "nothing": null,
  "obj": {}
}`))

	want := map[string]Control{
		"n":       ControlNumber,
		"s":       ControlText,
		"multi":   ControlTextarea,
		"long":    ControlTextarea,
		"exact":   ControlText,
		"nothing": ControlText,
		"obj":     ControlGroup,
	}
	for key, control := range want {
		f := Find(root, jsontree.NewPath(key))
		require.NotNil(t, f, key)
		assert.Equal(t, control, f.Control, key)
	}

	assert.Equal(t, NullAnnotation, Find(root, jsontree.NewPath("nothing")).Annotation)
}

func TestBuild_KeepsMemberOrder(t *testing.T) {
	root := Build(jsonvalue.MustParse(`{"zeta":1,"alpha":2,"mid":3}`))

	var labels []string
	for _, c := range root.Children {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, labels)
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "Upstream Servers", displayTitle("upstream_servers"))
	assert.Equal(t, "Dns Port", displayTitle("dnsPort"))
	assert.Equal(t, "Enable", displayTitle("enable"))
}
