package jsontree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathString(t *testing.T) {
	assert.Equal(t, "[]", Path{}.String())
	assert.Equal(t, `["servers",0]`, NewPath("servers", 0).String())
	assert.Equal(t, `["a\"b","<x>"]`, NewPath(`a"b`, "<x>").String())
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath(`["upstreams", 2, "addr"]`)
	require.NoError(t, err)
	assert.True(t, p.Equal(NewPath("upstreams", 2, "addr")))

	for _, bad := range []string{`"servers"`, `[true]`, `[-1]`, `[1.5]`, `[`, `[{"a":1}]`} {
		_, err := ParsePath(bad)
		assert.Error(t, err, bad)
	}
}

func TestPath_AppendDoesNotAlias(t *testing.T) {
	base := make(Path, 0, 4)
	base = append(base, Member("a"))

	left := base.Append(Member("b"))
	right := base.Append(Member("c"))

	assert.Equal(t, `["a","b"]`, left.String())
	assert.Equal(t, `["a","c"]`, right.String())
	assert.Len(t, base, 1)
}

func TestPath_ParentAndLast(t *testing.T) {
	p := NewPath("servers", 1)

	last, ok := p.Last()
	require.True(t, ok)
	assert.True(t, last.IsIndex())
	assert.Equal(t, 1, last.Index())
	assert.Equal(t, `["servers"]`, p.Parent().String())

	_, ok = Path{}.Last()
	assert.False(t, ok)
	assert.Empty(t, Path{}.Parent())
}

func TestPath_JSON(t *testing.T) {
	p := NewPath("x", 3)
	data, err := p.MarshalJSON()
	require.NoError(t, err)

	var back Path
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, p.Equal(back))
}

func TestNewPath_PanicsOnUnsupported(t *testing.T) {
	assert.Panics(t, func() { NewPath(1.5) })
}
