package jsontree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

// Key is one component of a Path: an object member name or an array index.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// Member returns a key addressing the object member name.
func Member(name string) Key {
	return Key{name: name}
}

// Element returns a key addressing array index i.
func Element(i int) Key {
	return Key{index: i, isIndex: true}
}

func (k Key) IsIndex() bool { return k.isIndex }

// Name returns the member name; empty for index keys.
func (k Key) Name() string { return k.name }

// Index returns the array index; 0 for member keys.
func (k Key) Index() int { return k.index }

func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}
	return jsonvalue.StringValue(k.name).String()
}

// Path locates a node inside a JSON value. The empty path is the root.
type Path []Key

// NewPath builds a path from string (member) and int (index) components.
// It panics on any other component type.
func NewPath(keys ...any) Path {
	p := make(Path, 0, len(keys))
	for _, k := range keys {
		switch k := k.(type) {
		case string:
			p = append(p, Member(k))
		case int:
			p = append(p, Element(k))
		case Key:
			p = append(p, k)
		default:
			panic(fmt.Sprintf("jsontree: unsupported path component %T", k))
		}
	}
	return p
}

// Append returns a new path with k added. The receiver is not modified.
func (p Path) Append(k Key) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, k)
}

// Parent returns the path without its last component.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return append(Path{}, p[:len(p)-1]...)
}

// Last returns the last component. It reports false for the root path.
func (p Path) Last() (Key, bool) {
	if len(p) == 0 {
		return Key{}, false
	}
	return p[len(p)-1], true
}

// Equal reports whether both paths address the same location.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String returns the path as a JSON array, e.g. ["servers",0].
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, k := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParsePath parses the JSON array form produced by Path.String.
func ParsePath(s string) (Path, error) {
	v, err := jsonvalue.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	return pathFromValue(v)
}

func pathFromValue(v jsonvalue.Value) (Path, error) {
	if v.Kind() != jsonvalue.Array {
		return nil, fmt.Errorf("invalid path: expected an array, got %s", v.Kind())
	}
	p := make(Path, 0, v.Len())
	for i, item := range v.Items() {
		switch item.Kind() {
		case jsonvalue.String:
			p = append(p, Member(item.Str()))
		case jsonvalue.Number:
			idx, err := strconv.Atoi(item.Literal())
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("invalid path: component %d is not a non-negative integer index", i)
			}
			p = append(p, Element(idx))
		default:
			return nil, fmt.Errorf("invalid path: component %d must be a string or an index, got %s", i, item.Kind())
		}
	}
	return p, nil
}

// MarshalJSON implements json.Marshaler.
func (p Path) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Path) UnmarshalJSON(data []byte) error {
	parsed, err := ParsePath(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
