package jsonvalue

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/pretty"
)

// indentOptions keeps member order and puts every array element on its own
// line (Width 0 disables pretty's single-line arrays).
var indentOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Marshal returns the compact JSON encoding of v.
func Marshal(v Value) []byte {
	return appendValue(nil, v)
}

// MarshalIndent returns the JSON encoding of v indented with two spaces,
// without a trailing newline.
func MarshalIndent(v Value) []byte {
	out := pretty.PrettyOptions(Marshal(v), indentOptions)
	return bytes.TrimRight(out, "\n")
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return Marshal(v), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) String() string {
	return string(Marshal(v))
}

func appendValue(buf []byte, v Value) []byte {
	switch v.kind {
	case Bool:
		if v.boolean {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case Number:
		return append(buf, v.text...)
	case String:
		return appendString(buf, v.text)
	case Array:
		buf = append(buf, '[')
		for i, item := range v.items {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendValue(buf, item)
		}
		return append(buf, ']')
	case Object:
		buf = append(buf, '{')
		for i, m := range v.members {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, m.Key)
			buf = append(buf, ':')
			buf = appendValue(buf, m.Value)
		}
		return append(buf, '}')
	}
	return append(buf, "null"...)
}

func appendString(buf []byte, s string) []byte {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	// encoding a string never fails
	_ = enc.Encode(s)
	return append(buf, bytes.TrimRight(b.Bytes(), "\n")...)
}
