package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// SyntaxError is returned by Parse for text that is not a single valid JSON value.
type SyntaxError struct {
	Msg    string
	Offset int64
}

func (e *SyntaxError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("invalid JSON at offset %d: %s", e.Offset, e.Msg)
	}
	return "invalid JSON: " + e.Msg
}

// Parse parses text holding exactly one JSON value. Object member order is
// kept as written and number literals are kept verbatim. Text that is not
// valid UTF-8 is rejected, since it could not be serialized back unchanged.
func Parse(text string) (Value, error) {
	if strings.TrimSpace(text) == "" {
		return Value{}, &SyntaxError{Msg: "input is empty"}
	}
	if !utf8.ValidString(text) {
		return Value{}, &SyntaxError{Msg: "invalid UTF-8", Offset: int64(invalidUTF8Offset(text))}
	}
	if !gjson.Valid(text) {
		return Value{}, describeSyntaxError(text)
	}
	return fromResult(gjson.Parse(text)), nil
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence in text.
func invalidUTF8Offset(text string) int {
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				return i
			}
		}
	}
	return len(text)
}

// MustParse is like Parse but panics on error. Intended for tests and
// static literals.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.False:
		return BoolValue(false)
	case gjson.True:
		return BoolValue(true)
	case gjson.Number:
		return Value{kind: Number, text: strings.TrimSpace(r.Raw)}
	case gjson.String:
		return StringValue(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			items := make([]Value, 0)
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, fromResult(item))
				return true
			})
			return Value{kind: Array, items: items}
		}
		members := make([]Member, 0)
		r.ForEach(func(key, item gjson.Result) bool {
			members = append(members, Member{Key: key.Str, Value: fromResult(item)})
			return true
		})
		return ObjectValue(members...)
	}
	return Value{}
}

// describeSyntaxError builds a positioned message for text gjson rejected.
func describeSyntaxError(text string) error {
	var probe any
	err := json.Unmarshal([]byte(text), &probe)

	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		return &SyntaxError{Msg: syntaxErr.Error(), Offset: syntaxErr.Offset}
	case err != nil:
		return &SyntaxError{Msg: err.Error()}
	}
	return &SyntaxError{Msg: "unexpected data after top-level value"}
}
