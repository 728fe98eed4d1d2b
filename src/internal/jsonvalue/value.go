package jsonvalue

import (
	"math"
	"strconv"
)

// Kind is the JSON type of a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var kindNames = map[Kind]string{
	Null:   "null",
	Bool:   "boolean",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON value. The zero Value is null.
//
// Containers share their backing storage between values derived from each
// other, so a Value must never be modified after it was built. All "With"
// methods return a new Value and leave the receiver untouched.
type Value struct {
	kind    Kind
	boolean bool
	// text holds string contents or the literal text of a number
	text    string
	items   []Value
	members []Member
}

// NullValue returns the JSON null.
func NullValue() Value {
	return Value{}
}

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value {
	return Value{kind: Bool, boolean: b}
}

// StringValue returns a JSON string.
func StringValue(s string) Value {
	return Value{kind: String, text: s}
}

// IntValue returns a JSON number holding an integer.
func IntValue(i int64) Value {
	return Value{kind: Number, text: strconv.FormatInt(i, 10)}
}

// FloatValue returns a JSON number. Non-finite numbers are stored as 0.
func FloatValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return IntValue(0)
	}
	if math.Abs(f) < 1e21 {
		return Value{kind: Number, text: strconv.FormatFloat(f, 'f', -1, 64)}
	}
	return Value{kind: Number, text: strconv.FormatFloat(f, 'e', -1, 64)}
}

// NumberLiteral returns a JSON number with the given literal text. It reports
// false if the text is not a valid JSON number.
func NumberLiteral(literal string) (Value, bool) {
	if !isNumberLiteral(literal) {
		return Value{}, false
	}
	return Value{kind: Number, text: literal}, true
}

// ArrayValue returns a JSON array holding a copy of items.
func ArrayValue(items ...Value) Value {
	return Value{kind: Array, items: append([]Value{}, items...)}
}

// ObjectValue returns a JSON object with members in the given order. A
// repeated key keeps its first position and its last value.
func ObjectValue(members ...Member) Value {
	v := Value{kind: Object, members: make([]Member, 0, len(members))}
	for _, m := range members {
		if i := v.indexOf(m.Key); i >= 0 {
			v.members[i].Value = m.Value
			continue
		}
		v.members = append(v.members, m)
	}
	return v
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == Null }

// IsContainer reports whether the value is an array or an object.
func (v Value) IsContainer() bool {
	return v.kind == Array || v.kind == Object
}

// Bool returns the boolean value; false for other kinds.
func (v Value) Bool() bool {
	return v.kind == Bool && v.boolean
}

// Str returns the string contents; empty for other kinds.
func (v Value) Str() string {
	if v.kind != String {
		return ""
	}
	return v.text
}

// Literal returns the literal text of a number; empty for other kinds.
func (v Value) Literal() string {
	if v.kind != Number {
		return ""
	}
	return v.text
}

// Float returns the numeric value of a number; 0 for other kinds.
func (v Value) Float() float64 {
	if v.kind != Number {
		return 0
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0
	}
	return f
}

// Len returns the number of elements or members of a container.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	}
	return 0
}

// Index returns the i-th array element. It reports false if v is not an
// array or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != Array || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Items returns a copy of the array elements.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return append([]Value{}, v.items...)
}

// Lookup returns the member value for key.
func (v Value) Lookup(key string) (Value, bool) {
	if i := v.indexOf(key); i >= 0 {
		return v.members[i].Value, true
	}
	return Value{}, false
}

// Members returns a copy of the object members in order.
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return append([]Member{}, v.members...)
}

// Keys returns the object keys in order.
func (v Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// WithMember returns a copy of the object with key set to val. An existing
// key keeps its position, a new key is appended.
func (v Value) WithMember(key string, val Value) Value {
	if v.kind != Object {
		return v
	}
	members := make([]Member, len(v.members), len(v.members)+1)
	copy(members, v.members)
	if i := v.indexOf(key); i >= 0 {
		members[i].Value = val
	} else {
		members = append(members, Member{Key: key, Value: val})
	}
	return Value{kind: Object, members: members}
}

// WithElement returns a copy of the array with element i replaced.
func (v Value) WithElement(i int, val Value) Value {
	if v.kind != Array || i < 0 || i >= len(v.items) {
		return v
	}
	items := make([]Value, len(v.items))
	copy(items, v.items)
	items[i] = val
	return Value{kind: Array, items: items}
}

// WithAppended returns a copy of the array with val added as the last element.
func (v Value) WithAppended(val Value) Value {
	if v.kind != Array {
		return v
	}
	items := make([]Value, len(v.items), len(v.items)+1)
	copy(items, v.items)
	return Value{kind: Array, items: append(items, val)}
}

// WithoutElement returns a copy of the array with element i removed.
func (v Value) WithoutElement(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.items) {
		return v
	}
	items := make([]Value, 0, len(v.items)-1)
	items = append(items, v.items[:i]...)
	items = append(items, v.items[i+1:]...)
	return Value{kind: Array, items: items}
}

// SameStorage reports whether two containers share their backing storage,
// i.e. one was carried over unchanged into a value derived from the other.
func SameStorage(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Array:
		return len(a.items) > 0 && len(a.items) == len(b.items) && &a.items[0] == &b.items[0]
	case Object:
		return len(a.members) > 0 && len(a.members) == len(b.members) && &a.members[0] == &b.members[0]
	}
	return false
}

func (v Value) indexOf(key string) int {
	for i, m := range v.members {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Equal reports deep equality. Object member order is significant; numbers
// are compared by value.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.boolean == b.boolean
	case String:
		return a.text == b.text
	case Number:
		if a.text == b.text {
			return true
		}
		fa, errA := strconv.ParseFloat(a.text, 64)
		fb, errB := strconv.ParseFloat(b.text, 64)
		return errA == nil && errB == nil && fa == fb
	case Array:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.members) != len(b.members) {
			return false
		}
		for i := range a.members {
			if a.members[i].Key != b.members[i].Key || !Equal(a.members[i].Value, b.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

func isNumberLiteral(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) {
		return false
	}
	switch {
	case s[i] == '0':
		i++
	case s[i] >= '1' && s[i] <= '9':
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
