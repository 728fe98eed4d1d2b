package formview

import "github.com/maksimkurb/keen-console/src/internal/jsonvalue"

// Class is the closed classification of a JSON value used to pick a control.
type Class uint8

const (
	LeafNull Class = iota
	LeafBool
	LeafNumber
	LeafString
	ContainerArray
	ContainerObject
)

var classNames = map[Class]string{
	LeafNull:        "null",
	LeafBool:        "boolean",
	LeafNumber:      "number",
	LeafString:      "string",
	ContainerArray:  "array",
	ContainerObject: "object",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsLeaf reports whether values of this class have no children.
func (c Class) IsLeaf() bool {
	return c <= LeafString
}

// IsContainer reports whether values of this class have children.
func (c Class) IsContainer() bool {
	return c == ContainerArray || c == ContainerObject
}

// Classify returns the class of v.
func Classify(v jsonvalue.Value) Class {
	switch v.Kind() {
	case jsonvalue.Bool:
		return LeafBool
	case jsonvalue.Number:
		return LeafNumber
	case jsonvalue.String:
		return LeafString
	case jsonvalue.Array:
		return ContainerArray
	case jsonvalue.Object:
		return ContainerObject
	default:
		return LeafNull
	}
}

// Control is the kind of input a field is rendered with.
type Control string

const (
	ControlToggle   Control = "toggle"
	ControlNumber   Control = "number"
	ControlText     Control = "text"
	ControlTextarea Control = "textarea"
	ControlGroup    Control = "group"
	ControlStatic   Control = "static"
)

// multilineThreshold is the string length above which a textarea is used.
const multilineThreshold = 100

func controlFor(c Class, v jsonvalue.Value) Control {
	switch c {
	case LeafBool:
		return ControlToggle
	case LeafNumber:
		return ControlNumber
	case LeafString:
		if isMultiline(v.Str()) {
			return ControlTextarea
		}
		return ControlText
	case ContainerArray, ContainerObject:
		return ControlGroup
	default:
		return ControlText
	}
}

func isMultiline(s string) bool {
	if len([]rune(s)) > multilineThreshold {
		return true
	}
	for _, r := range s {
		if r == '\n' || r == '\r' {
			return true
		}
	}
	return false
}
