package formview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/maksimkurb/keen-console/src/internal/jsontree"
	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

// CommitBool returns the edit for a toggled boolean.
func CommitBool(path jsontree.Path, b bool) jsontree.Edit {
	return jsontree.Set(path, jsonvalue.BoolValue(b))
}

// CommitNumber returns the edit for numeric input. Input that is not a
// number is stored as 0 instead of being rejected.
func CommitNumber(path jsontree.Path, input string) jsontree.Edit {
	return jsontree.Set(path, parseNumber(input))
}

func parseNumber(input string) jsonvalue.Value {
	s := strings.TrimSpace(input)
	if v, ok := jsonvalue.NumberLiteral(s); ok {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return jsonvalue.IntValue(0)
	}
	return jsonvalue.FloatValue(f)
}

// CommitString returns the edit for string input.
func CommitString(path jsontree.Path, s string) jsontree.Edit {
	return jsontree.Set(path, jsonvalue.StringValue(s))
}

// CommitNull returns the edit for input typed into a null field. Non-empty
// input becomes a string; empty input keeps the value null. A null field can
// therefore only turn into a string.
func CommitNull(path jsontree.Path, s string) jsontree.Edit {
	if s == "" {
		return jsontree.Set(path, jsonvalue.NullValue())
	}
	return jsontree.Set(path, jsonvalue.StringValue(s))
}

// CommitText returns the edit for textual input into f, interpreted by the
// field's class. Booleans accept the forms strconv.ParseBool accepts.
func CommitText(f *Field, input string) (jsontree.Edit, error) {
	if f.IsStatic() {
		return jsontree.Edit{}, fmt.Errorf("field %s is read-only", f.Path)
	}
	switch f.Class {
	case LeafBool:
		b, err := strconv.ParseBool(strings.TrimSpace(input))
		if err != nil {
			return jsontree.Edit{}, fmt.Errorf("field %s: %q is not a boolean", f.Path, input)
		}
		return CommitBool(f.Path, b), nil
	case LeafNumber:
		return CommitNumber(f.Path, input), nil
	case LeafString:
		return CommitString(f.Path, input), nil
	case LeafNull:
		return CommitNull(f.Path, input), nil
	}
	return jsontree.Edit{}, fmt.Errorf("field %s is a %s and cannot take text input", f.Path, f.Class)
}

// AddItem returns the edit appending a default element to the array field f.
func AddItem(f *Field) (jsontree.Edit, error) {
	if !f.CanAddItem {
		return jsontree.Edit{}, fmt.Errorf("field %s does not accept new items", f.Path)
	}
	return jsontree.Insert(f.Path, jsontree.DefaultItem(f.Value)), nil
}

// RemoveItem returns the edit removing the array element f.
func RemoveItem(f *Field) (jsontree.Edit, error) {
	last, ok := f.Path.Last()
	if !f.CanRemove || !ok || !last.IsIndex() {
		return jsontree.Edit{}, fmt.Errorf("field %s is not a removable array item", f.Path)
	}
	return jsontree.Remove(f.Path.Parent(), last.Index()), nil
}
