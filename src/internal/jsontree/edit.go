package jsontree

import (
	"fmt"

	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

// Op names a structural edit.
type Op string

const (
	OpSet    Op = "set"
	OpInsert Op = "insert"
	OpRemove Op = "remove"
)

// Edit is a structural edit addressed by path. Value is used by set and
// insert, Index by remove; for insert and remove Path is the array itself.
type Edit struct {
	Op    Op
	Path  Path
	Value jsonvalue.Value
	Index int
}

// Set returns an edit replacing the node at path.
func Set(path Path, v jsonvalue.Value) Edit {
	return Edit{Op: OpSet, Path: path, Value: v}
}

// Insert returns an edit appending v to the array at arrayPath.
func Insert(arrayPath Path, v jsonvalue.Value) Edit {
	return Edit{Op: OpInsert, Path: arrayPath, Value: v}
}

// Remove returns an edit deleting element index of the array at arrayPath.
func Remove(arrayPath Path, index int) Edit {
	return Edit{Op: OpRemove, Path: arrayPath, Index: index}
}

func (e Edit) String() string {
	switch e.Op {
	case OpRemove:
		return fmt.Sprintf("remove %s[%d]", e.Path, e.Index)
	default:
		return fmt.Sprintf("%s %s = %s", e.Op, e.Path, e.Value)
	}
}

// Apply performs e on root.
func Apply(root jsonvalue.Value, e Edit) (jsonvalue.Value, error) {
	switch e.Op {
	case OpSet:
		return SetAt(root, e.Path, e.Value)
	case OpInsert:
		return InsertArrayItem(root, e.Path, e.Value)
	case OpRemove:
		return RemoveArrayItem(root, e.Path, e.Index)
	}
	return jsonvalue.Value{}, fmt.Errorf("unknown edit operation %q", e.Op)
}
