// Package jsontree addresses and edits immutable JSON trees.
//
// Every operation returns a new root and leaves its input untouched. Only the
// containers along the edited path are copied; all other subtrees are shared
// between the old and the new root, so a reader holding an older root never
// observes a later edit.
package jsontree

import (
	"fmt"

	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

// Get returns the node at path.
func Get(root jsonvalue.Value, path Path) (jsonvalue.Value, error) {
	cur := root
	for i, k := range path {
		next, reason := child(cur, k)
		if reason != "" {
			return jsonvalue.Value{}, &AddressError{Path: path, At: i, Reason: reason}
		}
		cur = next
	}
	return cur, nil
}

// SetAt returns a new root with the node at path replaced by v. The last
// component may address the append slot of an array (index == length).
func SetAt(root jsonvalue.Value, path Path, v jsonvalue.Value) (jsonvalue.Value, error) {
	return setAt(root, path, 0, v)
}

func setAt(cur jsonvalue.Value, path Path, at int, v jsonvalue.Value) (jsonvalue.Value, error) {
	if at == len(path) {
		return v, nil
	}
	k := path[at]

	if k.IsIndex() && cur.Kind() == jsonvalue.Array && k.Index() == cur.Len() && at == len(path)-1 {
		return cur.WithAppended(v), nil
	}

	next, reason := child(cur, k)
	if reason != "" {
		return jsonvalue.Value{}, &AddressError{Path: path, At: at, Reason: reason}
	}

	updated, err := setAt(next, path, at+1, v)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	if jsonvalue.SameStorage(updated, next) {
		return cur, nil
	}

	if k.IsIndex() {
		return cur.WithElement(k.Index(), updated), nil
	}
	return cur.WithMember(k.Name(), updated), nil
}

// InsertArrayItem returns a new root with v appended to the array at arrayPath.
func InsertArrayItem(root jsonvalue.Value, arrayPath Path, v jsonvalue.Value) (jsonvalue.Value, error) {
	arr, err := Get(root, arrayPath)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	if arr.Kind() != jsonvalue.Array {
		return jsonvalue.Value{}, &TypeError{Path: arrayPath, Want: jsonvalue.Array, Got: arr.Kind()}
	}
	return SetAt(root, arrayPath, arr.WithAppended(v))
}

// RemoveArrayItem returns a new root with element index removed from the
// array at arrayPath. Later elements shift down by one.
func RemoveArrayItem(root jsonvalue.Value, arrayPath Path, index int) (jsonvalue.Value, error) {
	arr, err := Get(root, arrayPath)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	if arr.Kind() != jsonvalue.Array {
		return jsonvalue.Value{}, &TypeError{Path: arrayPath, Want: jsonvalue.Array, Got: arr.Kind()}
	}
	if index < 0 || index >= arr.Len() {
		return jsonvalue.Value{}, &RangeError{Path: arrayPath, Index: index, Len: arr.Len()}
	}
	return SetAt(root, arrayPath, arr.WithoutElement(index))
}

// child resolves one path component. A non-empty reason means it failed.
func child(cur jsonvalue.Value, k Key) (jsonvalue.Value, string) {
	switch cur.Kind() {
	case jsonvalue.Object:
		if k.IsIndex() {
			return jsonvalue.Value{}, fmt.Sprintf("index %d used on an object", k.Index())
		}
		v, ok := cur.Lookup(k.Name())
		if !ok {
			return jsonvalue.Value{}, fmt.Sprintf("member %s not found", k)
		}
		return v, ""
	case jsonvalue.Array:
		if !k.IsIndex() {
			return jsonvalue.Value{}, fmt.Sprintf("member %s used on an array", k)
		}
		v, ok := cur.Index(k.Index())
		if !ok {
			return jsonvalue.Value{}, fmt.Sprintf("index %d out of range [0, %d)", k.Index(), cur.Len())
		}
		return v, ""
	}
	return jsonvalue.Value{}, fmt.Sprintf("cannot descend into %s", cur.Kind())
}
