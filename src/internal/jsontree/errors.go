package jsontree

import (
	"fmt"

	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

// AddressError is returned when a path does not resolve to an existing node.
type AddressError struct {
	Path Path
	// At is the index of the first path component that failed to resolve.
	At     int
	Reason string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address %s: component %d: %s", e.Path, e.At, e.Reason)
}

// TypeError is returned when an array operation targets a non-array node.
type TypeError struct {
	Path Path
	Want jsonvalue.Kind
	Got  jsonvalue.Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("address %s: expected %s, got %s", e.Path, e.Want, e.Got)
}

// RangeError is returned when an array index is outside [0, Len).
type RangeError struct {
	Path  Path
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("address %s: index %d out of range [0, %d)", e.Path, e.Index, e.Len)
}
