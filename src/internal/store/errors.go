package store

import (
	"errors"
	"fmt"
)

type (
	// ErrInvalidAppID is returned for an app ID that cannot be stored.
	ErrInvalidAppID struct {
		App    string
		Reason string
	}

	// ErrUnknownDriver is returned by Open for a driver that was never
	// registered.
	ErrUnknownDriver struct {
		Name string
	}
)

var (
	// ErrAlreadyRegistered is returned when a driver name is registered twice.
	ErrAlreadyRegistered = errors.New("store driver already registered")

	// ErrListUnsupported is returned by List for stores that cannot
	// enumerate apps.
	ErrListUnsupported = errors.New("store cannot list apps")
)

func (e *ErrInvalidAppID) Error() string {
	return fmt.Sprintf("invalid app ID %q: %s", e.App, e.Reason)
}

func (e *ErrUnknownDriver) Error() string {
	return fmt.Sprintf("unknown store driver %q", e.Name)
}
