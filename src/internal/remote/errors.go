package remote

import (
	"errors"
	"fmt"
)

// ErrInvalidToken is returned when the server rejects the session token.
var ErrInvalidToken = errors.New("session token is invalid or expired")

// ServerError is a failure reported by the server in an "error" reply.
type ServerError struct {
	Operation string
	Message   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// StatusError is returned for a non-200 HTTP status.
type StatusError struct {
	Operation  string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.StatusCode, e.Operation)
}
