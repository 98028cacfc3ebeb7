// Package apperr defines the operational error kinds shared by all
// usecases. Handlers map kinds to HTTP statuses; anything that is not an
// *Error is treated as an unexpected fault.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an operational error.
type Kind int

const (
	// Internal is an unexpected fault (store connectivity, bugs).
	Internal Kind = iota
	// NotFound means an entity id did not resolve to a record.
	NotFound
	// InvalidOperation means the action violates a state-machine or
	// business rule (self-follow, past-dated schedule, double publish).
	InvalidOperation
	// Conflict means a unique constraint was violated (already following,
	// username taken).
	Conflict
	// Unauthorized means the caller is not authenticated.
	Unauthorized
	// Forbidden means the caller lacks the required permission.
	Forbidden
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case InvalidOperation:
		return "invalid_operation"
	case Conflict:
		return "conflict"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is an operational error with a kind and a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an operational error with the given kind.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap annotates err with a kind and message, keeping the cause.
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind of err. Non-operational errors report Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// MessageOf returns the client-safe message of an operational error, or a
// generic message for unexpected faults.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
