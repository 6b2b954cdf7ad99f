// Package apperrors defines the error kinds the core can fail with.
// Services wrap these with entity context; the HTTP layer maps each
// kind to a status code exactly once.
package apperrors

import "errors"

var (
	ErrConflict         = errors.New("conflict")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
)

// Error carries a user-facing message on top of one of the kind
// sentinels above, so errors.Is against the kind still works.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func Conflict(msg string) error { return &Error{kind: ErrConflict, msg: msg} }

func Unauthenticated(msg string) error { return &Error{kind: ErrUnauthenticated, msg: msg} }

func Forbidden(msg string) error { return &Error{kind: ErrForbidden, msg: msg} }

func NotFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

func InvalidOperation(msg string) error { return &Error{kind: ErrInvalidOperation, msg: msg} }
