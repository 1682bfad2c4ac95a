package continuity_errors

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrAlreadyExists      = errors.New("already exists")
	ErrTooLarge           = errors.New("file too large")
	ErrRateLimited        = errors.New("rate limited")
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrStorage            = errors.New("storage failure")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// messageError carries a caller-facing message while staying Is-able
// against one of the sentinels above.
type messageError struct {
	kind error
	msg  string
}

func (e *messageError) Error() string { return e.msg }

func (e *messageError) Unwrap() error { return e.kind }

// BadRequest wraps ErrInvalidInput with a specific validation message.
func BadRequest(msg string) error {
	return &messageError{kind: ErrInvalidInput, msg: msg}
}

// NotFound wraps ErrNotFound with a specific message.
func NotFound(msg string) error {
	return &messageError{kind: ErrNotFound, msg: msg}
}

// Internal wraps an unexpected provider or codec failure. The
// underlying message is kept for diagnostics, never swallowed.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &messageError{kind: ErrStorage, msg: err.Error()}
}

// NowPtr returns a pointer to current time
func NowPtr() *time.Time {
	now := time.Now()
	return &now
}
