package quiz

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can pick a status code
// without string-matching messages.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindNotFound
	KindForbidden
	KindInvalidInput
	KindConflict
)

// Error is the failure type returned by services. Message is safe to show
// to the caller; Err holds the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrKind extracts the Kind from err, defaulting to KindInternal for
// anything that is not a *Error.
func ErrKind(err error) Kind {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return KindInternal
}

func Unauthenticated(message string) error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func InvalidInput(message string) error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal wraps a storage or unexpected failure. The caller-visible message
// stays generic; the cause is preserved for logs.
func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}
