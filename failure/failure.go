// Package failure classifies the errors raised while handling a contact
// event. Every error is one of three kinds: a validation problem with the
// event, a failure talking to the warm transfer API, or anything unexpected.
package failure

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is an enum of the error classes the handler distinguishes.
type Kind int

const (
	Unexpected Kind = iota
	Validation
	API
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "ValidationError"
	case API:
		return "APIError"
	default:
		return "UnexpectedError"
	}
}

// Error is an error tagged with its Kind. The message is what gets reported
// back to the contact flow; the cause, when present, is kept for logging.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Cause returns the underlying error, if any.
func (e *Error) Cause() error {
	return e.cause
}

// Unwrap supports errors.Is and errors.As from the standard library.
func (e *Error) Unwrap() error {
	return e.cause
}

// Newf returns a new Error of the given kind with a stack trace attached.
func Newf(kind Kind, format string, args ...interface{}) error {
	e := &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
	return errors.WithStack(e)
}

// Wrapf tags err with kind. The message is "<msg>: <err>".
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	msg := errors.Wrapf(err, format, args...).Error()
	return errors.WithStack(&Error{Kind: kind, Message: msg, cause: err})
}

// ValidationError returns a Validation kind error with msg.
func ValidationError(msg string) error {
	return Newf(Validation, "%s", msg)
}

// APIError returns an API kind error with msg.
func APIError(msg string) error {
	return Newf(API, "%s", msg)
}

// KindOf returns the Kind of err. Errors that were never tagged, including
// nil, are reported as Unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return Unexpected
}

// Message returns the caller facing message for err. Tagged errors report
// their own message without the stack wrappers.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}

	return err.Error()
}
