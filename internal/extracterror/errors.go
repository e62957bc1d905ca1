// Package extracterror defines the error taxonomy of the extraction flow.
// Callers need to tell "the model said something we can't parse" apart from
// "we couldn't reach the model", so each kind is a distinct type.
package extracterror

import (
	"errors"
	"fmt"
)

// ValidationError reports bad user input detected before anything is sent
// to the extraction service.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// UnavailableError means the call to the extraction service itself failed:
// network, authentication or timeout. Retry is manual, never automatic.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("extraction unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// MalformedError means the service answered but no usable JSON payload
// could be located or parsed in the reply. The ledger must stay untouched.
type MalformedError struct {
	Reason  string
	Snippet string
	Err     error
}

func (e *MalformedError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("malformed extraction: %s (reply starts with %q)", e.Reason, e.Snippet)
	}
	return fmt.Sprintf("malformed extraction: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err is, or wraps, an UnavailableError.
func IsUnavailable(err error) bool {
	var target *UnavailableError
	return errors.As(err, &target)
}

// IsMalformed reports whether err is, or wraps, a MalformedError.
func IsMalformed(err error) bool {
	var target *MalformedError
	return errors.As(err, &target)
}

// Snippet trims a model reply down to a short prefix safe to embed in an
// error message.
func Snippet(s string) string {
	const max = 60
	if len(s) > max {
		return s[:max]
	}
	return s
}
