// Package tracking validates carrier tracking numbers typed by the user.
package tracking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyInput     = errors.New("tracking number is empty")
	ErrFormatMismatch = errors.New("tracking number has an invalid format")
)

// IDLength is the length of a valid tracking number, prefix included.
const IDLength = 18

var reTrackingID = regexp.MustCompile(`(?i)^1Z[0-9A-Z]{16}$`)

// Query is a tracking number that passed Validate. It keeps the casing the
// user typed.
type Query string

func (q Query) String() string { return string(q) }

// ValidationError reports why raw input was rejected. Kind is one of
// ErrEmptyInput or ErrFormatMismatch.
type ValidationError struct {
	Input string
	Kind  error
}

func (e *ValidationError) Error() string {
	if e.Input == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Input
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// Message is the text shown to the user in the search panel.
func (e *ValidationError) Message() string {
	return Message(e)
}

// Message maps a validation error to the text shown to the user. Errors that
// did not come from Validate produce an empty string.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "Please enter a tracking number."
	case errors.Is(err, ErrFormatMismatch):
		return "Invalid tracking number: it must start with '1Z' and be 18 characters long."
	default:
		return ""
	}
}

// Validate trims raw and checks it against the 1Z tracking number grammar.
func Validate(raw string) (Query, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ValidationError{Kind: ErrEmptyInput}
	}
	if !reTrackingID.MatchString(trimmed) {
		return "", &ValidationError{Input: trimmed, Kind: ErrFormatMismatch}
	}
	return Query(trimmed), nil
}
