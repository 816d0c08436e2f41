package isoformat

import (
	"errors"
	"fmt"

	"isofields/field"
)

var (
	ErrEmptyFieldSet            = errors.New("field set is empty")
	ErrNonISOFormat             = errors.New("layout is not valid ISO 8601")
	ErrReducedPrecisionWithTime = errors.New("reduced precision date cannot be combined with a time")
	ErrNoValidFormat            = errors.New("no valid format")
)

// ResolveError wraps a rejection of the requested field combination.
type ResolveError struct {
	Kind   error
	Fields field.Set
	Reason string
}

func (e *ResolveError) Error() string {
	if e == nil {
		return ""
	}

	msg := fmt.Sprintf("%s for fields %s", e.Kind.Error(), e.Fields)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *ResolveError) Unwrap() error { return e.Kind }

func rejectf(kind error, fields field.Set, format string, args ...any) error {
	return &ResolveError{Kind: kind, Fields: fields, Reason: fmt.Sprintf(format, args...)}
}
