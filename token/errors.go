package token

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBuilder  = errors.New("no elements appended")
	ErrNotPrinter    = errors.New("layout cannot print")
	ErrNotParser     = errors.New("layout cannot parse")
	ErrMissingField  = errors.New("missing field value")
	ErrMissingOffset = errors.New("missing zone offset")
)

// ParseError reports where parsing of Text stopped.
type ParseError struct {
	Text string
	Pos  int
}

func (e *ParseError) Error() string {
	if e.Pos >= len(e.Text) {
		return fmt.Sprintf("invalid format %q: too short", e.Text)
	}

	return fmt.Sprintf("invalid format %q: malformed at %q", e.Text, e.Text[e.Pos:])
}
