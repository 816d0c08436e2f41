package token

import (
	"strings"
)

// Formatter is an immutable layout. It is safe for concurrent use.
type Formatter struct {
	elems []element
}

func (f *Formatter) CanPrint() bool {
	for _, e := range f.elems {
		if !e.isPrinter() {
			return false
		}
	}

	return len(f.elems) > 0
}

func (f *Formatter) CanParse() bool {
	for _, e := range f.elems {
		if !e.isParser() {
			return false
		}
	}

	return len(f.elems) > 0
}

// Print renders v. Every field and offset the layout refers to must be set.
func (f *Formatter) Print(v Values) (string, error) {
	if !f.CanPrint() {
		return "", ErrNotPrinter
	}

	var sb strings.Builder

	for _, e := range f.elems {
		if err := e.printTo(&sb, v); err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}

// Parse reads text, which must be consumed entirely.
func (f *Formatter) Parse(text string) (Values, error) {
	if !f.CanParse() {
		return Values{}, ErrNotParser
	}

	var v Values

	end, ok := parseSequence(f.elems, text, 0, &v)
	if !ok || end < len(text) {
		return Values{}, &ParseError{Text: text, Pos: end}
	}

	return v, nil
}

// Pattern describes the layout with pattern letters, e.g. "yyyy-MM-dd".
// Optional parts are bracketed and alternatives are grouped with '|'.
func (f *Formatter) Pattern() string {
	var sb strings.Builder
	describeAll(&sb, f.elems)

	return sb.String()
}

func (f *Formatter) String() string {
	return f.Pattern()
}
