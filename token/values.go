package token

import (
	"fmt"
	"strings"

	"isofields/field"
)

// Values holds the field values printed by or parsed into a layout, plus an
// optional zone offset in seconds east of UTC. The zero value holds nothing.
type Values struct {
	present   field.Set
	vals      [field.Total]int
	offset    int
	hasOffset bool
}

func (v Values) Get(t field.Type) (int, bool) {
	if !v.present.Contains(t) {
		return 0, false
	}

	return v.vals[t], true
}

func (v *Values) Set(t field.Type, n int) {
	if !t.IsValid() {
		panic("cannot set invalid field type: " + t.String())
	}

	v.present.Add(t)
	v.vals[t] = n
}

// With returns a copy of v with t set to n.
func (v Values) With(t field.Type, n int) Values {
	v.Set(t, n)
	return v
}

func (v Values) Offset() (int, bool) {
	return v.offset, v.hasOffset
}

func (v *Values) SetOffset(seconds int) {
	v.offset = seconds
	v.hasOffset = true
}

// WithOffset returns a copy of v carrying the given offset.
func (v Values) WithOffset(seconds int) Values {
	v.SetOffset(seconds)
	return v
}

// Fields returns the set of fields holding a value.
func (v Values) Fields() field.Set {
	return v.present
}

// Equal compares present fields, their values and the offset.
func (v Values) Equal(o Values) bool {
	if v.present != o.present || v.hasOffset != o.hasOffset {
		return false
	}

	if v.hasOffset && v.offset != o.offset {
		return false
	}

	for _, t := range v.present.Types() {
		if v.vals[t] != o.vals[t] {
			return false
		}
	}

	return true
}

func (v Values) String() string {
	parts := make([]string, 0, v.present.Len()+1)
	for _, t := range v.present.Types() {
		parts = append(parts, fmt.Sprintf("%s=%d", t, v.vals[t]))
	}

	if v.hasOffset {
		parts = append(parts, fmt.Sprintf("offset=%ds", v.offset))
	}

	return "{" + strings.Join(parts, " ") + "}"
}
