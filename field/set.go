package field

import "strings"

// Set is a value-typed set of field types. The zero value is the empty set.
//
// Set is used as the resolver's working set: planners Remove the fields they
// place, so whatever is still present afterwards could not be placed.
type Set uint16

// NewSet builds a set holding the given types. Invalid types are ignored.
func NewSet(types ...Type) Set {
	var s Set
	for _, t := range types {
		s.Add(t)
	}

	return s
}

func bit(t Type) Set {
	if !t.IsValid() {
		return 0
	}

	return 1 << uint(t)
}

func (s Set) Contains(t Type) bool {
	b := bit(t)
	return b != 0 && s&b != 0
}

func (s *Set) Add(t Type) {
	*s |= bit(t)
}

// Remove deletes t and reports whether it was present.
func (s *Set) Remove(t Type) bool {
	if !s.Contains(t) {
		return false
	}

	*s &^= bit(t)

	return true
}

func (s Set) IsEmpty() bool {
	return s == 0
}

func (s Set) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}

	return n
}

// Union returns the fields present in s or o.
func (s Set) Union(o Set) Set {
	return s | o
}

// Without returns the fields of s that are not in o.
func (s Set) Without(o Set) Set {
	return s &^ o
}

// Intersect returns the fields present in both s and o.
func (s Set) Intersect(o Set) Set {
	return s & o
}

// Types returns the members in declaration order.
func (s Set) Types() []Type {
	types := make([]Type, 0, s.Len())
	for _, t := range All() {
		if s.Contains(t) {
			types = append(types, t)
		}
	}

	return types
}

func (s Set) String() string {
	names := make([]string, 0, s.Len())
	for _, t := range s.Types() {
		names = append(names, t.String())
	}

	return "[" + strings.Join(names, " ") + "]"
}
