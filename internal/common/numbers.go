package common

import "cmp"

// InRange reports whether lo <= v <= hi.
func InRange[T cmp.Ordered](lo, v, hi T) bool {
	return lo <= v && v <= hi
}
