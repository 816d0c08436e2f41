package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and drops '_', '-', '.' and spaces, so that
// "month_of_year", "Month-Of-Year" and "monthOfYear" compare equal.
func Normalize(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
