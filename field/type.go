// Package field defines the closed set of calendar and clock fields the ISO 8601
// resolver reasons about, plus a compact working set over them.
package field

import (
	"errors"
	"fmt"
	"strings"

	"isofields/internal/match"
)

var ErrUnknownType = errors.New("unknown field type")

//go:generate go tool stringer -type=Type -linecomment -output=type_string.go

type Type int

const (
	_ Type = iota // skip zero value, use it as a default (invalid) value for Type

	Year           // year
	MonthOfYear    // monthOfYear
	DayOfMonth     // dayOfMonth
	DayOfYear      // dayOfYear
	Weekyear       // weekyear
	WeekOfWeekyear // weekOfWeekyear
	DayOfWeek      // dayOfWeek
	HourOfDay      // hourOfDay
	MinuteOfHour   // minuteOfHour
	SecondOfMinute // secondOfMinute
	MillisOfSecond // millisOfSecond

	// Total is a constant that represents the total number of field types defined
	Total = int(iota)
)

// All returns every valid field type in declaration order.
func All() []Type {
	all := make([]Type, 0, Total-1)
	for t := Year; int(t) < Total; t++ {
		all = append(all, t)
	}

	return all
}

func (t Type) IsValid() bool {
	return t >= Year && int(t) < Total
}

func (t Type) IsDate() bool {
	switch t {
	default:
		return false
	case Year, MonthOfYear, DayOfMonth, DayOfYear, Weekyear, WeekOfWeekyear, DayOfWeek:
		return true
	}
}

func (t Type) IsTime() bool {
	switch t {
	default:
		return false
	case HourOfDay, MinuteOfHour, SecondOfMinute, MillisOfSecond:
		return true
	}
}

// PatternLetter returns the letter used for t in pattern descriptions.
func (t Type) PatternLetter() rune {
	switch t {
	default:
		panic("no pattern letter for invalid field type: " + t.String())
	case Year:
		return 'y'
	case MonthOfYear:
		return 'M'
	case DayOfMonth:
		return 'd'
	case DayOfYear:
		return 'D'
	case Weekyear:
		return 'x'
	case WeekOfWeekyear:
		return 'w'
	case DayOfWeek:
		return 'e'
	case HourOfDay:
		return 'H'
	case MinuteOfHour:
		return 'm'
	case SecondOfMinute:
		return 's'
	case MillisOfSecond:
		return 'S'
	}
}

// Range returns the inclusive bounds a value of t may take in the ISO calendar.
// Year-like fields report the bounds of a nine digit signed year.
func (t Type) Range() (lo, hi int) {
	switch t {
	default:
		panic("no range for invalid field type: " + t.String())
	case Year, Weekyear:
		return -999_999_999, 999_999_999
	case MonthOfYear:
		return 1, 12
	case DayOfMonth:
		return 1, 31
	case DayOfYear:
		return 1, 366
	case WeekOfWeekyear:
		return 1, 53
	case DayOfWeek:
		return 1, 7
	case HourOfDay:
		return 0, 23
	case MinuteOfHour, SecondOfMinute:
		return 0, 59
	case MillisOfSecond:
		return 0, 999
	}
}

const suggestThreshold = 0.75

// Parse looks up a field type by its canonical name, ignoring case.
func Parse(name string) (Type, error) {
	trimmed := strings.TrimSpace(name)
	for _, t := range All() {
		if strings.EqualFold(t.String(), trimmed) {
			return t, nil
		}
	}

	known := make([]string, 0, Total-1)
	for _, t := range All() {
		known = append(known, t.String())
	}

	if hint := match.Suggest(trimmed, known, suggestThreshold, 1); len(hint) > 0 {
		return 0, fmt.Errorf("%w %q, did you mean %s?", ErrUnknownType, name, hint[0])
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownType, name)
}

// ParseList parses a comma separated list of field names.
func ParseList(list string) ([]Type, error) {
	var types []Type

	for part := range strings.SplitSeq(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		t, err := Parse(part)
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return types, nil
}
