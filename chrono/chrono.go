// Package chrono converts between time.Time and token.Values using ISO 8601
// week numbering, where weeks start on Monday and week 1 holds January 4th.
package chrono

import (
	"errors"
	"fmt"
	"time"

	"isofields/field"
	"isofields/internal/common"
	"isofields/token"
)

var (
	ErrIncompleteDate = errors.New("values do not identify a date")
	ErrOutOfRange     = errors.New("field value out of range")
)

// FromTime fills every field of the ISO chronology and the zone offset of t.
func FromTime(t time.Time) token.Values {
	var v token.Values

	weekyear, week := t.ISOWeek()
	_, offset := t.Zone()

	v.Set(field.Year, t.Year())
	v.Set(field.MonthOfYear, int(t.Month()))
	v.Set(field.DayOfMonth, t.Day())
	v.Set(field.DayOfYear, t.YearDay())
	v.Set(field.Weekyear, weekyear)
	v.Set(field.WeekOfWeekyear, week)
	v.Set(field.DayOfWeek, isoWeekday(t.Weekday()))
	v.Set(field.HourOfDay, t.Hour())
	v.Set(field.MinuteOfHour, t.Minute())
	v.Set(field.SecondOfMinute, t.Second())
	v.Set(field.MillisOfSecond, t.Nanosecond()/int(time.Millisecond))
	v.SetOffset(offset)

	return v
}

// ToTime rebuilds an instant. The date comes from year, month and day, else
// from year and day of year, else from weekyear, week and day of week. Missing
// time fields are zero and a missing offset means UTC.
func ToTime(v token.Values) (time.Time, error) {
	for _, t := range v.Fields().Types() {
		n, _ := v.Get(t)
		if lo, hi := t.Range(); !common.InRange(lo, n, hi) {
			return time.Time{}, fmt.Errorf("%w: %s=%d not in [%d, %d]", ErrOutOfRange, t, n, lo, hi)
		}
	}

	loc := time.UTC
	if off, ok := v.Offset(); ok && off != 0 {
		loc = time.FixedZone("", off)
	}

	hour := valueOr(v, field.HourOfDay, 0)
	minute := valueOr(v, field.MinuteOfHour, 0)
	second := valueOr(v, field.SecondOfMinute, 0)
	nanos := valueOr(v, field.MillisOfSecond, 0) * int(time.Millisecond)

	year, hasYear := v.Get(field.Year)
	month, hasMonth := v.Get(field.MonthOfYear)
	day, hasDay := v.Get(field.DayOfMonth)

	switch {
	case hasYear && hasMonth && hasDay:
		t := time.Date(year, time.Month(month), day, hour, minute, second, nanos, loc)
		if t.Day() != day {
			return time.Time{}, fmt.Errorf("%w: day %d of %d-%02d", ErrOutOfRange, day, year, month)
		}

		return t, nil
	case hasYear && v.Fields().Contains(field.DayOfYear):
		doy, _ := v.Get(field.DayOfYear)

		t := time.Date(year, time.January, doy, hour, minute, second, nanos, loc)
		if t.Year() != year {
			return time.Time{}, fmt.Errorf("%w: day %d of year %d", ErrOutOfRange, doy, year)
		}

		return t, nil
	case v.Fields().Contains(field.Weekyear) && v.Fields().Contains(field.WeekOfWeekyear):
		weekyear, _ := v.Get(field.Weekyear)
		week, _ := v.Get(field.WeekOfWeekyear)
		dow := valueOr(v, field.DayOfWeek, 1)

		start := weekOneMonday(weekyear)
		t := time.Date(start.Year(), start.Month(), start.Day()+(week-1)*7+dow-1,
			hour, minute, second, nanos, loc)

		if wy, w := t.ISOWeek(); wy != weekyear || w != week {
			return time.Time{}, fmt.Errorf("%w: week %d of weekyear %d", ErrOutOfRange, week, weekyear)
		}

		return t, nil
	default:
		return time.Time{}, fmt.Errorf("%w: have %s", ErrIncompleteDate, v.Fields())
	}
}

func valueOr(v token.Values, t field.Type, def int) int {
	if n, ok := v.Get(t); ok {
		return n
	}

	return def
}

// isoWeekday maps Sunday=0 to Monday=1 .. Sunday=7.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}

	return int(d)
}

func weekOneMonday(weekyear int) time.Time {
	jan4 := time.Date(weekyear, time.January, 4, 0, 0, 0, 0, time.UTC)
	return jan4.AddDate(0, 0, 1-isoWeekday(jan4.Weekday()))
}
