package isoformat

import (
	"isofields/field"
)

// dateByMonth places year, monthOfYear and dayOfMonth.
func (r *resolver) dateByMonth() (bool, error) {
	reduced := false

	switch {
	case r.work.Remove(field.Year):
		r.bld.Append(lookup(NameYearElement))

		switch {
		case r.work.Remove(field.MonthOfYear):
			if r.work.Remove(field.DayOfMonth) {
				// YYYY-MM-DD/YYYYMMDD
				r.appendSeparator()
				r.bld.MonthOfYear(2)
				r.appendSeparator()
				r.bld.DayOfMonth(2)
			} else {
				// YYYY-MM in both formats, YYYYMM is not allowed
				r.bld.Literal("-")
				r.bld.MonthOfYear(2)

				reduced = true
			}
		case r.work.Remove(field.DayOfMonth):
			// YYYY--DD
			if err := r.checkNotStrictISO("year with day of month", field.MonthOfYear); err != nil {
				return false, err
			}

			r.bld.Literal("-")
			r.bld.Literal("-")
			r.bld.DayOfMonth(2)
		default:
			// YYYY
			reduced = true
		}
	case r.work.Remove(field.MonthOfYear):
		r.bld.Literal("-")
		r.bld.Literal("-")
		r.bld.MonthOfYear(2)

		if r.work.Remove(field.DayOfMonth) {
			// --MM-DD/--MMDD
			r.appendSeparator()
			r.bld.DayOfMonth(2)
		} else {
			// --MM
			reduced = true
		}
	case r.work.Remove(field.DayOfMonth):
		// ---DD
		r.bld.Literal("-")
		r.bld.Literal("-")
		r.bld.Literal("-")
		r.bld.DayOfMonth(2)
	}

	return reduced, nil
}

// dateByOrdinal places year and dayOfYear.
func (r *resolver) dateByOrdinal() (bool, error) {
	reduced := false

	switch {
	case r.work.Remove(field.Year):
		r.bld.Append(lookup(NameYearElement))

		if r.work.Remove(field.DayOfYear) {
			// YYYY-DDD/YYYYDDD
			r.appendSeparator()
			r.bld.DayOfYear(3)
		} else {
			// YYYY
			reduced = true
		}
	case r.work.Remove(field.DayOfYear):
		// -DDD
		r.bld.Literal("-")
		r.bld.DayOfYear(3)
	}

	return reduced, nil
}

// dateByWeek places weekyear, weekOfWeekyear and dayOfWeek.
func (r *resolver) dateByWeek() (bool, error) {
	reduced := false

	switch {
	case r.work.Remove(field.Weekyear):
		r.bld.Append(lookup(NameWeekyearElement))

		switch {
		case r.work.Remove(field.WeekOfWeekyear):
			r.appendSeparator()
			r.bld.Literal("W")
			r.bld.WeekOfWeekyear(2)

			if r.work.Remove(field.DayOfWeek) {
				// YYYY-Www-D/YYYYWwwD
				r.appendSeparator()
				r.bld.DayOfWeek(1)
			} else {
				// YYYY-Www/YYYYWww
				reduced = true
			}
		case r.work.Remove(field.DayOfWeek):
			// YYYY-W-D/YYYYW-D
			if err := r.checkNotStrictISO("weekyear with day of week", field.WeekOfWeekyear); err != nil {
				return false, err
			}

			r.appendSeparator()
			r.bld.Literal("W")
			r.bld.Literal("-")
			r.bld.DayOfWeek(1)
		default:
			// YYYY
			reduced = true
		}
	case r.work.Remove(field.WeekOfWeekyear):
		r.bld.Literal("-")
		r.bld.Literal("W")
		r.bld.WeekOfWeekyear(2)

		if r.work.Remove(field.DayOfWeek) {
			// -Www-D/-WwwD
			r.appendSeparator()
			r.bld.DayOfWeek(1)
		} else {
			// -Www
			reduced = true
		}
	case r.work.Remove(field.DayOfWeek):
		// -W-D
		r.bld.Literal("-")
		r.bld.Literal("W")
		r.bld.Literal("-")
		r.bld.DayOfWeek(1)
	}

	return reduced, nil
}
