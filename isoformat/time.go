package isoformat

import (
	"isofields/field"
	"isofields/internal/diagnostic"
)

// time places hourOfDay, minuteOfHour, secondOfMinute and millisOfSecond.
func (r *resolver) time(reducedPrec, datePresent bool) error {
	hour := r.work.Remove(field.HourOfDay)
	minute := r.work.Remove(field.MinuteOfHour)
	second := r.work.Remove(field.SecondOfMinute)
	milli := r.work.Remove(field.MillisOfSecond)

	if !hour && !minute && !second && !milli {
		return nil
	}

	if r.opts.StrictISO && reducedPrec {
		return rejectf(ErrReducedPrecisionWithTime, r.input, "date was reduced precision")
	}

	if datePresent {
		r.bld.Literal("T")
	}

	if hour && minute && second || (hour && !second && !milli) {
		// OK - HMSm/HMS/HM/H - valid in combination with date
	} else {
		if r.opts.StrictISO && datePresent {
			return rejectf(ErrNoValidFormat, r.input, "time was truncated")
		}

		if !hour && (minute && second || (minute && !milli) || second) {
			// OK - MSm/MS/M/Sm/S - valid ISO formats without a date
			if datePresent {
				r.diags.AddWarning(diagnostic.CodeTruncatedTime,
					"truncated time after a date accepted outside strict ISO 8601", r.input.String())
			}
		} else {
			if r.opts.StrictISO {
				return rejectf(ErrNoValidFormat, r.input, "time fields do not form an ISO 8601 time")
			}

			r.diags.AddWarning(diagnostic.CodeTruncatedTime,
				"time fields accepted outside strict ISO 8601", r.input.String())
		}
	}

	if hour {
		r.bld.HourOfDay(2)
	} else if minute || second || milli {
		r.gap(field.HourOfDay)
	}

	if r.opts.Extended && hour && minute {
		r.bld.Literal(":")
	}

	if minute {
		r.bld.MinuteOfHour(2)
	} else if second || milli {
		r.gap(field.MinuteOfHour)
	}

	if r.opts.Extended && minute && second {
		r.bld.Literal(":")
	}

	if second {
		r.bld.SecondOfMinute(2)
	} else if milli {
		r.gap(field.SecondOfMinute)
	}

	if milli {
		r.bld.Literal(".")
		r.bld.MillisOfSecond(3)
	}

	return nil
}

// gap stands in for a missing higher order time field with a '-'.
func (r *resolver) gap(missing field.Type) {
	r.bld.Literal("-")
	r.diags.AddWarning(diagnostic.CodeGapPlaceholder,
		"'-' placeholder printed for missing "+missing.String(), r.input.String())
}
