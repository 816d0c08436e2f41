package isoformat

import (
	"fmt"
	"slices"

	"isofields/field"
	"isofields/token"
)

type getFunc func(Name) *token.Formatter

// catalogEntry declares one named layout. build may only ask get for the
// names listed in deps.
type catalogEntry struct {
	name  Name
	deps  []Name
	build func(get getFunc) *token.Formatter
}

// concat declares a layout made of other layouts, in order.
func concat(name Name, parts ...Name) catalogEntry {
	return catalogEntry{
		name: name,
		deps: parts,
		build: func(get getFunc) *token.Formatter {
			b := token.NewBuilder()
			for _, p := range parts {
				b.Append(get(p))
			}

			return b.MustBuild()
		},
	}
}

// leaf declares a layout with no dependencies.
func leaf(name Name, build func(b *token.Builder)) catalogEntry {
	return catalogEntry{
		name: name,
		build: func(getFunc) *token.Formatter {
			b := token.NewBuilder()
			build(b)

			return b.MustBuild()
		},
	}
}

func buildCatalog(entries []catalogEntry) (map[Name]*token.Formatter, []Name, error) {
	order, err := buildOrder(entries)
	if err != nil {
		return nil, nil, err
	}

	built := make(map[Name]*token.Formatter, len(entries))
	names := make([]Name, 0, len(entries))

	for _, e := range order {
		get := func(n Name) *token.Formatter {
			if !slices.Contains(e.deps, n) {
				panic(fmt.Sprintf("layout %q did not declare dependency %q", e.name, n))
			}

			f, ok := built[n]
			if !ok {
				panic(fmt.Sprintf("layout %q built before its dependency %q", e.name, n))
			}

			return f
		}

		built[e.name] = e.build(get)
		names = append(names, e.name)
	}

	return built, names, nil
}

var catalogEntries = []catalogEntry{
	// elements
	leaf(NameYearElement, func(b *token.Builder) { b.Year(4, 9) }),
	leaf(NameMonthElement, func(b *token.Builder) { b.Literal("-").MonthOfYear(2) }),
	leaf(NameDayOfMonthElement, func(b *token.Builder) { b.Literal("-").DayOfMonth(2) }),
	leaf(NameWeekyearElement, func(b *token.Builder) { b.Weekyear(4, 9) }),
	leaf(NameWeekElement, func(b *token.Builder) { b.Literal("-W").WeekOfWeekyear(2) }),
	leaf(NameDayOfWeekElement, func(b *token.Builder) { b.Literal("-").DayOfWeek(1) }),
	leaf(NameDayOfYearElement, func(b *token.Builder) { b.Literal("-").DayOfYear(3) }),
	leaf(NameLiteralTElement, func(b *token.Builder) { b.Literal("T") }),
	leaf(NameHourElement, func(b *token.Builder) { b.HourOfDay(2) }),
	leaf(NameMinuteElement, func(b *token.Builder) { b.Literal(":").MinuteOfHour(2) }),
	leaf(NameSecondElement, func(b *token.Builder) { b.Literal(":").SecondOfMinute(2) }),
	leaf(NameFractionElement, func(b *token.Builder) { b.Literal(".").FractionOfSecond(3, 9) }),
	leaf(NameOffsetElement, func(b *token.Builder) { b.TimeZoneOffset("Z", true, 2, 4) }),

	// reduced and partial layouts
	concat(NameYear, NameYearElement),
	concat(NameYearMonth, NameYearElement, NameMonthElement),
	concat(NameYearMonthDay, NameYearElement, NameMonthElement, NameDayOfMonthElement),
	concat(NameWeekyear, NameWeekyearElement),
	concat(NameWeekyearWeek, NameWeekyearElement, NameWeekElement),
	concat(NameWeekyearWeekDay, NameWeekyearElement, NameWeekElement, NameDayOfWeekElement),
	concat(NameHour, NameHourElement),
	concat(NameHourMinute, NameHourElement, NameMinuteElement),
	concat(NameHourMinuteSecond, NameHourElement, NameMinuteElement, NameSecondElement),
	{
		name: NameHourMinuteSecondMillis,
		deps: []Name{NameHourMinuteSecond},
		build: func(get getFunc) *token.Formatter {
			return token.NewBuilder().
				Append(get(NameHourMinuteSecond)).
				Literal(".").
				FractionOfSecond(3, 3).
				MustBuild()
		},
	},
	concat(NameHourMinuteSecondFraction, NameHourMinuteSecond, NameFractionElement),
	concat(NameDateHour, NameDate, NameLiteralTElement, NameHour),
	concat(NameDateHourMinute, NameDate, NameLiteralTElement, NameHourMinute),
	concat(NameDateHourMinuteSecond, NameDate, NameLiteralTElement, NameHourMinuteSecond),
	concat(NameDateHourMinuteSecondMillis, NameDate, NameLiteralTElement, NameHourMinuteSecondMillis),
	concat(NameDateHourMinuteSecondFraction, NameDate, NameLiteralTElement, NameHourMinuteSecondFraction),

	// extended
	concat(NameDate, NameYearMonthDay),
	concat(NameTime, NameHourMinuteSecondFraction, NameOffsetElement),
	concat(NameTimeNoMillis, NameHourMinuteSecond, NameOffsetElement),
	concat(NameTTime, NameLiteralTElement, NameTime),
	concat(NameTTimeNoMillis, NameLiteralTElement, NameTimeNoMillis),
	concat(NameDateTime, NameDate, NameTTime),
	concat(NameDateTimeNoMillis, NameDate, NameTTimeNoMillis),
	concat(NameOrdinalDate, NameYearElement, NameDayOfYearElement),
	concat(NameOrdinalDateTime, NameOrdinalDate, NameTTime),
	concat(NameOrdinalDateTimeNoMillis, NameOrdinalDate, NameTTimeNoMillis),
	concat(NameWeekDate, NameWeekyearWeekDay),
	concat(NameWeekDateTime, NameWeekDate, NameTTime),
	concat(NameWeekDateTimeNoMillis, NameWeekDate, NameTTimeNoMillis),

	// basic
	leaf(NameBasicDate, func(b *token.Builder) {
		b.Year(4, 4).
			FixedDecimal(field.MonthOfYear, 2).
			FixedDecimal(field.DayOfMonth, 2)
	}),
	leaf(NameBasicTime, func(b *token.Builder) {
		b.FixedDecimal(field.HourOfDay, 2).
			FixedDecimal(field.MinuteOfHour, 2).
			FixedDecimal(field.SecondOfMinute, 2).
			Literal(".").
			FractionOfSecond(3, 9).
			TimeZoneOffset("Z", false, 2, 2)
	}),
	leaf(NameBasicTimeNoMillis, func(b *token.Builder) {
		b.FixedDecimal(field.HourOfDay, 2).
			FixedDecimal(field.MinuteOfHour, 2).
			FixedDecimal(field.SecondOfMinute, 2).
			TimeZoneOffset("Z", false, 2, 2)
	}),
	concat(NameBasicTTime, NameLiteralTElement, NameBasicTime),
	concat(NameBasicTTimeNoMillis, NameLiteralTElement, NameBasicTimeNoMillis),
	concat(NameBasicDateTime, NameBasicDate, NameBasicTTime),
	concat(NameBasicDateTimeNoMillis, NameBasicDate, NameBasicTTimeNoMillis),
	leaf(NameBasicOrdinalDate, func(b *token.Builder) {
		b.Year(4, 4).FixedDecimal(field.DayOfYear, 3)
	}),
	concat(NameBasicOrdinalDateTime, NameBasicOrdinalDate, NameBasicTTime),
	concat(NameBasicOrdinalDateTimeNoMillis, NameBasicOrdinalDate, NameBasicTTimeNoMillis),
	leaf(NameBasicWeekDate, func(b *token.Builder) {
		b.Weekyear(4, 4).
			Literal("W").
			FixedDecimal(field.WeekOfWeekyear, 2).
			FixedDecimal(field.DayOfWeek, 1)
	}),
	concat(NameBasicWeekDateTime, NameBasicWeekDate, NameBasicTTime),
	concat(NameBasicWeekDateTimeNoMillis, NameBasicWeekDate, NameBasicTTimeNoMillis),

	// parsers
	{
		name: NameDateElementParser,
		deps: []Name{
			NameYearElement, NameMonthElement, NameDayOfMonthElement,
			NameWeekyearElement, NameWeekElement, NameDayOfWeekElement, NameDayOfYearElement,
		},
		build: func(get getFunc) *token.Formatter {
			calendar := token.NewBuilder().
				Append(get(NameYearElement)).
				Optional(token.NewBuilder().
					Append(get(NameMonthElement)).
					Optional(get(NameDayOfMonthElement)).
					MustBuild()).
				MustBuild()
			week := token.NewBuilder().
				Append(get(NameWeekyearElement)).
				Append(get(NameWeekElement)).
				Optional(get(NameDayOfWeekElement)).
				MustBuild()
			ordinal := token.NewBuilder().
				Append(get(NameYearElement)).
				Append(get(NameDayOfYearElement)).
				MustBuild()

			return token.NewBuilder().Alternatives(false, calendar, week, ordinal).MustBuild()
		},
	},
	{
		name: NameTimeElementParser,
		deps: []Name{NameHourElement, NameMinuteElement, NameSecondElement},
		build: func(get getFunc) *token.Formatter {
			point := token.NewBuilder().
				Alternatives(false,
					token.NewBuilder().Literal(".").MustBuild(),
					token.NewBuilder().Literal(",").MustBuild()).
				MustBuild()
			fractionOf := func(unit field.Type) *token.Formatter {
				b := token.NewBuilder().Append(point)
				switch unit {
				case field.HourOfDay:
					b.FractionOfHour(1, 9)
				case field.MinuteOfHour:
					b.FractionOfMinute(1, 9)
				default:
					b.FractionOfSecond(1, 9)
				}

				return b.MustBuild()
			}

			seconds := token.NewBuilder().
				Append(get(NameSecondElement)).
				Optional(fractionOf(field.SecondOfMinute)).
				MustBuild()
			minutes := token.NewBuilder().
				Append(get(NameMinuteElement)).
				Alternatives(true, seconds, fractionOf(field.MinuteOfHour)).
				MustBuild()

			return token.NewBuilder().
				Append(get(NameHourElement)).
				Alternatives(true, minutes, fractionOf(field.HourOfDay)).
				MustBuild()
		},
	},
	{
		name: NameDateParser,
		deps: []Name{NameDateElementParser, NameLiteralTElement, NameOffsetElement},
		build: func(get getFunc) *token.Formatter {
			return token.NewBuilder().
				Append(get(NameDateElementParser)).
				Optional(token.NewBuilder().
					Append(get(NameLiteralTElement)).
					Append(get(NameOffsetElement)).
					MustBuild()).
				MustBuild()
		},
	},
	concat(NameLocalDateParser, NameDateElementParser),
	{
		name: NameTimeParser,
		deps: []Name{NameLiteralTElement, NameTimeElementParser, NameOffsetElement},
		build: func(get getFunc) *token.Formatter {
			return token.NewBuilder().
				Optional(get(NameLiteralTElement)).
				Append(get(NameTimeElementParser)).
				Optional(get(NameOffsetElement)).
				MustBuild()
		},
	},
	{
		name: NameLocalTimeParser,
		deps: []Name{NameLiteralTElement, NameTimeElementParser},
		build: func(get getFunc) *token.Formatter {
			return token.NewBuilder().
				Optional(get(NameLiteralTElement)).
				Append(get(NameTimeElementParser)).
				MustBuild()
		},
	},
	{
		name: NameDateOptionalTimeParser,
		deps: []Name{NameDateElementParser, NameLiteralTElement, NameTimeElementParser, NameOffsetElement},
		build: func(get getFunc) *token.Formatter {
			return token.NewBuilder().
				Append(get(NameDateElementParser)).
				Optional(token.NewBuilder().
					Append(get(NameLiteralTElement)).
					Optional(get(NameTimeElementParser)).
					Optional(get(NameOffsetElement)).
					MustBuild()).
				MustBuild()
		},
	},
	{
		name: NameLocalDateOptionalTimeParser,
		deps: []Name{NameDateElementParser, NameLiteralTElement, NameTimeElementParser},
		build: func(get getFunc) *token.Formatter {
			return token.NewBuilder().
				Append(get(NameDateElementParser)).
				Optional(token.NewBuilder().
					Append(get(NameLiteralTElement)).
					Append(get(NameTimeElementParser)).
					MustBuild()).
				MustBuild()
		},
	},
	{
		name: NameDateTimeParser,
		deps: []Name{NameLiteralTElement, NameTimeElementParser, NameOffsetElement, NameDateOptionalTimeParser},
		build: func(get getFunc) *token.Formatter {
			timeOnly := token.NewBuilder().
				Append(get(NameLiteralTElement)).
				Append(get(NameTimeElementParser)).
				Optional(get(NameOffsetElement)).
				MustBuild()

			return token.NewBuilder().
				Alternatives(false, timeOnly, get(NameDateOptionalTimeParser)).
				MustBuild()
		},
	},
}
