package isoformat

import (
	"fmt"
	"slices"
	"sync"

	"isofields/internal/match"
	"isofields/token"
)

// Name identifies a catalog layout.
type Name string

const (
	NameYearElement       Name = "yearElement"       // yyyy
	NameMonthElement      Name = "monthElement"      // -MM
	NameDayOfMonthElement Name = "dayOfMonthElement" // -dd
	NameWeekyearElement   Name = "weekyearElement"   // xxxx
	NameWeekElement       Name = "weekElement"       // -Www
	NameDayOfWeekElement  Name = "dayOfWeekElement"  // -e
	NameDayOfYearElement  Name = "dayOfYearElement"  // -DDD
	NameHourElement       Name = "hourElement"       // HH
	NameMinuteElement     Name = "minuteElement"     // :mm
	NameSecondElement     Name = "secondElement"     // :ss
	NameFractionElement   Name = "fractionElement"   // .SSS, parses up to nine digits
	NameOffsetElement     Name = "offsetElement"     // Z or +HH:mm
	NameLiteralTElement   Name = "literalTElement"   // T

	NameYear                         Name = "year"
	NameYearMonth                    Name = "yearMonth"
	NameYearMonthDay                 Name = "yearMonthDay"
	NameWeekyear                     Name = "weekyear"
	NameWeekyearWeek                 Name = "weekyearWeek"
	NameWeekyearWeekDay              Name = "weekyearWeekDay"
	NameHour                         Name = "hour"
	NameHourMinute                   Name = "hourMinute"
	NameHourMinuteSecond             Name = "hourMinuteSecond"
	NameHourMinuteSecondMillis       Name = "hourMinuteSecondMillis"
	NameHourMinuteSecondFraction     Name = "hourMinuteSecondFraction"
	NameDateHour                     Name = "dateHour"
	NameDateHourMinute               Name = "dateHourMinute"
	NameDateHourMinuteSecond         Name = "dateHourMinuteSecond"
	NameDateHourMinuteSecondMillis   Name = "dateHourMinuteSecondMillis"
	NameDateHourMinuteSecondFraction Name = "dateHourMinuteSecondFraction"

	NameDate                    Name = "date"
	NameTime                    Name = "time"
	NameTimeNoMillis            Name = "timeNoMillis"
	NameTTime                   Name = "tTime"
	NameTTimeNoMillis           Name = "tTimeNoMillis"
	NameDateTime                Name = "dateTime"
	NameDateTimeNoMillis        Name = "dateTimeNoMillis"
	NameOrdinalDate             Name = "ordinalDate"
	NameOrdinalDateTime         Name = "ordinalDateTime"
	NameOrdinalDateTimeNoMillis Name = "ordinalDateTimeNoMillis"
	NameWeekDate                Name = "weekDate"
	NameWeekDateTime            Name = "weekDateTime"
	NameWeekDateTimeNoMillis    Name = "weekDateTimeNoMillis"

	NameBasicDate                    Name = "basicDate"
	NameBasicTime                    Name = "basicTime"
	NameBasicTimeNoMillis            Name = "basicTimeNoMillis"
	NameBasicTTime                   Name = "basicTTime"
	NameBasicTTimeNoMillis           Name = "basicTTimeNoMillis"
	NameBasicDateTime                Name = "basicDateTime"
	NameBasicDateTimeNoMillis        Name = "basicDateTimeNoMillis"
	NameBasicOrdinalDate             Name = "basicOrdinalDate"
	NameBasicOrdinalDateTime         Name = "basicOrdinalDateTime"
	NameBasicOrdinalDateTimeNoMillis Name = "basicOrdinalDateTimeNoMillis"
	NameBasicWeekDate                Name = "basicWeekDate"
	NameBasicWeekDateTime            Name = "basicWeekDateTime"
	NameBasicWeekDateTimeNoMillis    Name = "basicWeekDateTimeNoMillis"

	NameDateElementParser           Name = "dateElementParser"
	NameTimeElementParser           Name = "timeElementParser"
	NameDateParser                  Name = "dateParser"
	NameLocalDateParser             Name = "localDateParser"
	NameTimeParser                  Name = "timeParser"
	NameLocalTimeParser             Name = "localTimeParser"
	NameDateTimeParser              Name = "dateTimeParser"
	NameDateOptionalTimeParser      Name = "dateOptionalTimeParser"
	NameLocalDateOptionalTimeParser Name = "localDateOptionalTimeParser"
)

// catalog is filled once, in dependency order, and read-only afterwards.
var catalog struct {
	once   sync.Once
	byName map[Name]*token.Formatter
	order  []Name
}

func load() map[Name]*token.Formatter {
	catalog.once.Do(func() {
		byName, order, err := buildCatalog(catalogEntries)
		if err != nil {
			panic(fmt.Sprintf("isoformat: building catalog: %v", err))
		}

		catalog.byName, catalog.order = byName, order
	})

	return catalog.byName
}

func lookup(name Name) *token.Formatter {
	f, ok := load()[name]
	if !ok {
		panic("isoformat: no catalog layout named " + string(name))
	}

	return f
}

// Lookup returns the catalog layout with the given name.
func Lookup(name string) (*token.Formatter, bool) {
	f, ok := load()[Name(name)]
	return f, ok
}

// Similar returns up to n catalog names resembling name, best first.
func Similar(name string, n int) []string {
	names := Names()
	known := make([]string, len(names))

	for i, nm := range names {
		known[i] = string(nm)
	}

	return match.Suggest(name, known, similarThreshold, n)
}

const similarThreshold = 0.7

// Names returns every catalog name in build order, leaves first.
func Names() []Name {
	load()
	return slices.Clone(catalog.order)
}

// DateParser parses any date element optionally followed by 'T' and a zone
// offset.
func DateParser() *token.Formatter { return lookup(NameDateParser) }

// LocalDateParser parses any date element with no zone.
func LocalDateParser() *token.Formatter { return lookup(NameLocalDateParser) }

// DateElementParser parses calendar, week or ordinal dates of full or reduced
// precision: yyyy[-MM[-dd]], xxxx-'W'ww[-e] or yyyy-DDD.
func DateElementParser() *token.Formatter { return lookup(NameDateElementParser) }

// TimeParser parses an optional 'T', a time element and an optional offset.
func TimeParser() *token.Formatter { return lookup(NameTimeParser) }

// LocalTimeParser parses an optional 'T' and a time element with no zone.
func LocalTimeParser() *token.Formatter { return lookup(NameLocalTimeParser) }

// TimeElementParser parses HH[:mm[:ss[.S]]] where the last element may carry a
// fraction introduced by '.' or ','.
func TimeElementParser() *token.Formatter { return lookup(NameTimeElementParser) }

// DateTimeParser parses a date with an optional time, or a time introduced by 'T'.
func DateTimeParser() *token.Formatter { return lookup(NameDateTimeParser) }

// DateOptionalTimeParser parses a date, optionally followed by 'T', a time and
// an offset.
func DateOptionalTimeParser() *token.Formatter { return lookup(NameDateOptionalTimeParser) }

// LocalDateOptionalTimeParser parses a date, optionally followed by 'T' and a
// time, with no zone.
func LocalDateOptionalTimeParser() *token.Formatter {
	return lookup(NameLocalDateOptionalTimeParser)
}

// Date prints yyyy-MM-dd.
func Date() *token.Formatter { return lookup(NameDate) }

// Time prints HH:mm:ss.SSSZZ.
func Time() *token.Formatter { return lookup(NameTime) }

// TimeNoMillis prints HH:mm:ssZZ.
func TimeNoMillis() *token.Formatter { return lookup(NameTimeNoMillis) }

// TTime prints 'T'HH:mm:ss.SSSZZ.
func TTime() *token.Formatter { return lookup(NameTTime) }

// TTimeNoMillis prints 'T'HH:mm:ssZZ.
func TTimeNoMillis() *token.Formatter { return lookup(NameTTimeNoMillis) }

// DateTime prints yyyy-MM-dd'T'HH:mm:ss.SSSZZ.
func DateTime() *token.Formatter { return lookup(NameDateTime) }

// DateTimeNoMillis prints yyyy-MM-dd'T'HH:mm:ssZZ.
func DateTimeNoMillis() *token.Formatter { return lookup(NameDateTimeNoMillis) }

// OrdinalDate prints yyyy-DDD.
func OrdinalDate() *token.Formatter { return lookup(NameOrdinalDate) }

// OrdinalDateTime prints yyyy-DDD'T'HH:mm:ss.SSSZZ.
func OrdinalDateTime() *token.Formatter { return lookup(NameOrdinalDateTime) }

// OrdinalDateTimeNoMillis prints yyyy-DDD'T'HH:mm:ssZZ.
func OrdinalDateTimeNoMillis() *token.Formatter { return lookup(NameOrdinalDateTimeNoMillis) }

// WeekDate prints xxxx-'W'ww-e.
func WeekDate() *token.Formatter { return lookup(NameWeekDate) }

// WeekDateTime prints xxxx-'W'ww-e'T'HH:mm:ss.SSSZZ.
func WeekDateTime() *token.Formatter { return lookup(NameWeekDateTime) }

// WeekDateTimeNoMillis prints xxxx-'W'ww-e'T'HH:mm:ssZZ.
func WeekDateTimeNoMillis() *token.Formatter { return lookup(NameWeekDateTimeNoMillis) }

// BasicDate prints yyyyMMdd.
func BasicDate() *token.Formatter { return lookup(NameBasicDate) }

// BasicTime prints HHmmss.SSSZ.
func BasicTime() *token.Formatter { return lookup(NameBasicTime) }

// BasicTimeNoMillis prints HHmmssZ.
func BasicTimeNoMillis() *token.Formatter { return lookup(NameBasicTimeNoMillis) }

// BasicTTime prints 'T'HHmmss.SSSZ.
func BasicTTime() *token.Formatter { return lookup(NameBasicTTime) }

// BasicTTimeNoMillis prints 'T'HHmmssZ.
func BasicTTimeNoMillis() *token.Formatter { return lookup(NameBasicTTimeNoMillis) }

// BasicDateTime prints yyyyMMdd'T'HHmmss.SSSZ.
func BasicDateTime() *token.Formatter { return lookup(NameBasicDateTime) }

// BasicDateTimeNoMillis prints yyyyMMdd'T'HHmmssZ.
func BasicDateTimeNoMillis() *token.Formatter { return lookup(NameBasicDateTimeNoMillis) }

// BasicOrdinalDate prints yyyyDDD.
func BasicOrdinalDate() *token.Formatter { return lookup(NameBasicOrdinalDate) }

// BasicOrdinalDateTime prints yyyyDDD'T'HHmmss.SSSZ.
func BasicOrdinalDateTime() *token.Formatter { return lookup(NameBasicOrdinalDateTime) }

// BasicOrdinalDateTimeNoMillis prints yyyyDDD'T'HHmmssZ.
func BasicOrdinalDateTimeNoMillis() *token.Formatter {
	return lookup(NameBasicOrdinalDateTimeNoMillis)
}

// BasicWeekDate prints xxxx'W'wwe.
func BasicWeekDate() *token.Formatter { return lookup(NameBasicWeekDate) }

// BasicWeekDateTime prints xxxx'W'wwe'T'HHmmss.SSSZ.
func BasicWeekDateTime() *token.Formatter { return lookup(NameBasicWeekDateTime) }

// BasicWeekDateTimeNoMillis prints xxxx'W'wwe'T'HHmmssZ.
func BasicWeekDateTimeNoMillis() *token.Formatter { return lookup(NameBasicWeekDateTimeNoMillis) }

func Year() *token.Formatter { return lookup(NameYear) }

func YearMonth() *token.Formatter { return lookup(NameYearMonth) }

func YearMonthDay() *token.Formatter { return lookup(NameYearMonthDay) }

func Weekyear() *token.Formatter { return lookup(NameWeekyear) }

func WeekyearWeek() *token.Formatter { return lookup(NameWeekyearWeek) }

func WeekyearWeekDay() *token.Formatter { return lookup(NameWeekyearWeekDay) }

func Hour() *token.Formatter { return lookup(NameHour) }

func HourMinute() *token.Formatter { return lookup(NameHourMinute) }

func HourMinuteSecond() *token.Formatter { return lookup(NameHourMinuteSecond) }

func HourMinuteSecondMillis() *token.Formatter { return lookup(NameHourMinuteSecondMillis) }

func HourMinuteSecondFraction() *token.Formatter { return lookup(NameHourMinuteSecondFraction) }

func DateHour() *token.Formatter { return lookup(NameDateHour) }

func DateHourMinute() *token.Formatter { return lookup(NameDateHourMinute) }

func DateHourMinuteSecond() *token.Formatter { return lookup(NameDateHourMinuteSecond) }

func DateHourMinuteSecondMillis() *token.Formatter { return lookup(NameDateHourMinuteSecondMillis) }

func DateHourMinuteSecondFraction() *token.Formatter { return lookup(NameDateHourMinuteSecondFraction) }
