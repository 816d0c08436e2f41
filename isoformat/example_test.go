package isoformat_test

import (
	"errors"
	"fmt"

	"isofields/field"
	"isofields/isoformat"
	"isofields/token"
)

func ExampleResolve() {
	fields := field.NewSet(field.Year, field.MonthOfYear, field.DayOfMonth, field.HourOfDay, field.MinuteOfHour)

	res, err := isoformat.Resolve(fields, isoformat.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}

	v := token.Values{}.
		With(field.Year, 2024).With(field.MonthOfYear, 3).With(field.DayOfMonth, 5).
		With(field.HourOfDay, 9).With(field.MinuteOfHour, 41)

	out, _ := res.Formatter.Print(v)
	fmt.Println(res.Formatter.Pattern())
	fmt.Println(out)
	// Output:
	// yyyy-MM-dd'T'HH:mm
	// 2024-03-05T09:41
}

func ExampleResolve_nonISO() {
	fields := field.NewSet(field.Year, field.DayOfMonth)

	_, err := isoformat.Resolve(fields, isoformat.DefaultOptions())
	fmt.Println(errors.Is(err, isoformat.ErrNonISOFormat))

	res, _ := isoformat.Resolve(fields, isoformat.Options{Extended: true})
	fmt.Println(res.Formatter.Pattern())
	// Output:
	// true
	// yyyy--dd
}

func ExampleResolveInPlace() {
	fields := field.NewSet(field.Year, field.WeekOfWeekyear, field.DayOfWeek)

	res, _ := isoformat.ResolveInPlace(&fields, isoformat.Options{Extended: false, StrictISO: true})
	fmt.Println(res.Formatter.Pattern())
	fmt.Println(fields)
	// Output:
	// -'W'wwe
	// [year]
}
