package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isofields/field"
)

var valuesComparer = cmp.Comparer(func(a, b Values) bool { return a.Equal(b) })

func date(y, m, d int) Values {
	var v Values
	v.Set(field.Year, y)
	v.Set(field.MonthOfYear, m)
	v.Set(field.DayOfMonth, d)

	return v
}

func TestBuildEmpty(t *testing.T) {
	b := NewBuilder()
	assert.False(t, b.CanBuildFormatter())
	assert.False(t, b.CanBuildParser())

	_, err := b.Build()
	require.ErrorIs(t, err, ErrEmptyBuilder)
	assert.Panics(t, func() { b.MustBuild() })
}

func TestExtendedDateRoundTrip(t *testing.T) {
	f := NewBuilder().
		Year(4, 9).
		Literal("-").MonthOfYear(2).
		Literal("-").DayOfMonth(2).
		MustBuild()

	assert.Equal(t, "yyyy-MM-dd", f.Pattern())

	out, err := f.Print(date(2024, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", out)

	parsed, err := f.Parse("2024-3-5")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(date(2024, 3, 5), parsed, valuesComparer))
}

func TestBasicDateReservesDigits(t *testing.T) {
	f := NewBuilder().Year(4, 9).MonthOfYear(2).DayOfMonth(2).MustBuild()
	assert.Equal(t, "yyyyMMdd", f.Pattern())

	parsed, err := f.Parse("20240305")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(date(2024, 3, 5), parsed, valuesComparer))

	// extra digits go to the variable width year
	parsed, err = f.Parse("120240305")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(date(12024, 3, 5), parsed, valuesComparer))

	_, err = f.Parse("2024")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestSignedYear(t *testing.T) {
	f := NewBuilder().Year(4, 9).MustBuild()

	out, err := f.Print(Values{}.With(field.Year, -44))
	require.NoError(t, err)
	assert.Equal(t, "-0044", out)

	parsed, err := f.Parse("+12345")
	require.NoError(t, err)
	y, ok := parsed.Get(field.Year)
	require.True(t, ok)
	assert.Equal(t, 12345, y)
}

func TestFixedDecimal(t *testing.T) {
	f := NewBuilder().FixedDecimal(field.HourOfDay, 2).FixedDecimal(field.MinuteOfHour, 2).MustBuild()

	_, err := f.Parse("930")
	require.Error(t, err)

	parsed, err := f.Parse("0930")
	require.NoError(t, err)
	h, _ := parsed.Get(field.HourOfDay)
	m, _ := parsed.Get(field.MinuteOfHour)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)
}

func TestPrintMissingField(t *testing.T) {
	f := NewBuilder().Year(4, 9).Literal("-").MonthOfYear(2).MustBuild()

	_, err := f.Print(Values{}.With(field.Year, 2024))
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "monthOfYear")
}

func TestFractionOfSecond(t *testing.T) {
	f := NewBuilder().Literal(".").FractionOfSecond(3, 9).MustBuild()
	assert.Equal(t, ".SSS", f.Pattern())

	out, err := f.Print(Values{}.With(field.MillisOfSecond, 7))
	require.NoError(t, err)
	assert.Equal(t, ".007", out)

	tests := []struct {
		in   string
		want int
	}{
		{".5", 500},
		{".25", 250},
		{".123456789", 123},
		{".0009", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			parsed, err := f.Parse(tt.in)
			require.NoError(t, err)
			ms, ok := parsed.Get(field.MillisOfSecond)
			require.True(t, ok)
			assert.Equal(t, tt.want, ms)
		})
	}
}

func TestFractionOfHourAndMinute(t *testing.T) {
	hour := NewBuilder().HourOfDay(2).Literal(".").FractionOfHour(1, 9).MustBuild()

	parsed, err := hour.Parse("10.5")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(Values{}.
		With(field.HourOfDay, 10).
		With(field.MinuteOfHour, 30).
		With(field.SecondOfMinute, 0).
		With(field.MillisOfSecond, 0), parsed, valuesComparer))

	out, err := hour.Print(parsed)
	require.NoError(t, err)
	assert.Equal(t, "10.5", out)

	minute := NewBuilder().FractionOfMinute(1, 9).MustBuild()
	parsed, err = minute.Parse("25")
	require.NoError(t, err)
	s, _ := parsed.Get(field.SecondOfMinute)
	assert.Equal(t, 15, s)
}

func TestTimeZoneOffset(t *testing.T) {
	extended := NewBuilder().TimeZoneOffset("Z", true, 2, 4).MustBuild()
	basic := NewBuilder().TimeZoneOffset("Z", false, 2, 2).MustBuild()

	tests := []struct {
		name     string
		seconds  int
		extended string
		basic    string
	}{
		{"utc", 0, "Z", "Z"},
		{"east", 5*3600 + 30*60, "+05:30", "+0530"},
		{"west", -8 * 3600, "-08:00", "-0800"},
		{"seconds", 3600 + 15, "+01:00:15", "+0100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Values{}.WithOffset(tt.seconds)

			out, err := extended.Print(v)
			require.NoError(t, err)
			assert.Equal(t, tt.extended, out)

			out, err = basic.Print(v)
			require.NoError(t, err)
			assert.Equal(t, tt.basic, out)

			parsed, err := extended.Parse(tt.extended)
			require.NoError(t, err)
			off, ok := parsed.Offset()
			require.True(t, ok)
			assert.Equal(t, tt.seconds, off)
		})
	}

	parsed, err := extended.Parse("-03")
	require.NoError(t, err)
	off, _ := parsed.Offset()
	assert.Equal(t, -3*3600, off)

	_, err = extended.Print(Values{})
	require.ErrorIs(t, err, ErrMissingOffset)

	_, err = extended.Parse("+25:00")
	require.Error(t, err)
}

func TestLiteralIgnoresCase(t *testing.T) {
	f := NewBuilder().Literal("T").HourOfDay(2).MustBuild()
	assert.Equal(t, "'T'HH", f.Pattern())

	_, err := f.Parse("t10")
	require.NoError(t, err)
}

func TestOptionalIsParseOnly(t *testing.T) {
	sub := NewBuilder().Literal("-").MonthOfYear(2).MustBuild()
	f := NewBuilder().Year(4, 4).Optional(sub).MustBuild()

	assert.False(t, f.CanPrint())
	assert.True(t, f.CanParse())
	assert.Equal(t, "yyyy[-MM]", f.Pattern())

	_, err := f.Print(Values{}.With(field.Year, 2024))
	require.ErrorIs(t, err, ErrNotPrinter)

	parsed, err := f.Parse("2024")
	require.NoError(t, err)
	assert.Equal(t, field.NewSet(field.Year), parsed.Fields())

	parsed, err = f.Parse("2024-07")
	require.NoError(t, err)
	assert.Equal(t, field.NewSet(field.Year, field.MonthOfYear), parsed.Fields())

	// a failed optional part leaves no partial values behind
	_, err = f.Parse("2024-x")
	require.Error(t, err)
}

func TestAlternativesPickLongest(t *testing.T) {
	calendar := NewBuilder().Year(4, 9).Optional(NewBuilder().Literal("-").MonthOfYear(2).MustBuild()).MustBuild()
	ordinal := NewBuilder().Year(4, 9).Literal("-").DayOfYear(3).MustBuild()

	f := NewBuilder().Alternatives(false, calendar, ordinal).MustBuild()
	assert.Equal(t, "(yyyy[-MM]|yyyy-DDD)", f.Pattern())

	parsed, err := f.Parse("2024-075")
	require.NoError(t, err)
	assert.Equal(t, field.NewSet(field.Year, field.DayOfYear), parsed.Fields())

	parsed, err = f.Parse("2024-07")
	require.NoError(t, err)
	assert.Equal(t, field.NewSet(field.Year, field.MonthOfYear), parsed.Fields())

	_, err = f.Parse("x")
	require.Error(t, err)
}

func TestAlternativesAllowEmpty(t *testing.T) {
	point := NewBuilder().Alternatives(false,
		NewBuilder().Literal(".").MustBuild(),
		NewBuilder().Literal(",").MustBuild(),
	).MustBuild()
	f := NewBuilder().
		HourOfDay(2).
		Alternatives(true, NewBuilder().Append(point).FractionOfHour(1, 9).MustBuild()).
		MustBuild()

	assert.Equal(t, "HH((.|,){hourOfDay fraction}|)", f.Pattern())

	_, err := f.Parse("10")
	require.NoError(t, err)

	parsed, err := f.Parse("10,25")
	require.NoError(t, err)
	m, _ := parsed.Get(field.MinuteOfHour)
	assert.Equal(t, 15, m)
}

func TestParseErrorMessage(t *testing.T) {
	f := NewBuilder().Year(4, 4).MustBuild()

	_, err := f.Parse("2024x")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 4, perr.Pos)
	assert.Contains(t, err.Error(), `"x"`)

	_, err = f.Parse("")
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "too short")
}

func TestBuildSnapshotsElements(t *testing.T) {
	b := NewBuilder().Year(4, 9)
	first := b.MustBuild()
	b.Literal("-").MonthOfYear(2)

	assert.Equal(t, "yyyy", first.Pattern())
	assert.Equal(t, "yyyy-MM", b.MustBuild().Pattern())
}
