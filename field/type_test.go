package field_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isofields/field"
)

func Example() {
	fmt.Println(field.Year)
	fmt.Println(field.WeekOfWeekyear)
	fmt.Println(field.MillisOfSecond)
	fmt.Println(field.Type(0))
	fmt.Println(field.NewSet(field.DayOfMonth, field.Year, field.MonthOfYear))
	// Output:
	// year
	// weekOfWeekyear
	// millisOfSecond
	// Type(0)
	// [year monthOfYear dayOfMonth]
}

func TestAll(t *testing.T) {
	all := field.All()
	require.Len(t, all, field.Total-1)
	assert.Equal(t, field.Year, all[0])
	assert.Equal(t, field.MillisOfSecond, all[len(all)-1])

	for _, ft := range all {
		assert.True(t, ft.IsValid(), ft.String())
		assert.NotEqual(t, ft.IsDate(), ft.IsTime(), ft.String())
	}

	assert.False(t, field.Type(0).IsValid())
	assert.False(t, field.Type(field.Total).IsValid())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want field.Type
	}{
		{"year", field.Year},
		{"monthOfYear", field.MonthOfYear},
		{"MONTHOFYEAR", field.MonthOfYear},
		{" weekyear ", field.Weekyear},
		{"millisofsecond", field.MillisOfSecond},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := field.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := field.Parse("fortnight")
	require.ErrorIs(t, err, field.ErrUnknownType)
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = field.Parse("monthOfYaer")
	require.ErrorIs(t, err, field.ErrUnknownType)
	assert.Equal(t, `unknown field type "monthOfYaer", did you mean monthOfYear?`, err.Error())
}

func TestParseList(t *testing.T) {
	types, err := field.ParseList("year, monthOfYear,,dayOfMonth")
	require.NoError(t, err)
	assert.Equal(t, []field.Type{field.Year, field.MonthOfYear, field.DayOfMonth}, types)

	_, err = field.ParseList("year,century")
	require.Error(t, err)
}

func TestPatternLetters(t *testing.T) {
	letters := ""
	for _, ft := range field.All() {
		letters += string(ft.PatternLetter())
	}

	assert.Equal(t, "yMdDxweHmsS", letters)
	assert.Panics(t, func() { field.Type(0).PatternLetter() })
}

func TestRange(t *testing.T) {
	lo, hi := field.DayOfWeek.Range()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 7, hi)

	lo, hi = field.MillisOfSecond.Range()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 999, hi)
}
