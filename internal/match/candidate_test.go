package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fieldNames = []string{
	"year", "monthOfYear", "dayOfMonth", "dayOfYear", "weekyear", "weekOfWeekyear",
	"dayOfWeek", "hourOfDay", "minuteOfHour", "secondOfMinute", "millisOfSecond",
}

func TestRank(t *testing.T) {
	ranked := Rank("month_of_year", fieldNames)
	require.Len(t, ranked, len(fieldNames))

	best := ranked.Best()
	require.NotNil(t, best)
	assert.Equal(t, "monthOfYear", best.Name)
	assert.InDelta(t, 1.0, best.Score, 1e-9)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankIsDeterministic(t *testing.T) {
	first := Rank("dayOf", fieldNames)
	for range 10 {
		assert.Equal(t, first, Rank("dayOf", fieldNames))
	}

	// Ties are broken by name.
	assert.Equal(t, []string{"dayOfMonth", "dayOfWeek", "dayOfYear"},
		Suggest("dayOf", fieldNames, prefixScore, 3))
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"monthOfYaer", []string{"monthOfYear"}},
		{"houroday", []string{"hourOfDay"}},
		{"minute", []string{"minuteOfHour"}},
		{"fortnight", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.input, fieldNames, 0.75, 1))
		})
	}
}

func TestCandidateList(t *testing.T) {
	var empty CandidateList
	assert.Nil(t, empty.Best())
	assert.Empty(t, empty.Top(3))

	list := CandidateList{{"a", 0.9}, {"b", 0.5}, {"c", 0.1}}
	assert.Len(t, list.Top(2), 2)
	assert.Len(t, list.Top(5), 3)
	assert.Equal(t, CandidateList{{"a", 0.9}, {"b", 0.5}}, list.AboveThreshold(0.5))
}
