package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"isofields/isoformat"
)

var sampleTime = time.Date(2024, time.March, 5, 14, 7, 9, 123_000_000, time.UTC)

const batch = `
version: "1"
requests:
  - name: calendar
    fields: [year, monthOfYear, dayOfMonth]
  - name: hour
    fields: hourOfDay
    strict: false
  - name: catalog
    pattern: basicDateTime
  - name: non-iso
    fields: [year, dayOfMonth]
  - name: missing
    pattern: fortnightly
  - name: leftover
    fields: year, weekOfWeekyear
  - name: parser
    pattern: dateOptionalTimeParser
`

func TestRunnerRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	f, err := Parse([]byte(batch))
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	r := NewRunner(zap.New(core), 3, sampleTime)

	outcomes, err := r.Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, outcomes, 7)

	byName := make(map[string]Outcome, len(outcomes))
	for i, out := range outcomes {
		assert.Equal(t, f.Requests[i].Name, out.Name, "outcomes keep request order")
		byName[out.Name] = out
	}

	assert.Equal(t, "yyyy-MM-dd", byName["calendar"].Pattern)
	assert.Equal(t, "2024-03-05", byName["calendar"].Sample)
	require.NoError(t, byName["calendar"].Err)

	assert.Equal(t, "14", byName["hour"].Sample)

	assert.Equal(t, "20240305T140709.123Z", byName["catalog"].Sample)

	require.ErrorIs(t, byName["non-iso"].Err, isoformat.ErrNonISOFormat)
	require.ErrorIs(t, byName["missing"].Err, ErrInvalidRequest)

	assert.Equal(t, "-'W'ww", byName["leftover"].Pattern)
	assert.Equal(t, "-W10", byName["leftover"].Sample)
	assert.Equal(t, []string{"year"}, byName["leftover"].Leftover)
	assert.True(t, byName["leftover"].ReducedPrecision)

	assert.Empty(t, byName["parser"].Sample)
	require.NoError(t, byName["parser"].Err)

	assert.Equal(t, 2, logs.FilterMessage("request failed").Len())
	assert.Equal(t, 5, logs.FilterMessage("request resolved").Len())
}

func TestRunnerCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	f, err := Parse([]byte(batch))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewRunner(nil, 0, sampleTime).Run(ctx, f)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunnerSingleWorkerCompletes(t *testing.T) {
	defer goleak.VerifyNone(t)

	f, err := Parse([]byte("requests:\n  - fields: [year, monthOfYear, dayOfMonth]\n"))
	require.NoError(t, err)

	outcomes, err := NewRunner(nil, 1, sampleTime).Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "request-1", outcomes[0].Name)
	assert.Equal(t, "2024-03-05", outcomes[0].Sample)
}
