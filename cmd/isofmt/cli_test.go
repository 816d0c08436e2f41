package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isofields/isoformat"
)

const testInstant = "2024-03-05T14:07:09.123Z"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--at", testInstant))

	err := root.Execute()

	return out.String(), err
}

func TestResolveCmd(t *testing.T) {
	out, err := execute(t, "resolve", "year,monthOfYear,dayOfMonth")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern:  yyyy-MM-dd\n")
	assert.Contains(t, out, "sample:   2024-03-05\n")
	assert.Contains(t, out, "leftover: []\n")

	out, err = execute(t, "resolve", "--basic", "weekyear", "weekOfWeekyear", "dayOfWeek")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern:  xxxx'W'wwe\n")
	assert.Contains(t, out, "sample:   2024W102\n")
}

func TestResolveCmdStrictness(t *testing.T) {
	_, err := execute(t, "resolve", "year", "dayOfMonth")
	require.ErrorIs(t, err, isoformat.ErrNonISOFormat)

	out, err := execute(t, "resolve", "--lenient", "year", "dayOfMonth")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern:  yyyy--dd\n")
	assert.Contains(t, out, "warning:")

	_, err = execute(t, "resolve", "fortnight")
	require.Error(t, err)
}

func TestResolveCmdReadsEnvironment(t *testing.T) {
	t.Setenv("ISOFMT_BASIC", "true")

	out, err := execute(t, "resolve", "year,monthOfYear,dayOfMonth")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern:  yyyyMMdd\n")
}

func TestPatternAndListCmd(t *testing.T) {
	out, err := execute(t, "pattern", "basicDateTime")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern: yyyyMMdd'T'HHmmss.SSSZ\n")
	assert.Contains(t, out, "sample:  20240305T140709.123Z\n")

	out, err = execute(t, "pattern", "dateParser")
	require.NoError(t, err)
	assert.Contains(t, out, "cannot print")

	_, err = execute(t, "pattern", "nope")
	require.Error(t, err)

	_, err = execute(t, "pattern", "date_time")
	require.ErrorContains(t, err, "did you mean dateTime")

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "dateTime")
	assert.Contains(t, out, "yyyy-MM-dd'T'HH:mm:ss.SSSZZ")
}

func TestParseCmd(t *testing.T) {
	out, err := execute(t, "parse", "dateOptionalTimeParser", "2024-03-05T10:30Z")
	require.NoError(t, err)
	assert.Contains(t, out, "instant: 2024-03-05T10:30:00Z\n")

	out, err = execute(t, "parse", "--fields", "year,dayOfYear", "2024-065")
	require.NoError(t, err)
	assert.Contains(t, out, "values:  {year=2024 dayOfYear=65}\n")
	assert.Contains(t, out, "instant: 2024-03-05T00:00:00Z\n")

	_, err = execute(t, "parse", "date", "2024-13")
	require.Error(t, err)

	_, err = execute(t, "parse", "2024-065")
	require.Error(t, err)
}

func TestBatchCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
requests:
  - name: calendar
    fields: [year, monthOfYear, dayOfMonth]
  - name: catalog
    pattern: weekDate
  - name: broken
    fields: [year, dayOfMonth]
`), 0o600))

	out, err := execute(t, "batch", "--workers", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-05")
	assert.Contains(t, out, "2024-W10-2")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "3 requests, 1 failed\n")

	_, err = execute(t, "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("ISOFMT_BASIC", "true")

	out, err := execute(t, "resolve", "--basic=false", "year,monthOfYear,dayOfMonth")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern:  yyyy-MM-dd\n")

	t.Setenv("ISOFMT_BASIC", "yes")

	_, err = execute(t, "resolve", "year")
	require.ErrorContains(t, err, "failed to read environment")
}

func TestCommandFlagsDoNotCarryOver(t *testing.T) {
	out, err := execute(t, "parse", "--fields", "year,dayOfYear", "2024-065")
	require.NoError(t, err)
	assert.Contains(t, out, "dayOfYear=65")

	out, err = execute(t, "parse", "date", "2024-03-05")
	require.NoError(t, err)
	assert.Contains(t, out, "instant: 2024-03-05T00:00:00Z\n")

	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requests:\n  - fields: year, monthOfYear\n"), 0o600))

	_, err = execute(t, "batch", "--workers", "-1", path)
	require.ErrorContains(t, err, "--workers must not be negative")

	t.Setenv("ISOFMT_WORKERS", "1")

	out, err = execute(t, "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03")
	assert.Contains(t, out, "1 requests, 0 failed\n")
}
