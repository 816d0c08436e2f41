package request

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatchDebouncesWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requests: []\n"), 0o600))

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, zap.NewNop(), path, 50*time.Millisecond, func() { calls.Add(1) })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	for range 3 {
		require.NoError(t, os.WriteFile(path, []byte("requests:\n  - pattern: date\n"), 0o600))
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), zap.NewNop(), filepath.Join(t.TempDir(), "gone", "batch.yaml"),
		time.Millisecond, func() {})
	require.Error(t, err)
}
