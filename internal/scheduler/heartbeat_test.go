package scheduler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartbeat_BeatAndLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat")
	h := NewHeartbeat(path)

	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, h.Beat(now))

	last, ok, err := h.Last()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, last.Equal(now))
}

func TestHeartbeat_Last_NoMarker(t *testing.T) {
	h := NewHeartbeat(filepath.Join(t.TempDir(), "heartbeat"))

	_, ok, err := h.Last()

	require.NoError(t, err)
	assert.False(t, ok, "first start has no marker")
}

func TestHeartbeat_Beat_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "heartbeat")
	h := NewHeartbeat(path)

	require.NoError(t, h.Beat(time.Now()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestHeartbeat_Last_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat")
	require.NoError(t, os.WriteFile(path, []byte("not a timestamp"), 0o644))

	h := NewHeartbeat(path)

	_, _, err := h.Last()
	assert.Error(t, err)
}

func TestHeartbeat_BeatOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat")
	h := NewHeartbeat(path)

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(30 * time.Minute)

	require.NoError(t, h.Beat(first))
	require.NoError(t, h.Beat(second))

	last, ok, err := h.Last()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, last.Equal(second))
}
