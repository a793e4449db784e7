package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesFileAndConsole(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	var console bytes.Buffer
	closeLog, err := Init(Options{Dir: dir, Level: slog.LevelInfo, Console: &console})
	require.NoError(t, err)

	slog.Info("item moved", "item_id", "A")
	slog.Debug("hidden")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(filepath.Join(dir, "boardview.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "item moved")
	assert.Contains(t, string(data), "item_id=A")
	assert.NotContains(t, string(data), "hidden")

	assert.Contains(t, console.String(), "item moved")
	assert.NotContains(t, console.String(), "hidden")
}

func TestFanout_WithAttrsReachesEveryHandler(t *testing.T) {
	t.Parallel()
	var a, b bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	logger := slog.New(h).With("board_id", "roadmap")

	logger.Info("one")
	logger.Error("two")

	assert.Contains(t, a.String(), "board_id=roadmap")
	assert.Contains(t, a.String(), "one")
	assert.NotContains(t, b.String(), "one")
	assert.Contains(t, b.String(), "two")
	assert.Contains(t, b.String(), "board_id=roadmap")
}

func TestCharmLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "debug", charmLevel(slog.LevelDebug).String())
	assert.Equal(t, "info", charmLevel(slog.LevelInfo).String())
	assert.Equal(t, "warn", charmLevel(slog.LevelWarn).String())
	assert.Equal(t, "error", charmLevel(slog.LevelError).String())
}
