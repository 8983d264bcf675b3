package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quest.log")

	logger, closer, err := Open(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("quiz started", "category", "Category_Addition")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "quiz started")
	assert.Contains(t, out, "category=Category_Addition")
	assert.False(t, strings.Contains(out, "hidden"), "debug records are below the level")
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := Open("", slog.LevelDebug)
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closer.Close())
}
