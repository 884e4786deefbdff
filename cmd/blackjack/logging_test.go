package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestNewLogger(t *testing.T) {
	t.Run("writes to the given writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closeLog, err := newLogger(&buf, "info", "")
		require.NoError(t, err)
		defer closeLog()

		logger.Debug("hidden")
		logger.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("writes to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blackjack.log")
		logger, closeLog, err := newLogger(&bytes.Buffer{}, "debug", path)
		require.NoError(t, err)
		logger.Debug("Dealer drew")
		closeLog()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Dealer drew")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, _, err := newLogger(&bytes.Buffer{}, "loud", "")
		assert.Error(t, err)
	})
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "debug", firstNonEmpty("", "debug", "info"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
