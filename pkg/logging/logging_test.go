package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"DEBUG", LevelDebug},
		{"WARNING", LevelWarn},
		{"dEbUg", LevelDebug},
		{"", LevelInfo},
		{"trace", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("Json"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	logger.Debug("directive unsupported", "key", "nonexistent")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "directive unsupported", rec["msg"])
	assert.Equal(t, "nonexistent", rec["key"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Output: &buf})

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.False(t, logger.Enabled(t.Context(), LevelError))
	logger.Error("nothing happens")
}

func TestTee(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	tee := NewTee(
		NewHandler(Config{Level: LevelDebug, Output: &debugBuf}),
		NewHandler(Config{Level: LevelWarn, Output: &warnBuf}),
	)
	logger := slog.New(tee).With("component", "expand")

	logger.Debug("first")
	logger.Warn("second")

	assert.Contains(t, debugBuf.String(), "first")
	assert.Contains(t, debugBuf.String(), "second")
	assert.Contains(t, debugBuf.String(), "component=expand")
	assert.NotContains(t, warnBuf.String(), "first")
	assert.Contains(t, warnBuf.String(), "second")

	assert.True(t, tee.Enabled(t.Context(), LevelDebug))
	assert.False(t, NewTee(NewHandler(Config{Level: LevelError, Output: &warnBuf})).Enabled(t.Context(), LevelWarn))
}
