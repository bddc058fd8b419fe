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
		raw  string
		want slog.Level
	}{
		{raw: "debug", want: slog.LevelDebug},
		{raw: " INFO ", want: slog.LevelInfo},
		{raw: "error", want: slog.LevelError},
		{raw: "warn", want: slog.LevelWarn},
		{raw: "", want: slog.LevelWarn},
		{raw: "verbose", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.raw))
		})
	}
}

func TestNewJSONLoggerWritesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(Options{Level: "info", Format: "json", Output: &buf}), "router")

	logger.Info("no backend configured", slog.String("feature", "chats"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "router", record["component"])
	assert.Equal(t, "chats", record["feature"])
	assert.Equal(t, "no backend configured", record["msg"])
}

func TestNewTextLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestComponentWithNilLoggerDiscards(t *testing.T) {
	logger := Component(nil, "store")
	require.NotNil(t, logger)
	logger.Error("dropped")
}
