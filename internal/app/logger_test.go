package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &Config{LogFormat: "json", LogLevel: "warn"})

	logger.Info("hidden")
	logger.Warn("visible", slog.String("number", "INV-1"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "INV-1", entry["number"])
}

func TestNewLoggerPretty(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &Config{LogFormat: "pretty"})

	logger.Debug("hidden")
	logger.Info("document created", slog.Int64("id", 7))

	out := buf.String()
	assert.Contains(t, out, "document created")
	assert.Contains(t, out, "id=7")
	assert.NotContains(t, out, "hidden")
}
