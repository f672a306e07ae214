package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Info("recent store loaded", map[string]interface{}{
		"entries": 3,
		"path":    "gsearch.ini",
	})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "recent store loaded", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, float64(3), line["entries"])
	assert.Equal(t, "gsearch.ini", line["path"])
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("hidden", nil)
	log.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warning("shown", nil)
	assert.NotZero(t, buf.Len())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewDiscardOutput(t *testing.T) {
	log, err := New(Config{Level: "debug", Format: FormatJSON, Output: "discard"})
	require.NoError(t, err)
	log.Error("write failed", assert.AnError, map[string]interface{}{"path": "x"})
}
