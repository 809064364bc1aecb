package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, "prod").With("component", "booking")
	l.LogInfo("Room %q has been booked", "Room 1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, `Room "Room 1" has been booked`, entry["msg"])
	assert.Equal(t, "booking", entry["component"])
}

func TestLogger_Std(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "prod").Std().Print("http: TLS handshake error")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "http: TLS handshake error", entry["msg"])
}
