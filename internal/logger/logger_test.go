// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects l into a buffer and returns a decoder for the last entry.
func capture(t *testing.T, l *Logger) func() map[string]any {
	t.Helper()
	var buf bytes.Buffer
	l.Logger = l.Output(&buf)

	return func() map[string]any {
		t.Helper()
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
		return entry
	}
}

func TestNewLogger_EntryFields(t *testing.T) {
	l := NewLogger("activity-server")
	last := capture(t, l)

	l.Info().Msg("listening")

	entry := last()
	assert.Equal(t, "activity-server", entry["role"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields", "caller is the function name")
}

func TestWithTraceID(t *testing.T) {
	l := NewLogger("activity-server")
	last := capture(t, l)

	l.WithTraceID("0192-trace").Info().Msg("signup")

	entry := last()
	assert.Equal(t, "0192-trace", entry[TraceIDField])
	assert.Equal(t, "activity-server", entry["role"])
}

func TestGetChildLogger_DoesNotLeakFieldsToParent(t *testing.T) {
	parent := NewLogger("activity-server")
	last := capture(t, parent)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("activity", "Chess Club").Logger()
	child.Info().Msg("child")
	assert.Equal(t, "Chess Club", last()["activity"])

	parent.Info().Msg("parent")
	assert.NotContains(t, last(), "activity")
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	l := NewLogger("activity-server").WithTraceID("req-trace")
	last := capture(t, l)

	r := httptest.NewRequest("GET", "/activities", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	FromRequest(r).Info().Msg("from request")

	assert.Equal(t, "req-trace", last()[TraceIDField])
}

func TestFromContext_WithoutLogger_NeverNil(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	l := FromContext(r.Context())

	require.NotNil(t, l)
	l.Info().Msg("no logger attached")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	l.Error().Msg("dropped")
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("activity-client", path)
	l.Info().Msg("catalog loaded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "activity-client", entry["role"])
	assert.Equal(t, "catalog loaded", entry["message"])
}

func TestNewClientLogger_UnwritablePathDiscards(t *testing.T) {
	l := NewClientLogger("activity-client", filepath.Join(t.TempDir(), "missing", "dir", "client.log"))
	require.NotNil(t, l)

	l.Info().Msg("discarded")
}
