package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"page": "skills", "bars": 4})
	log.Info("page booted")

	entry := decode(t, buf)
	require.Equal(t, "page booted", entry["message"])
	require.Equal(t, "skills", entry["page"])
	require.EqualValues(t, 4, entry["bars"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerComponentTagsEntries(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf, Component: "cli"})
	require.NoError(t, err)

	log.Component("theme").Debug("toggled")

	entry := decode(t, buf)
	require.Equal(t, "theme", entry["component"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerWarnAndErrorIncludeContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"key": "folio-theme"})
	log.Error(errors.New("boom"), "failed")

	entry := decode(t, buf)
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "folio-theme", entry["key"])
	require.Equal(t, "boom", entry["error"])

	buf.Reset()
	log.Warn(nil, "no error attached")
	entry = decode(t, buf)
	require.Equal(t, "warn", entry["level"])
	require.NotContains(t, entry, "error")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Warn(errors.New("x"), "ignored")
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
		require.Nil(t, nilLogger.Component("x"))
	})

	require.NotPanics(t, func() {
		Nop().Error(errors.New("x"), "ignored")
	})
}
