package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/prefs"
)

func TestThemeCommandPersistsAcrossRuns(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "theme")
	require.NoError(t, err)
	require.Equal(t, "dark", strings.TrimSpace(out))

	out, err = execute(t, "theme", "toggle")
	require.NoError(t, err)
	require.Equal(t, "light", strings.TrimSpace(out))

	out, err = execute(t, "theme", "show")
	require.NoError(t, err)
	require.Equal(t, "light", strings.TrimSpace(out))

	data, err := os.ReadFile(filepath.Join(dir, "prefs.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"folio-theme": "light"`)

	out, err = execute(t, "theme", "set", "dark")
	require.NoError(t, err)
	require.Equal(t, "dark", strings.TrimSpace(out))
}

func TestThemeSetRejectsUnknownTheme(t *testing.T) {
	isolate(t)

	_, err := execute(t, "theme", "set", "sepia")
	require.Error(t, err)
}

func TestThemeCommandWithSQLiteStore(t *testing.T) {
	dir := isolate(t)
	t.Setenv(config.EnvPrefsDriver, prefs.DriverSQLite)
	t.Setenv(config.EnvPrefsPath, filepath.Join(dir, "prefs.db"))

	_, err := execute(t, "theme", "toggle")
	require.NoError(t, err)

	out, err := execute(t, "theme", "show")
	require.NoError(t, err)
	require.Equal(t, "light", strings.TrimSpace(out))
}

func TestThemeCommandWritesLogFile(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "folio.log")

	_, err := execute(t, "theme", "toggle", "--verbose", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "preferences opened")
	require.Contains(t, string(data), "theme toggled")
}

func TestThemeToggleRepairsCorruptPreferences(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	out, err := execute(t, "theme", "toggle")
	require.NoError(t, err)
	require.Equal(t, "light", strings.TrimSpace(out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"folio-theme": "light"`)
}

func TestUnopenablePreferencesFallBackToMemory(t *testing.T) {
	dir := isolate(t)
	t.Setenv(config.EnvPrefsDriver, prefs.DriverSQLite)
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	t.Setenv(config.EnvPrefsPath, filepath.Join(blocker, "prefs.db"))

	out, err := execute(t, "theme", "toggle")
	require.NoError(t, err)
	require.Equal(t, "light", strings.TrimSpace(out))
}
