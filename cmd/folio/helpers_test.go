package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/alexisbeaulieu97/folio/internal/config"
)

// isolate points every command at a fresh preference file and clears
// environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvPrefsDriver, "")
	t.Setenv(config.EnvPrefsPath, filepath.Join(dir, "prefs.json"))
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvDefaultTheme, "")
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
