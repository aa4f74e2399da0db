package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/prefs"
)

// appContext bundles the services a command needs.
type appContext struct {
	Site  *config.Site
	Store prefs.Store
	Log   *logger.Logger

	logFile *os.File
}

// openApp loads the site, the logger and the preference store. Interactive
// sessions own the screen, so their logs go to --log-file or nowhere. A
// preference store that cannot be opened only costs the remembered theme.
func openApp(cmd *cobra.Command, flags *rootFlags, interactive bool) (*appContext, error) {
	path := flags.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	s, err := config.Load(path, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	app := &appContext{Site: s}

	level := s.Settings.Log.Level
	if flags.verbose {
		level = "debug"
	}
	var w io.Writer = cmd.ErrOrStderr()
	human := true
	switch {
	case flags.logFile != "":
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.logFile = f
		w, human = f, false
	case interactive:
		w = io.Discard
	}
	app.Log, err = logger.New(logger.Options{Level: level, HumanReadable: human, Writer: w})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}

	prefsPath := s.Settings.Prefs.Path
	if prefsPath == "" && s.Settings.Prefs.Driver != prefs.DriverMemory {
		prefsPath, err = defaultPrefsPath(s.Settings.Prefs)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to determine preference path: %w", err)
		}
	}
	app.Store, err = prefs.Open(s.Settings.Prefs.Driver, prefsPath)
	if err != nil {
		app.Log.Warn(err, "preferences unavailable, remembering nothing this run")
		app.Store = prefs.NewMemoryStore()
	}
	if fs, ok := app.Store.(*prefs.FileStore); ok && fs.LoadErr() != nil {
		app.Log.Warn(fs.LoadErr(), "ignoring unreadable preferences file")
	}
	app.Log.WithFields(map[string]any{"driver": s.Settings.Prefs.Driver, "path": prefsPath}).Debug("preferences opened")

	return app, nil
}

// Close releases the store and the log file.
func (a *appContext) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Log.Warn(err, "closing preferences")
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func defaultPrefsPath(s config.PrefsSettings) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".folio", s.PrefsFileName()), nil
}
