package config

import (
	"github.com/alexisbeaulieu97/folio/internal/prefs"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// Defaults applied to settings left empty.
const (
	DefaultVersion   = "1.0"
	DefaultLogLevel  = "info"
	DefaultClearMS   = 4000
	DefaultPrefsFile = "prefs.json"
	DefaultPrefsDB   = "prefs.db"
)

// ApplyDefaults fills unset settings. The preference path is left empty so
// the caller can resolve it against the user's home directory.
func ApplyDefaults(site *Site) {
	if site.Version == "" {
		site.Version = DefaultVersion
	}
	s := &site.Settings
	if s.Prefs.Driver == "" {
		s.Prefs.Driver = prefs.DriverFile
	}
	if s.Theme.Default == "" {
		s.Theme.Default = string(theme.Dark)
	}
	if s.Contact.ClearAfterMS == 0 {
		s.Contact.ClearAfterMS = DefaultClearMS
	}
	if s.Log.Level == "" {
		s.Log.Level = DefaultLogLevel
	}
}

// PrefsFileName is the default file name for the configured driver.
func (s PrefsSettings) PrefsFileName() string {
	if s.Driver == prefs.DriverSQLite {
		return DefaultPrefsDB
	}
	return DefaultPrefsFile
}
