package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Environment variables that override site settings.
const (
	EnvConfig       = "FOLIO_CONFIG"
	EnvPrefsPath    = "FOLIO_PREFS_PATH"
	EnvPrefsDriver  = "FOLIO_PREFS_DRIVER"
	EnvLogLevel     = "FOLIO_LOG_LEVEL"
	EnvDefaultTheme = "FOLIO_DEFAULT_THEME"
)

// LookupFunc mirrors os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads variables from the given files (".env" when none are
// given) without overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides settings from the environment and re-validates.
func ApplyEnv(site *Site, lookup LookupFunc) error {
	if v, ok := lookup(EnvPrefsPath); ok && v != "" {
		site.Settings.Prefs.Path = v
	}
	if v, ok := lookup(EnvPrefsDriver); ok && v != "" {
		site.Settings.Prefs.Driver = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		site.Settings.Log.Level = v
	}
	if v, ok := lookup(EnvDefaultTheme); ok && v != "" {
		site.Settings.Theme.Default = v
	}
	return ValidateSite(site)
}

// Load resolves the site from path, or the embedded default when path is
// empty, then applies environment overrides.
func Load(path string, lookup LookupFunc) (*Site, error) {
	var (
		site *Site
		err  error
	)
	if path == "" {
		site, err = DefaultSite()
	} else {
		site, err = ParseSite(path)
	}
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(site, lookup); err != nil {
		return nil, err
	}
	return site, nil
}
