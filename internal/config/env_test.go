package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func lookupFrom(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaultWithOverrides(t *testing.T) {
	t.Parallel()

	site, err := Load("", lookupFrom(map[string]string{
		EnvPrefsPath:    "/tmp/folio/prefs.db",
		EnvPrefsDriver:  "sqlite",
		EnvLogLevel:     "debug",
		EnvDefaultTheme: "light",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/folio/prefs.db", site.Settings.Prefs.Path)
	assert.Equal(t, "sqlite", site.Settings.Prefs.Driver)
	assert.Equal(t, "debug", site.Settings.Log.Level)
	assert.Equal(t, "light", site.Settings.Theme.Default)
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	t.Parallel()

	_, err := Load("", lookupFrom(map[string]string{EnvDefaultTheme: "sepia"}))
	var validationErr *folioerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "settings.theme.default", validationErr.Field)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := writeTempSite(t, "owner: Someone\n")
	site, err := Load(path, lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, "Someone", site.Owner)
	assert.Equal(t, DefaultVersion, site.Version)
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	t.Parallel()

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadDotEnvDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FOLIO_TEST_DOTENV=from-file\nFOLIO_TEST_DOTENV_SET=from-file\n"), 0o600))

	t.Setenv("FOLIO_TEST_DOTENV_SET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("FOLIO_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("FOLIO_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("FOLIO_TEST_DOTENV_SET"))
}
