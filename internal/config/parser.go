package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

//go:embed default_site.yaml
var defaultSite []byte

// DefaultSiteName is reported in errors about the embedded site.
const DefaultSiteName = "<embedded default site>"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseSite loads a site file from disk, applies defaults, validates it, and
// returns the resulting model.
func ParseSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// DefaultSite returns the embedded example site.
func DefaultSite() (*Site, error) {
	return Parse(DefaultSiteName, defaultSite)
}

// Parse decodes, defaults and validates a site document. name is only used
// in error messages.
func Parse(name string, data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, folioerrors.NewParseError(name, extractLine(err), err)
	}

	ApplyDefaults(&site)

	if err := ValidateSite(&site); err != nil {
		return nil, err
	}

	return &site, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
