package config

import (
	"gopkg.in/yaml.v3"
)

// Site is the full folio content and settings document.
type Site struct {
	Version  string    `yaml:"version" validate:"required,semver"`
	Owner    string    `yaml:"owner" validate:"required,min=1,max=80"`
	Tagline  string    `yaml:"tagline,omitempty" validate:"max=160"`
	About    string    `yaml:"about,omitempty"`
	Skills   []Skill   `yaml:"skills,omitempty" validate:"omitempty,dive"`
	Projects []Project `yaml:"projects,omitempty" validate:"omitempty,dive"`
	Contact  Contact   `yaml:"contact,omitempty"`
	Settings Settings  `yaml:"settings,omitempty"`
}

// Skill is one animated progress bar.
type Skill struct {
	Name    string  `yaml:"name" validate:"required,max=40"`
	Percent Percent `yaml:"percent,omitempty"`
}

// Percent keeps the raw scalar of a skill's percent so that malformed values
// reach the page as-is and degrade there, the way a data attribute would.
type Percent string

// UnmarshalYAML accepts any scalar.
func (p *Percent) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		*p = ""
		return nil
	}
	*p = Percent(value.Value)
	return nil
}

// Project is one card on the projects page.
type Project struct {
	Title   string `yaml:"title" validate:"required,max=80"`
	Tech    string `yaml:"tech,omitempty" validate:"omitempty,tech_tag"`
	Summary string `yaml:"summary,omitempty"`
	URL     string `yaml:"url,omitempty" validate:"omitempty,url"`
}

// Contact holds the details shown beside the contact form.
type Contact struct {
	Email    string `yaml:"email,omitempty" validate:"omitempty,email"`
	Location string `yaml:"location,omitempty"`
}

// Settings holds runtime behavior.
type Settings struct {
	Prefs   PrefsSettings   `yaml:"prefs,omitempty"`
	Theme   ThemeSettings   `yaml:"theme,omitempty"`
	Contact ContactSettings `yaml:"contact,omitempty"`
	Clock   ClockSettings   `yaml:"clock,omitempty"`
	Log     LogSettings     `yaml:"log,omitempty"`
}

// PrefsSettings selects where the theme preference is stored.
type PrefsSettings struct {
	Driver string `yaml:"driver,omitempty" validate:"omitempty,prefs_driver"`
	Path   string `yaml:"path,omitempty"`
}

// ThemeSettings holds the fallback theme for unreadable stored values.
type ThemeSettings struct {
	Default string `yaml:"default,omitempty" validate:"omitempty,theme"`
}

// ContactSettings tunes the contact form note.
type ContactSettings struct {
	CancelPendingClear bool `yaml:"cancel_pending_clear,omitempty"`
	ClearAfterMS       int  `yaml:"clear_after_ms,omitempty" validate:"omitempty,min=1,max=600000"`
}

// ClockSettings sets the clock readout layout.
type ClockSettings struct {
	Layout string `yaml:"layout,omitempty"`
}

// LogSettings sets the log level.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
}
