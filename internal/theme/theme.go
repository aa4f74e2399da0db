// Package theme keeps the page's light/dark marker in sync with the stored
// preference.
package theme

import (
	"fmt"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/render"
)

// Theme is one of the two mutually exclusive page markers.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const (
	ToggleID   = "themeToggle"
	StorageKey = "folio-theme"
)

// Parse validates a stored or user-supplied theme name.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// Opposite returns the other theme. Anything that is not dark flips to dark.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Store is the persistence the controller needs.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Root is the element carrying the theme marker.
type Root interface {
	render.Target
	SetClassName(raw string)
}

// Controller owns the theme marker on the page root.
type Controller struct {
	root     Root
	toggle   render.Target
	store    Store
	fallback Theme
	log      *logger.Logger
}

// New returns a controller. toggle may be nil, in which case Toggle does
// nothing. fallback is applied when the stored value is not a known theme.
func New(root Root, toggle render.Target, store Store, fallback Theme, log *logger.Logger) *Controller {
	if _, err := Parse(string(fallback)); err != nil {
		fallback = Dark
	}
	return &Controller{root: root, toggle: toggle, store: store, fallback: fallback, log: log}
}

// Setup restores the stored theme onto the page root and, when the page has a
// toggle control, wires its click to Toggle.
func Setup(doc *render.Document, store Store, fallback Theme, log *logger.Logger) *Controller {
	var toggle render.Target
	btn := doc.ByID(ToggleID)
	if btn != nil {
		toggle = btn
	}

	c := New(doc.Root(), toggle, store, fallback, log)
	c.Restore()

	if btn != nil {
		btn.On(render.EventClick, func(*render.Event) {
			c.Toggle()
		})
	}
	return c
}

// Restore applies the stored theme. A known value replaces the root's whole
// class list; an unknown value is replaced by the fallback theme; no stored
// value leaves the root untouched.
func (c *Controller) Restore() Theme {
	saved, ok, err := c.store.Get(StorageKey)
	if err != nil {
		c.log.Warn(err, "theme preference unreadable")
		return c.Current()
	}
	if !ok || saved == "" {
		return c.Current()
	}

	t, err := Parse(saved)
	if err != nil {
		c.log.WithFields(map[string]any{"stored": saved, "fallback": c.fallback}).Warn(err, "ignoring stored theme")
		t = c.fallback
	}
	c.root.SetClassName(string(t))
	return t
}

// Toggle flips the root between dark and light, persists the result and
// drops focus from the toggle control.
func (c *Controller) Toggle() Theme {
	if c.toggle == nil {
		return c.Current()
	}

	next := Light
	if !c.root.HasClass(string(Dark)) {
		next = Dark
	}
	c.root.ReplaceClass(string(Dark), string(next))
	c.root.ReplaceClass(string(Light), string(next))
	c.persist(next)
	c.toggle.Blur()

	c.log.WithFields(map[string]any{"theme": next}).Debug("theme toggled")
	return next
}

// Set applies t regardless of the current marker and persists it.
func (c *Controller) Set(t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	c.root.RemoveClass(string(t.Opposite()))
	c.root.AddClass(string(t))
	c.persist(t)
	return nil
}

// Current reports the marker on the root, or "" when neither is present.
func (c *Controller) Current() Theme {
	switch {
	case c.root.HasClass(string(Dark)):
		return Dark
	case c.root.HasClass(string(Light)):
		return Light
	default:
		return ""
	}
}

func (c *Controller) persist(t Theme) {
	if err := c.store.Set(StorageKey, string(t)); err != nil {
		c.log.Warn(err, "theme preference not saved")
	}
}
