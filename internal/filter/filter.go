// Package filter shows or hides project cards by technology tag.
package filter

import (
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/render"
)

const (
	ControlID  = "techFilter"
	GridID     = "projectsGrid"
	ClassItem  = "project"
	ClassShown = "show"
	AttrTech   = "data-tech"

	// All is both the catch-all selection and the tag of untagged items.
	All = "all"
)

// Controller applies the selected category to a fixed set of items.
type Controller struct {
	control *render.Element
	items   []*render.Element
	log     *logger.Logger
}

// Setup binds the filter control to the project items on the page. It returns
// nil when the page has no filter control. Items are looked up inside the
// grid when present, otherwise across the whole page.
func Setup(doc *render.Document, log *logger.Logger) *Controller {
	control := doc.ByID(ControlID)
	if control == nil {
		return nil
	}

	scope := doc.ByID(GridID)
	if scope == nil {
		scope = doc.Root()
	}

	c := &Controller{control: control, items: scope.QueryAll(ClassItem), log: log}
	control.On(render.EventChange, func(*render.Event) {
		c.Apply(c.control.Value())
	})
	return c
}

// Tag returns the item's category, defaulting to All.
func Tag(item render.Target) string {
	if tag, ok := item.Attr(AttrTech); ok && tag != "" {
		return tag
	}
	return All
}

// Matches reports whether an item tagged tag is shown for selection.
func Matches(selection, tag string) bool {
	return selection == All || selection == tag
}

// Apply shows the items matching selection and hides the rest. It returns the
// number of items shown.
func (c *Controller) Apply(selection string) int {
	shown := 0
	for _, item := range c.items {
		if Matches(selection, Tag(item)) {
			item.SetVisible(true)
			item.AddClass(ClassShown)
			shown++
			continue
		}
		item.SetVisible(false)
		item.RemoveClass(ClassShown)
	}
	c.log.WithFields(map[string]any{"selection": selection, "shown": shown}).Debug("filter applied")
	return shown
}

// Select sets the control's value and fires its change event, as a user
// picking an option would.
func (c *Controller) Select(selection string) {
	c.control.SetValue(selection)
	c.control.Dispatch(render.EventChange)
}

// Selection returns the control's current value.
func (c *Controller) Selection() string {
	return c.control.Value()
}

// Options returns the values the control offers.
func (c *Controller) Options() []string {
	return c.control.Options()
}

// Cycle moves the selection by delta positions through the control's
// options, wrapping at either end.
func (c *Controller) Cycle(delta int) {
	opts := c.Options()
	if len(opts) == 0 {
		return
	}
	idx := 0
	for i, opt := range opts {
		if opt == c.Selection() {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%len(opts) + len(opts)) % len(opts)
	c.Select(opts[idx])
}

// Items returns the managed items in page order.
func (c *Controller) Items() []*render.Element {
	return c.items
}
