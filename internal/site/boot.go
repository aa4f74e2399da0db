package site

import (
	"time"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/filter"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/progress"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/schedule"
	"github.com/alexisbeaulieu97/folio/internal/session"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// ClassFocusOutline is added to the root once keyboard navigation starts.
const ClassFocusOutline = "show-focus-outline"

// Deps are the host services a page needs.
type Deps struct {
	Sched    schedule.Scheduler
	Store    theme.Store
	Settings config.Settings
	// Now supplies wall-clock time for the clock readout. Nil means time.Now.
	Now func() time.Time
	Log *logger.Logger
}

// App holds the controllers active on one loaded page. A controller is nil
// when the page lacks its elements.
type App struct {
	Doc      *render.Document
	Progress *progress.Animator
	Filter   *filter.Controller
	Theme    *theme.Controller
	Contact  *contact.Controller
	Session  *session.Controller

	log *logger.Logger
}

// Boot registers the controllers to start on the document's ready event.
func Boot(doc *render.Document, deps Deps) *App {
	log := deps.Log.WithFields(map[string]any{"page": doc.Title})
	app := &App{Doc: doc, log: log}

	doc.OnReady(func() {
		s := deps.Settings
		themeDefault, err := theme.Parse(s.Theme.Default)
		if err != nil {
			themeDefault = theme.Dark
		}

		app.Progress = progress.Setup(doc, deps.Sched, log.Component("progress"))
		app.Filter = filter.Setup(doc, log.Component("filter"))
		app.Theme = theme.Setup(doc, deps.Store, themeDefault, log.Component("theme"))
		app.Contact = contact.Setup(doc, deps.Sched, contact.Options{
			ClearAfter:         time.Duration(s.Contact.ClearAfterMS) * time.Millisecond,
			CancelPendingClear: s.Contact.CancelPendingClear,
			Log:                log.Component("contact"),
		})
		app.Session = session.Setup(doc, deps.Sched, session.Options{
			ClockLayout: s.Clock.Layout,
			Now:         deps.Now,
			Log:         log.Component("session"),
		})

		log.WithFields(map[string]any{
			"progress": app.Progress != nil,
			"filter":   app.Filter != nil,
			"contact":  app.Contact != nil,
			"session":  app.Session != nil,
		}).Debug("page ready")
	})
	return app
}

// Load builds page, boots it and fires the ready event. hidden is the page's
// visibility at load time.
func Load(s *config.Site, page Page, hidden bool, deps Deps) *App {
	doc := Build(s, page)
	doc.SetHidden(hidden)
	app := Boot(doc, deps)
	doc.Ready()
	return app
}

// KeyDown records keyboard use; Tab turns on focus outlines for the rest of
// the page's life.
func (a *App) KeyDown(key string) {
	if key == "tab" {
		a.Doc.Root().AddClass(ClassFocusOutline)
	}
}

// Unload stops the page's timers before it is discarded.
func (a *App) Unload() {
	if a.Session != nil {
		a.Session.Close()
	}
	a.log.Debug("page unloaded")
}
