// Package tui hosts folio pages in a Bubble Tea program. Each frame tick
// advances the page's event loop to the elapsed time since the page loaded,
// and terminal focus reports stand in for page visibility.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/schedule"
	"github.com/alexisbeaulieu97/folio/internal/site"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// FrameInterval is the tick rate driving animation frames and timers.
const FrameInterval = 16 * time.Millisecond

// DefaultWidth is used until the terminal reports its size.
const DefaultWidth = 80

type frameMsg time.Time

// Options configures a Model.
type Options struct {
	Site  *config.Site
	Page  site.Page
	Store theme.Store
	// Hidden starts the first page as if the terminal did not have focus.
	Hidden bool
	Width  int
	// Now supplies wall-clock time. Nil means time.Now.
	Now func() time.Time
	Log *logger.Logger
}

// Model is the Bubble Tea state for one folio session.
type Model struct {
	site  *config.Site
	store theme.Store
	now   func() time.Time
	log   *logger.Logger

	page      site.Page
	loop      *schedule.Loop
	app       *site.App
	loaded    time.Time
	sessionID string
	hidden    bool

	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel loads the starting page.
func NewModel(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Page == "" {
		opts.Page = site.Home
	}

	m := Model{
		site:   opts.Site,
		store:  opts.Store,
		now:    opts.Now,
		log:    opts.Log.Component("tui"),
		hidden: opts.Hidden,
		keys:   newKeyMap(),
		help:   help.New(),
		width:  opts.Width,
	}
	m.load(opts.Page)
	return m
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// load replaces the current page the way a navigation would: the old page's
// timers stop and the new page gets a fresh document, loop and session.
func (m *Model) load(page site.Page) {
	if m.app != nil {
		m.app.Unload()
	}

	m.page = page
	m.loop = schedule.NewLoop()
	m.loaded = m.now()
	m.sessionID = uuid.NewString()
	m.app = site.Load(m.site, page, m.hidden, site.Deps{
		Sched:    m.loop,
		Store:    m.store,
		Settings: m.site.Settings,
		Now:      m.now,
		Log:      m.log.WithFields(map[string]any{"session_id": m.sessionID}),
	})
	m.resetFields()
	m.keys.forPage(page, false)
}

func (m *Model) resetFields() {
	m.name = textinput.New()
	m.name.Placeholder = placeholder(m.app.Doc, contact.NameID)
	m.name.Prompt = ""
	m.email = textinput.New()
	m.email.Placeholder = placeholder(m.app.Doc, contact.EmailID)
	m.email.Prompt = ""
	m.message = textarea.New()
	m.message.Placeholder = placeholder(m.app.Doc, contact.MessageID)
	m.message.ShowLineNumbers = false
	m.message.SetHeight(3)
	m.message.SetWidth(fieldWidth(m.width))
}

func placeholder(doc *render.Document, id string) string {
	if el := doc.ByID(id); el != nil {
		v, _ := el.Attr("placeholder")
		return v
	}
	return ""
}

func fieldWidth(width int) int {
	if width-6 < 20 {
		return 20
	}
	if width-6 > 60 {
		return 60
	}
	return width - 6
}

// Advance moves the page clock forward by d in frame-sized steps, so
// animations see the same frames they would in a live session.
func (m *Model) Advance(d time.Duration) {
	target := m.loop.Now() + d
	for m.loop.Now()+FrameInterval < target {
		m.loop.Advance(FrameInterval)
	}
	m.loop.AdvanceTo(target)
}

// Page returns the loaded page.
func (m Model) Page() site.Page {
	return m.page
}

// App returns the controllers of the loaded page.
func (m Model) App() *site.App {
	return m.app
}

// SessionID identifies the current page load in logs.
func (m Model) SessionID() string {
	return m.sessionID
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
