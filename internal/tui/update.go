package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/site"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.loop.AdvanceTo(time.Time(msg).Sub(m.loaded))
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.message.SetWidth(fieldWidth(msg.Width))
		return m, nil
	case tea.FocusMsg:
		m.setHidden(false)
		return m, nil
	case tea.BlurMsg:
		m.setHidden(true)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) setHidden(hidden bool) {
	m.hidden = hidden
	m.app.Doc.SetHidden(hidden)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	m.app.KeyDown(msg.String())

	switch {
	case key.Matches(msg, m.keys.Focus):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.FocusBack):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	}

	if m.editing() {
		switch {
		case key.Matches(msg, m.keys.Leave):
			m.blurAll()
			return m, m.syncFocus()
		case msg.Type == tea.KeyEnter && m.focusedID() != contact.MessageID:
			m.submit()
			return m, nil
		}
		return m, m.updateField(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.navigate(1)
	case key.Matches(msg, m.keys.Prev):
		m.navigate(-1)
	case key.Matches(msg, m.keys.Jump):
		m.load(site.Pages()[int(msg.String()[0]-'1')])
	case key.Matches(msg, m.keys.Toggle):
		if el := m.app.Doc.ByID(theme.ToggleID); el != nil {
			el.Dispatch(render.EventClick)
		}
		return m, m.syncFocus()
	case key.Matches(msg, m.keys.FilterNext):
		m.cycleFilter(1)
	case key.Matches(msg, m.keys.FilterPrev):
		m.cycleFilter(-1)
	case key.Matches(msg, m.keys.Activate):
		m.activate()
		return m, m.syncFocus()
	}
	return m, nil
}

func (m *Model) navigate(delta int) {
	pages := site.Pages()
	idx := 0
	for i, p := range pages {
		if p == m.page {
			idx = i
		}
	}
	idx = ((idx+delta)%len(pages) + len(pages)) % len(pages)
	m.load(pages[idx])
}

func (m *Model) cycleFilter(delta int) {
	if m.app.Filter != nil {
		m.app.Filter.Cycle(delta)
	}
}

// focusables lists the page's tab stops in order.
func (m Model) focusables() []*render.Element {
	var ids []string
	switch m.page {
	case site.Home:
		ids = []string{theme.ToggleID}
	case site.Contact:
		ids = []string{contact.NameID, contact.EmailID, contact.MessageID, site.SubmitID}
	}

	var out []*render.Element
	for _, id := range ids {
		if el := m.app.Doc.ByID(id); el != nil {
			out = append(out, el)
		}
	}
	return out
}

func (m Model) focused() *render.Element {
	for _, el := range m.focusables() {
		if el.Focused() {
			return el
		}
	}
	return nil
}

func (m Model) focusedID() string {
	if el := m.focused(); el != nil {
		return el.ID()
	}
	return ""
}

func (m Model) editing() bool {
	el := m.focused()
	return el != nil && (el.Kind() == render.KindInput || el.Kind() == render.KindTextArea)
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	stops := m.focusables()
	if len(stops) == 0 {
		return nil
	}

	next := 0
	if delta < 0 {
		next = len(stops) - 1
	}
	for i, el := range stops {
		if el.Focused() {
			next = ((i+delta)%len(stops) + len(stops)) % len(stops)
		}
	}

	m.blurAll()
	stops[next].Focus()
	return m.syncFocus()
}

func (m *Model) blurAll() {
	for _, el := range m.focusables() {
		el.Blur()
	}
}

// syncFocus mirrors the document's focus onto the text widgets.
func (m *Model) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	switch m.focusedID() {
	case contact.NameID:
		cmd = m.name.Focus()
	case contact.EmailID:
		cmd = m.email.Focus()
	case contact.MessageID:
		cmd = m.message.Focus()
	}
	m.keys.forPage(m.page, m.editing())
	return cmd
}

func (m *Model) updateField(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	doc := m.app.Doc
	switch m.focusedID() {
	case contact.NameID:
		m.name, cmd = m.name.Update(msg)
		doc.ByID(contact.NameID).SetValue(m.name.Value())
	case contact.EmailID:
		m.email, cmd = m.email.Update(msg)
		doc.ByID(contact.EmailID).SetValue(m.email.Value())
	case contact.MessageID:
		m.message, cmd = m.message.Update(msg)
		doc.ByID(contact.MessageID).SetValue(m.message.Value())
	}
	return cmd
}

// activate presses the focused button.
func (m *Model) activate() {
	switch m.focusedID() {
	case theme.ToggleID:
		m.app.Doc.ByID(theme.ToggleID).Dispatch(render.EventClick)
	case site.SubmitID:
		m.submit()
	}
}

// submit dispatches the form's submit event and pulls the field values back
// from the document, which the form controller may have reset.
func (m *Model) submit() {
	form := m.app.Doc.ByID(contact.FormID)
	if form == nil {
		return
	}
	form.Dispatch(render.EventSubmit)

	doc := m.app.Doc
	m.name.SetValue(doc.ByID(contact.NameID).Value())
	m.email.SetValue(doc.ByID(contact.EmailID).Value())
	m.message.SetValue(doc.ByID(contact.MessageID).Value())
}
