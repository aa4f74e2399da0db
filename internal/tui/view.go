package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/filter"
	"github.com/alexisbeaulieu97/folio/internal/progress"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/session"
	"github.com/alexisbeaulieu97/folio/internal/site"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui/components"
)

const cardMaxWidth = 72

// View renders the loaded page from its document.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	doc := m.app.Doc
	root := doc.Root()
	current := theme.Dark
	if root.HasClass(string(theme.Light)) {
		current = theme.Light
	}
	st := newStyles(current, root.HasClass(site.ClassFocusOutline))

	sections := []string{
		st.title.Render(text(doc, site.OwnerID)),
		st.tagline.Render(text(doc, site.TaglineID)),
		m.renderTabs(st),
	}

	var body string
	switch m.page {
	case site.Home:
		body = m.renderHome(st)
	case site.Skills:
		body = m.renderSkills(st)
	case site.Projects:
		body = m.renderProjects(st)
	case site.Contact:
		body = m.renderContact(st)
	}
	sections = append(sections, st.body.Render(body))

	footer := fmt.Sprintf("%s   %s   theme: %s",
		text(doc, session.ClockID), text(doc, session.TimerID), current)
	sections = append(sections, st.footer.Render(footer), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func text(doc *render.Document, id string) string {
	if el := doc.ByID(id); el != nil {
		return el.Text()
	}
	return ""
}

func (m Model) renderTabs(st styles) string {
	var tabs []string
	for i, p := range site.Pages() {
		label := fmt.Sprintf("%d %s", i+1, pageTitle(p))
		if p == m.page {
			tabs = append(tabs, st.activeTab.Render(label))
			continue
		}
		tabs = append(tabs, st.tab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func pageTitle(p site.Page) string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m Model) button(st styles, el *render.Element) string {
	if el == nil {
		return ""
	}
	label := "[ " + el.Text() + " ]"
	if el.Focused() {
		return st.focused.Render(label)
	}
	return st.button.Render(label)
}

func (m Model) renderHome(st styles) string {
	doc := m.app.Doc
	return lipgloss.JoinVertical(lipgloss.Left,
		text(doc, site.AboutID),
		"",
		m.button(st, doc.ByID(theme.ToggleID)),
	)
}

func (m Model) renderSkills(st styles) string {
	bars := m.app.Doc.All(progress.ClassBar)
	if len(bars) == 0 {
		return st.muted.Render("No skills listed.")
	}

	meter := components.NewMeter(m.width, st.palette.fill, st.label)
	lines := make([]string, 0, len(bars))
	for _, bar := range bars {
		name := ""
		if label := bar.Query(site.ClassLabel); label != nil {
			name = label.Text()
		}
		width := 0.0
		if fill := bar.Query(progress.ClassFill); fill != nil {
			width = fill.Width()
		}
		lines = append(lines, meter.View(name, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderProjects(st styles) string {
	doc := m.app.Doc
	var lines []string
	if ctl := doc.ByID(filter.ControlID); ctl != nil {
		var opts []string
		for _, opt := range ctl.Options() {
			if opt == ctl.Value() {
				opts = append(opts, st.activeTab.Render(opt))
				continue
			}
			opts = append(opts, st.tab.Render(opt))
		}
		lines = append(lines, "Filter: "+lipgloss.JoinHorizontal(lipgloss.Top, opts...))
	}

	shown := 0
	for _, card := range doc.All(filter.ClassItem) {
		if !card.Visible() {
			continue
		}
		shown++
		title := ""
		if el := card.Query(site.ClassTitle); el != nil {
			title = el.Text()
		}
		summary := ""
		if el := card.Query(site.ClassDetail); el != nil {
			summary = el.Text()
		}
		view := components.NewCard(components.CardData{Title: title, Summary: summary, Tag: filter.Tag(card)}).
			WithStyle(st.card).
			WithWidth(min(m.width, cardMaxWidth)).
			View()
		lines = append(lines, view)
	}
	if shown == 0 {
		lines = append(lines, st.muted.Render("No projects match this filter."))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderContact(st styles) string {
	doc := m.app.Doc
	field := func(label, id, view string) string {
		style := st.label
		if el := doc.ByID(id); el != nil && el.Focused() {
			style = st.focused
		}
		return style.Render(label) + "\n" + st.field.Render(view)
	}

	lines := []string{
		field("Name", contact.NameID, m.name.View()),
		field("Email", contact.EmailID, m.email.View()),
		field("Message", contact.MessageID, m.message.View()),
		m.button(st, doc.ByID(site.SubmitID)),
	}

	if note := doc.ByID(contact.NoteID); note != nil && note.Text() != "" {
		style := lipgloss.NewStyle()
		if note.Color() != "" {
			style = style.Foreground(lipgloss.Color(note.Color()))
		}
		lines = append(lines, style.Render(note.Text()))
	}

	if details := doc.ByID(site.DetailsID); details != nil {
		for _, c := range details.Children() {
			lines = append(lines, st.muted.Render(c.Text()))
		}
	}
	return strings.Join(lines, "\n")
}
