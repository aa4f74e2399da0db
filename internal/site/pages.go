// Package site turns the configured content into page documents and wires
// the interactive controllers onto them when a page becomes ready.
package site

import (
	"fmt"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/filter"
	"github.com/alexisbeaulieu97/folio/internal/format"
	"github.com/alexisbeaulieu97/folio/internal/progress"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/session"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// Page names one document of the site.
type Page string

const (
	Home     Page = "home"
	Skills   Page = "skills"
	Projects Page = "projects"
	Contact  Page = "contact"
)

// Pages lists every page in navigation order.
func Pages() []Page {
	return []Page{Home, Skills, Projects, Contact}
}

// ParsePage validates a page name.
func ParsePage(s string) (Page, error) {
	for _, p := range Pages() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown page %q (want one of home, skills, projects, contact)", s)
}

// Element ids and classes used by the page chrome. Controller-owned ids live
// in their packages.
const (
	OwnerID     = "owner"
	TaglineID   = "tagline"
	AboutID     = "about"
	DetailsID   = "contactDetails"
	SubmitID    = "submit"
	ClassLabel  = "progress-label"
	ClassTitle  = "project-title"
	ClassDetail = "project-summary"
)

// Build creates the document for page from site content. The root starts
// with the configured default theme marker, as static markup would.
func Build(site *config.Site, page Page) *render.Document {
	root := render.New(render.KindBlock).WithClass(site.Settings.Theme.Default)
	root.Append(
		render.New(render.KindText).WithID(OwnerID).WithText(site.Owner),
		render.New(render.KindText).WithID(TaglineID).WithText(site.Tagline),
	)

	switch page {
	case Home:
		root.Append(
			render.New(render.KindText).WithID(AboutID).WithText(site.About),
			render.New(render.KindButton).WithID(theme.ToggleID).WithText("Toggle theme"),
		)
	case Skills:
		for _, s := range site.Skills {
			root.Append(skillBar(s))
		}
	case Projects:
		root.Append(techFilter(site.Projects), projectGrid(site.Projects))
	case Contact:
		root.Append(contactForm(), contactDetails(site.Contact))
	}

	root.Append(
		render.New(render.KindText).WithID(session.ClockID),
		render.New(render.KindText).WithID(session.TimerID).WithText(format.Session(0)),
	)
	return render.NewDocument(string(page), root)
}

func skillBar(s config.Skill) *render.Element {
	return render.New(render.KindBlock).
		WithClass(progress.ClassBar).
		WithAttr(progress.AttrPercent, string(s.Percent)).
		Append(
			render.New(render.KindText).WithClass(ClassLabel).WithText(s.Name),
			render.New(render.KindBlock).WithClass(progress.ClassFill),
		)
}

// TechTags returns "all" followed by each distinct project tag in order of
// first appearance.
func TechTags(projects []config.Project) []string {
	tags := []string{filter.All}
	seen := map[string]bool{filter.All: true}
	for _, p := range projects {
		if p.Tech == "" || seen[p.Tech] {
			continue
		}
		seen[p.Tech] = true
		tags = append(tags, p.Tech)
	}
	return tags
}

func techFilter(projects []config.Project) *render.Element {
	sel := render.New(render.KindSelect).WithID(filter.ControlID)
	for _, tag := range TechTags(projects) {
		sel.Append(render.New(render.KindOption).WithAttr("value", tag).WithText(tag))
	}
	sel.SetValue(filter.All)
	return sel
}

func projectGrid(projects []config.Project) *render.Element {
	grid := render.New(render.KindBlock).WithID(filter.GridID)
	for _, p := range projects {
		card := render.New(render.KindBlock).WithClass(filter.ClassItem, filter.ClassShown)
		if p.Tech != "" {
			card.WithAttr(filter.AttrTech, p.Tech)
		}
		card.Append(
			render.New(render.KindText).WithClass(ClassTitle).WithText(p.Title),
			render.New(render.KindText).WithClass(ClassDetail).WithText(p.Summary),
		)
		grid.Append(card)
	}
	return grid
}

func contactForm() *render.Element {
	return render.New(render.KindForm).WithID(contact.FormID).Append(
		render.New(render.KindInput).WithID(contact.NameID).WithAttr("placeholder", "Your name"),
		render.New(render.KindInput).WithID(contact.EmailID).WithAttr("placeholder", "you@example.com"),
		render.New(render.KindTextArea).WithID(contact.MessageID).WithAttr("placeholder", "Say hello"),
		render.New(render.KindButton).WithID(SubmitID).WithText("Send"),
		render.New(render.KindText).WithID(contact.NoteID),
	)
}

func contactDetails(c config.Contact) *render.Element {
	details := render.New(render.KindBlock).WithID(DetailsID)
	if c.Email != "" {
		details.Append(render.New(render.KindText).WithText(c.Email))
	}
	if c.Location != "" {
		details.Append(render.New(render.KindText).WithText(c.Location))
	}
	return details
}
