package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui/components"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	border lipgloss.Color
	fill   string
}

var (
	darkPalette = palette{
		text:   lipgloss.Color("252"),
		muted:  lipgloss.Color("245"),
		accent: lipgloss.Color("212"),
		border: lipgloss.Color("240"),
		fill:   "#7d56f4",
	}
	lightPalette = palette{
		text:   lipgloss.Color("235"),
		muted:  lipgloss.Color("241"),
		accent: lipgloss.Color("99"),
		border: lipgloss.Color("250"),
		fill:   "#5a3fd1",
	}
)

func paletteFor(t theme.Theme) palette {
	if t == theme.Light {
		return lightPalette
	}
	return darkPalette
}

type styles struct {
	palette palette

	title     lipgloss.Style
	tagline   lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	body      lipgloss.Style
	muted     lipgloss.Style
	label     lipgloss.Style
	button    lipgloss.Style
	focused   lipgloss.Style
	field     lipgloss.Style
	card      components.CardStyle
	footer    lipgloss.Style
}

// newStyles builds the styles for a theme. outline draws a border around
// the focused control, matching keyboard-navigation mode.
func newStyles(t theme.Theme, outline bool) styles {
	p := paletteFor(t)
	s := styles{
		palette:   p,
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		tagline:   lipgloss.NewStyle().Italic(true).Foreground(p.muted),
		tab:       lipgloss.NewStyle().Foreground(p.muted).PaddingRight(2),
		activeTab: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.accent).PaddingRight(2),
		body:      lipgloss.NewStyle().Foreground(p.text).MarginTop(1),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		label:     lipgloss.NewStyle().Foreground(p.text),
		button:    lipgloss.NewStyle().Foreground(p.text).Padding(0, 1),
		field:     lipgloss.NewStyle().Foreground(p.text),
		card: components.CardStyle{
			Border: lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(p.border).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
			Body:  lipgloss.NewStyle().Foreground(p.text),
			Tag:   lipgloss.NewStyle().Foreground(p.muted),
		},
		footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.border).
			MarginTop(1),
	}

	s.focused = s.button.Bold(true).Foreground(p.accent)
	if outline {
		s.focused = s.focused.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.accent)
	}
	return s
}
