package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a project card.
type CardStyle struct {
	// Border applies to the card's outer frame
	Border lipgloss.Style
	// Title applies to the heading
	Title lipgloss.Style
	// Body applies to the summary text
	Body lipgloss.Style
	// Tag applies to the technology tag after the title
	Tag lipgloss.Style
}

// DefaultCardStyle returns an unthemed rounded card.
func DefaultCardStyle() CardStyle {
	return CardStyle{
		Border: lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, 1),
		Title:  lipgloss.NewStyle().Bold(true),
		Body:   lipgloss.NewStyle(),
		Tag:    lipgloss.NewStyle().Faint(true),
	}
}

// CardData is the content of one card.
type CardData struct {
	Title   string
	Summary string
	Tag     string
}

// Card renders a project.
type Card struct {
	data  CardData
	style CardStyle
	width int
}

// NewCard creates a card with the default style.
func NewCard(data CardData) *Card {
	return &Card{data: data, style: DefaultCardStyle()}
}

// WithStyle sets a custom style for the card.
func (c *Card) WithStyle(style CardStyle) *Card {
	c.style = style
	return c
}

// WithWidth caps the card's outer width. Zero leaves it unbounded.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// View renders the card. Empty parts are left out.
func (c *Card) View() string {
	heading := c.style.Title.Render(c.data.Title)
	if c.data.Tag != "" {
		heading += c.style.Tag.Render(" · " + c.data.Tag)
	}

	lines := []string{heading}
	if strings.TrimSpace(c.data.Summary) != "" {
		lines = append(lines, c.style.Body.Render(c.data.Summary))
	}

	border := c.style.Border
	if c.width > 0 {
		border = border.Width(c.width - border.GetHorizontalBorderSize())
	}
	return border.Render(strings.Join(lines, "\n"))
}
