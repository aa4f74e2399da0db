package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// MeterWidth bounds the drawn bar.
const (
	MinMeterWidth = 10
	MaxMeterWidth = 40
)

// Meter renders one skill bar from its fill width in percent.
type Meter struct {
	bar   progress.Model
	label lipgloss.Style
}

// NewMeter creates a meter drawn in fill colour, sized to fit width columns
// next to its label.
func NewMeter(width int, fill string, label lipgloss.Style) Meter {
	bar := progress.New(progress.WithSolidFill(fill), progress.WithoutPercentage())
	bar.Width = max(MinMeterWidth, min(MaxMeterWidth, width-labelWidth-8))
	return Meter{bar: bar, label: label.Width(labelWidth)}
}

const labelWidth = 14

// View renders name, the bar and the current percent.
func (m Meter) View(name string, percent float64) string {
	ratio := math.Max(0, math.Min(1, percent/100))
	return lipgloss.JoinHorizontal(lipgloss.Left,
		m.label.Render(name), " ",
		m.bar.ViewAs(ratio),
		fmt.Sprintf(" %3.0f%%", percent),
	)
}
