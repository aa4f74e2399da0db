package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestMeterViewShowsNameAndPercent(t *testing.T) {
	t.Parallel()

	m := NewMeter(80, "#7d56f4", lipgloss.NewStyle())
	view := m.View("Go", 42.4)

	assert.True(t, strings.HasPrefix(view, "Go"))
	assert.Contains(t, view, " 42%")
}

func TestMeterClampsRatio(t *testing.T) {
	t.Parallel()

	m := NewMeter(80, "#7d56f4", lipgloss.NewStyle())
	assert.Equal(t, m.bar.ViewAs(1), strings.Fields(m.View("x", 250))[1])
	assert.Equal(t, m.bar.ViewAs(0), strings.Fields(m.View("x", -5))[1])
}

func TestNewMeterBoundsWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MinMeterWidth, NewMeter(10, "#fff", lipgloss.NewStyle()).bar.Width)
	assert.Equal(t, MaxMeterWidth, NewMeter(400, "#fff", lipgloss.NewStyle()).bar.Width)
	assert.Equal(t, 30, NewMeter(52, "#fff", lipgloss.NewStyle()).bar.Width)
}
