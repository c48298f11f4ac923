package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/thermoviz/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1
	ShowPercent bool
	Width       int
	Color       color.Color
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Color:       theme.Secondary,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = max(0, min(filled, barWidth))
	empty := barWidth - filled

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}
	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// Slider renders value on [lo, hi] as a track with a knob, e.g.
// "-50 ━━━━━━●──────── 150".
func Slider(value, lo, hi float64, width int, knob color.Color) string {
	left := fmt.Sprintf("%g ", lo)
	right := fmt.Sprintf(" %g", hi)
	track := width - len(left) - len(right)
	if track < 3 {
		track = 3
	}

	pos := 0
	if hi > lo {
		pos = int((value-lo)/(hi-lo)*float64(track-1) + 0.5)
	}
	pos = max(0, min(pos, track-1))

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	return dim.Render(left) +
		lipgloss.NewStyle().Foreground(knob).Render(strings.Repeat("━", pos)+"●") +
		dim.Render(strings.Repeat("─", track-pos-1)+right)
}
