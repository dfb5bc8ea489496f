package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/denguerisk/internal/ui/theme"
)

// ProgressBar displays a horizontal bar with an optional marker, used for
// the predicted probability against the threshold.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Fill        color.Color

	// Marker, when in [0,1], draws a tick at that fraction of the bar.
	Marker float64
}

// NewProgressBar creates a new progress bar with no marker.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        theme.Secondary,
		Marker:      -1,
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
		percentWidth = 9 // "  100.00%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := clamp(int(float64(barWidth)*p.Percent), 0, barWidth)
	marker := -1
	if p.Marker >= 0 && p.Marker <= 1 {
		marker = clamp(int(float64(barWidth)*p.Marker), 0, barWidth-1)
	}

	filledStyle := lipgloss.NewStyle().Background(p.Fill)
	emptyStyle := lipgloss.NewStyle().Background(theme.Border)
	markerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		cell := " "
		style := emptyStyle
		if i < filled {
			style = filledStyle
		}
		if i == marker {
			cell = "│"
			style = style.Inherit(markerStyle)
		}
		bar.WriteString(style.Render(cell))
	}
	result += bar.String()

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %.2f%%", p.Percent*100))
	}

	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
