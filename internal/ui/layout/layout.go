package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/denguerisk/internal/risk"
	"github.com/abhisek/denguerisk/internal/ui/theme"
)

// The form needs room for the result card and a few field rows.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Header is the content of the top bar.
type Header struct {
	Title     string
	Threshold risk.Threshold

	// Decision of the last prediction; nil hides the badge.
	Decision *risk.Decision
}

// IsTooSmall reports whether the terminal cannot fit the form.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf(
			"Terminal muito pequeno\n\nAumente para pelo menos %d x %d\n(atual: %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the app name on the left, the screen title in the
// middle, and the threshold with the last decision on the right.
func RenderHeader(h Header, width int) string {
	left := theme.Title.Render("  Dengue")
	center := theme.Body.Render(h.Title)

	right := lipgloss.NewStyle().Foreground(theme.Accent).Render("threshold " + h.Threshold.String())
	if h.Decision != nil {
		high := *h.Decision == risk.HighRisk
		label := "BAIXO"
		if high {
			label = "ALTO"
		}
		right += "  " + theme.Risk(high).Render(label)
	}

	return theme.Bar.Width(width).Render(spread(width-4, left, center, right))
}

// spread lays out three parts on one line of the given width, centering
// the middle one when there is room.
func spread(width int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	gapL := max((width-cw)/2-lw, 1)
	gapR := max(width-lw-gapL-cw-rw, 1)

	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderFooter draws as many hints as fit on one line, in order.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	line := " "
	for _, h := range hints {
		part := "  " + key.Render(h.Key) + " " + desc.Render(h.Description)
		if lipgloss.Width(line+part) > width-4 {
			break
		}
		line += part
	}
	return theme.Bar.Width(width).Render(line)
}

// Frame stacks header, body and footer into exactly height lines. body is
// called with the space left between the bars.
func Frame(header, footer string, width, height int, body func(width, height int) string) string {
	inner := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(inner).
		MaxHeight(inner).
		Render(body(width, inner))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
