package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/denguerisk/internal/ui/theme"
)

// Choice is a single-select radio row: a label followed by its options,
// cycled with left/right.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewChoice creates a new choice row with the given option selected.
func NewChoice(label string, options []string, selected int) Choice {
	return Choice{
		Label:    label,
		Options:  options,
		Selected: selected,
	}
}

// Update handles left/right selection. It reports whether the selection
// changed.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	if !c.Focused || len(c.Options) == 0 {
		return c, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	prev := c.Selected
	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l", "space":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c, c.Selected != prev
}

// View renders the row. labelWidth pads the label so rows line up.
func (c Choice) View(labelWidth int) string {
	prefix := "  "
	labelStyle := theme.Unselected
	if c.Focused {
		prefix = "▸ "
		labelStyle = theme.Selected
	}

	label := labelStyle.Render(prefix + c.Label)
	if pad := labelWidth - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}

	opts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		if i == c.Selected {
			opts[i] = theme.Selected.Render("(•) " + opt)
		} else {
			opts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("( ) " + opt)
		}
	}
	return label + " " + strings.Join(opts, "  ")
}
