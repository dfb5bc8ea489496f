package components

import (
	"github.com/abhisek/denguerisk/internal/ui/theme"
)

// Button is a styled button component. Focus is driven by the owning
// screen, which also handles the key press.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
