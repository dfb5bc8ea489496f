// Package screen defines what the router stacks: the patient form at the
// bottom and informational screens pushed over it.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/denguerisk/internal/ui/layout"
)

// Screen is one full-height view between the header and the footer.
type Screen interface {
	Init() tea.Cmd

	// Update receives every message except window resizes, Ctrl+C and Esc,
	// which the root model handles.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders into exactly width x height cells.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider replaces the router's default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
