package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput is a digits-only text field holding an integer in [Min, Max].
// An empty field reads as Min.
type NumberInput struct {
	Model    textinput.Model
	Min, Max int
}

// NewNumberInput creates a focused field showing lo.
func NewNumberInput(lo, hi int) NumberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = len(strconv.Itoa(hi))
	ti.Focus()

	n := NumberInput{Model: ti, Min: lo, Max: hi}
	n.Set(lo)
	return n
}

// Update edits the field. Non-digit characters are dropped and the text
// is rewritten to the clamped value after every edit.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if k := kmsg.String(); len(k) == 1 && (k[0] < '0' || k[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	if n.Model.Value() != "" {
		n.Set(n.Value())
	}
	return n, cmd
}

// Value returns the clamped integer in the field.
func (n NumberInput) Value() int {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil {
		return n.Min
	}
	return n.clamp(v)
}

// Set replaces the field with v, clamped, and moves the cursor to the end.
func (n *NumberInput) Set(v int) {
	n.Model.SetValue(strconv.Itoa(n.clamp(v)))
	n.Model.CursorEnd()
}

// Step adds delta to the current value.
func (n *NumberInput) Step(delta int) {
	n.Set(n.Value() + delta)
}

func (n NumberInput) View() string {
	return n.Model.View()
}

func (n NumberInput) clamp(v int) int {
	return max(n.Min, min(n.Max, v))
}
