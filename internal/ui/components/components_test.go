package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestChoiceCycles(t *testing.T) {
	c := NewChoice("Sexo", []string{"Masculino", "Feminino"}, 0)

	c, changed := c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if changed || c.Selected != 0 {
		t.Fatal("unfocused choice should ignore keys")
	}

	c.Focused = true
	c, changed = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if !changed || c.Selected != 1 {
		t.Fatalf("expected selection 1, got %d", c.Selected)
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if c.Selected != 0 {
		t.Fatalf("expected wrap to 0, got %d", c.Selected)
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if c.Selected != 1 {
		t.Fatalf("expected wrap back to 1, got %d", c.Selected)
	}
}

func TestChoiceView(t *testing.T) {
	c := NewChoice("Sexo", []string{"Masculino", "Feminino"}, 1)
	v := c.View(12)
	if !strings.Contains(v, "(•) Feminino") || !strings.Contains(v, "( ) Masculino") {
		t.Fatalf("unexpected view: %q", v)
	}
}

func TestNumberInput(t *testing.T) {
	n := NewNumberInput(0, 185)
	if n.Value() != 0 || n.Model.Value() != "0" {
		t.Fatalf("expected to start at 0, got %q", n.Model.Value())
	}

	for _, r := range "1x2" {
		n, _ = n.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if n.Value() != 12 || n.Model.Value() != "12" {
		t.Fatalf("expected 12, got %q", n.Model.Value())
	}

	n.Step(-20)
	if n.Value() != 0 {
		t.Errorf("expected clamp to 0, got %d", n.Value())
	}

	n.Set(19)
	n, _ = n.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	if n.Value() != 185 || n.Model.Value() != "185" {
		t.Errorf("expected clamp to 185, got %q", n.Model.Value())
	}

	n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if n.Model.Value() != "" || n.Value() != 0 {
		t.Errorf("expected empty field reading 0, got %q", n.Model.Value())
	}
}

func TestProgressBarShowsPercent(t *testing.T) {
	p := NewProgressBar("Prob", 0.4213, true, 40)
	p.Marker = 0.5
	if !strings.Contains(p.View(), "42.13%") {
		t.Fatalf("expected percent in %q", p.View())
	}
}
