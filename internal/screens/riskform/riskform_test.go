package riskform

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/denguerisk/internal/features"
	"github.com/abhisek/denguerisk/internal/form"
	"github.com/abhisek/denguerisk/internal/model"
	"github.com/abhisek/denguerisk/internal/risk"
	"github.com/abhisek/denguerisk/internal/router"
)

func newTestForm(p float64) (*FormScreen, *model.MockPredictor) {
	m := model.NewMockPredictor(p)
	m.Names = features.Columns()
	return New(context.Background(), form.NewReducer(m), risk.DefaultThreshold), m
}

func press(f *FormScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = f.Update(k)
	}
	return cmd
}

var (
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyTab   = tea.KeyPressMsg{Code: tea.KeyTab}
)

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestInitialView(t *testing.T) {
	f, _ := newTestForm(0.5)
	view := f.View(100, 40)

	for _, want := range []string{"Informações Gerais", "Sexo", "Masculino", "Prever Gravidade"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Gestante") {
		t.Error("pregnancy field should be hidden for male patients")
	}
}

func TestSelectingFemaleShowsPregnancy(t *testing.T) {
	f, _ := newTestForm(0.5)
	press(f, keyRight)

	if f.State().Observation.Sex != features.Female {
		t.Fatalf("expected female, got %v", f.State().Observation.Sex)
	}
	rows := visibleRows(f.State())
	if rows[3].kind != rowPregnancy {
		t.Fatalf("expected pregnancy row after age, got %+v", rows[3])
	}

	// Sexo -> Dias -> Faixa -> Gestante, choose "nao".
	press(f, keyDown, keyDown, keyDown, keyRight)
	if got := f.State().Observation.Pregnancy; got != features.NotPregnant {
		t.Errorf("expected not pregnant, got %v", got)
	}
}

func TestSubmitFromButton(t *testing.T) {
	f, m := newTestForm(0.42)

	press(f, keyEnter)
	if m.CallCount() != 0 {
		t.Fatal("enter outside the button should not predict")
	}

	press(f, keyTab, keyEnter)
	if m.CallCount() != 1 {
		t.Fatalf("expected one prediction, got %d", m.CallCount())
	}
	out := f.State().Outcome
	if out == nil || out.Decision != risk.LowRisk {
		t.Fatalf("expected low risk outcome, got %+v", out)
	}
	if !strings.Contains(f.View(100, 40), "42.00%") {
		t.Error("result should show the probability")
	}
}

func TestThresholdKeysReclassify(t *testing.T) {
	f, m := newTestForm(0.42)
	press(f, keyTab, keyEnter)

	for i := 0; i < 10; i++ {
		press(f, char('['))
	}

	s := f.State()
	if s.Threshold != risk.Threshold(0.4) {
		t.Fatalf("expected threshold 0.40, got %v", s.Threshold)
	}
	if s.Outcome.Decision != risk.HighRisk {
		t.Error("lower threshold should flip to high risk")
	}
	if m.CallCount() != 1 {
		t.Errorf("threshold change must not re-run inference, got %d calls", m.CallCount())
	}

	press(f, char(']'))
	if f.State().Threshold != risk.Threshold(0.41) {
		t.Errorf("expected threshold 0.41, got %v", f.State().Threshold)
	}
}

func TestDaysInput(t *testing.T) {
	f, _ := newTestForm(0.5)
	press(f, keyDown) // days

	press(f, char('1'), char('2'))
	if got := f.State().Observation.DaysSinceOnset; got != 12 {
		t.Fatalf("expected 12 days, got %d", got)
	}

	press(f, keyRight, keyRight, keyLeft)
	if got := f.State().Observation.DaysSinceOnset; got != 13 {
		t.Fatalf("expected 13 days, got %d", got)
	}

	backspace := tea.KeyPressMsg{Code: tea.KeyBackspace}
	press(f, backspace, backspace, char('1'), char('9'), char('9'))
	if got := f.State().Observation.DaysSinceOnset; got != features.MaxDays {
		t.Fatalf("expected days clamped to %d, got %d", features.MaxDays, got)
	}
}

func TestSymptomToggle(t *testing.T) {
	f, _ := newTestForm(0.5)
	// Sexo, Dias, Faixa, then the first symptom (male: no pregnancy row).
	press(f, keyDown, keyDown, keyDown, keyRight)

	if !f.State().Observation.Symptoms[features.Fever] {
		t.Error("expected fever toggled on")
	}
}

func TestFocusClampsAtEnds(t *testing.T) {
	f, _ := newTestForm(0.5)
	press(f, keyUp)
	if f.focus.kind != rowSex {
		t.Errorf("expected focus to stay on first row, got %+v", f.focus)
	}
	for i := 0; i < 50; i++ {
		press(f, keyDown)
	}
	if f.focus.kind != rowSubmit {
		t.Errorf("expected focus on submit, got %+v", f.focus)
	}
	if !strings.Contains(f.View(80, 20), "Prever Gravidade") {
		t.Error("focused button should be scrolled into view")
	}
}

func TestHelpKeyPushesGuide(t *testing.T) {
	f, _ := newTestForm(0.5)
	cmd := press(f, char('?'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() == "" {
		t.Error("guide screen should have a title")
	}
}

func TestPredictionErrorShown(t *testing.T) {
	f, m := newTestForm(0.5)
	m.Err = errors.New("boom")
	press(f, keyTab, keyEnter)

	if f.State().Err == nil {
		t.Fatal("expected an error in state")
	}
	if !strings.Contains(f.View(100, 40), "Falha na previsão") {
		t.Error("view should show the failure")
	}
}
