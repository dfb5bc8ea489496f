package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/denguerisk/internal/form"
	"github.com/abhisek/denguerisk/internal/model"
	"github.com/abhisek/denguerisk/internal/risk"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	m := newAppModel(Options{
		Reducer:   form.NewReducer(model.NewMockPredictor(0.3)),
		Threshold: risk.DefaultThreshold,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd != nil {
		if next := cmd(); next != nil {
			if _, quit := next.(tea.QuitMsg); !quit {
				updated, _ = m.Update(next)
				m = updated.(AppModel)
			}
		}
	}
	return m
}

func TestViewShowsFormAndThreshold(t *testing.T) {
	m := newTestApp(t)
	content := m.render()

	assert.Contains(t, content, "Previsão de Gravidade da Dengue")
	assert.Contains(t, content, "threshold 0.50")
	assert.Contains(t, content, "Ajuda")
}

func TestViewEmptyBeforeResize(t *testing.T) {
	m := newAppModel(Options{Reducer: form.NewReducer(model.NewMockPredictor(0.3))})
	assert.Empty(t, m.render())
	assert.True(t, m.View().AltScreen)
}

func TestViewTooSmall(t *testing.T) {
	m := newTestApp(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, updated.(AppModel).render(), "Terminal muito pequeno")
}

func TestHelpAndBack(t *testing.T) {
	m := newTestApp(t)

	m = send(t, m, tea.KeyPressMsg{Code: '?', Text: "?"})
	require.Equal(t, 2, m.router.Depth())
	assert.Contains(t, m.render(), "Sobre o Threshold")
	assert.Contains(t, m.render(), "Voltar")

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())

	// Esc on the form is a no-op.
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestThresholdInHeader(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, tea.KeyPressMsg{Code: ']', Text: "]"})
	assert.True(t, strings.Contains(m.render(), "threshold 0.51"))
}

func TestDecisionBadgeAfterSubmit(t *testing.T) {
	m := newTestApp(t)
	assert.NotContains(t, m.render(), "BAIXO")

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, m.form.State().Outcome)
	assert.Contains(t, m.render(), "BAIXO")
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestApp(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRunRequiresReducer(t *testing.T) {
	assert.Error(t, Run(Options{}))
}
