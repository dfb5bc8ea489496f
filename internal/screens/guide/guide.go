// Package guide explains the decision threshold.
package guide

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/denguerisk/internal/risk"
	"github.com/abhisek/denguerisk/internal/screen"
	"github.com/abhisek/denguerisk/internal/ui/theme"
)

// GuideScreen describes what moving the threshold does.
type GuideScreen struct {
	threshold risk.Threshold
}

var _ screen.Screen = (*GuideScreen)(nil)

// New creates a guide showing the current threshold.
func New(t risk.Threshold) *GuideScreen {
	return &GuideScreen{threshold: t}
}

func (g *GuideScreen) Title() string {
	return "Sobre o Threshold"
}

func (g *GuideScreen) Init() tea.Cmd {
	return nil
}

func (g *GuideScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return g, nil
}

func (g *GuideScreen) View(width, height int) string {
	sections := []string{
		theme.Title.Render("Threshold de classificação: " + g.threshold.String()),
		"",
		theme.Body.Render("Um caso é classificado como grave quando a probabilidade prevista"),
		theme.Body.Render("é maior ou igual ao threshold. Mudar o threshold não refaz a previsão."),
		"",
	}
	for _, line := range risk.ThresholdGuidance {
		sections = append(sections, theme.Body.Render("• "+line))
	}
	sections = append(sections, "", theme.Hint.Render("Use [ e ] no formulário para ajustar em passos de 0.01."))

	content := theme.Card.Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
