package riskform

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/denguerisk/internal/features"
	"github.com/abhisek/denguerisk/internal/form"
	"github.com/abhisek/denguerisk/internal/risk"
	"github.com/abhisek/denguerisk/internal/router"
	"github.com/abhisek/denguerisk/internal/screen"
	"github.com/abhisek/denguerisk/internal/screens/guide"
	"github.com/abhisek/denguerisk/internal/ui/components"
	"github.com/abhisek/denguerisk/internal/ui/layout"
	"github.com/abhisek/denguerisk/internal/ui/theme"
)

const labelWidth = 36

// FormScreen is the patient form with the prediction result above it.
type FormScreen struct {
	ctx     context.Context
	reducer *form.Reducer
	state   form.State
	focus   row
	days    components.NumberInput
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the form screen. ctx bounds each prediction.
func New(ctx context.Context, reducer *form.Reducer, threshold risk.Threshold) *FormScreen {
	return &FormScreen{
		ctx:     ctx,
		reducer: reducer,
		state:   form.NewState(threshold),
		focus:   row{kind: rowSex},
		days:    components.NewNumberInput(features.MinDays, features.MaxDays),
	}
}

// State returns the current form state.
func (f *FormScreen) State() form.State {
	return f.state
}

func (f *FormScreen) Title() string {
	return "Previsão de Gravidade da Dengue"
}

func (f *FormScreen) Init() tea.Cmd {
	return nil
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Campo"},
		{Key: "←→", Description: "Opção"},
		{Key: "[ ]", Description: "Threshold"},
		{Key: "Enter", Description: "Prever"},
		{Key: "?", Description: "Ajuda"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (f *FormScreen) dispatch(e form.Event) {
	f.state = f.reducer.Handle(f.ctx, f.state, e)
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "up", "k":
		f.moveFocus(-1)
		return f, nil
	case "down", "j":
		f.moveFocus(1)
		return f, nil
	case "tab":
		f.focus = row{kind: rowSubmit}
		return f, nil
	case "[", "-":
		f.dispatch(form.SetThreshold{Threshold: f.state.Threshold.Step(-1)})
		return f, nil
	case "]", "+", "=":
		f.dispatch(form.SetThreshold{Threshold: f.state.Threshold.Step(1)})
		return f, nil
	case "?":
		g := guide.New(f.state.Threshold)
		return f, func() tea.Msg { return router.PushScreenMsg{Screen: g} }
	case "enter":
		if f.focus.kind == rowSubmit {
			f.dispatch(form.Submit{})
		}
		return f, nil
	}

	if f.focus.kind == rowDays {
		return f, f.updateDays(kmsg)
	}

	opts, selected := f.focus.options(f.state)
	if opts == nil {
		return f, nil
	}
	c := components.NewChoice(f.focus.label(), opts, selected)
	c.Focused = true
	if c, changed := c.Update(kmsg); changed {
		f.dispatch(f.focus.event(c.Selected))
	}
	return f, nil
}

// updateDays edits days since onset: digits type into the field, left and
// right step by one day.
func (f *FormScreen) updateDays(kmsg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch kmsg.String() {
	case "left", "h":
		f.days.Step(-1)
	case "right", "l":
		f.days.Step(1)
	default:
		f.days, cmd = f.days.Update(kmsg)
	}
	f.dispatch(form.SetDays{Days: f.days.Value()})
	return cmd
}

func (f *FormScreen) moveFocus(delta int) {
	rows := visibleRows(f.state)
	i := f.focusIndex(rows) + delta
	if i < 0 {
		i = 0
	}
	if i >= len(rows) {
		i = len(rows) - 1
	}
	f.focus = rows[i]
}

// focusIndex returns the position of the focused row, or 0 if it is no
// longer visible.
func (f *FormScreen) focusIndex(rows []row) int {
	for i, r := range rows {
		if r == f.focus {
			return i
		}
	}
	return 0
}

func (f *FormScreen) View(width, height int) string {
	result := f.renderResult(width)
	formHeight := height - lipgloss.Height(result)
	if formHeight < 1 {
		return result
	}
	return result + "\n" + f.renderForm(formHeight)
}

func (f *FormScreen) renderResult(width int) string {
	inner := width - 8
	if inner < 20 {
		inner = 20
	}

	var lines []string
	switch {
	case f.state.Err != nil:
		lines = append(lines, theme.HighRisk.Render("Falha na previsão. Verifique o modelo e tente novamente."))
	case f.state.Outcome == nil:
		lines = append(lines, theme.Hint.Render("Preencha o formulário e pressione Enter em \"Prever Gravidade\"."))
	default:
		o := *f.state.Outcome
		bar := components.NewProgressBar("Probabilidade de caso grave", o.Probability, true, inner)
		bar.Marker = float64(o.Threshold)
		high := o.Decision == risk.HighRisk
		if high {
			bar.Fill = theme.Error
		}
		lines = append(lines,
			bar.View(),
			theme.Body.Render("Threshold aplicado: "+o.Threshold.String()),
			theme.Risk(high).Render(o.Message()),
		)
	}
	return theme.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderForm renders the rows, scrolled so the focused row is visible.
func (f *FormScreen) renderForm(height int) string {
	rows := visibleRows(f.state)
	var lines []string
	focusLine := 0

	for _, r := range rows {
		if title, ok := sectionTitles[r.kind]; ok && r.index == 0 {
			lines = append(lines, "", theme.Section.Render(title))
		}
		if r.kind == rowSubmit {
			lines = append(lines, "")
		}
		if r == f.focus {
			focusLine = len(lines)
		}
		lines = append(lines, f.renderRow(r))
	}

	offset := 0
	if focusLine >= height {
		offset = focusLine - height + 1
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

func (f *FormScreen) renderRow(r row) string {
	focused := r == f.focus
	switch r.kind {
	case rowSubmit:
		b := components.NewButton(r.label())
		b.Active = focused
		return "  " + b.View()
	case rowDays:
		prefix, style := "  ", theme.Unselected
		if focused {
			prefix, style = "▸ ", theme.Selected
		}
		label := style.Render(prefix + r.label())
		if pad := labelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		value := strconv.Itoa(f.state.Observation.DaysSinceOnset)
		if focused {
			value = f.days.View()
		}
		return label + " " + value + theme.Hint.Render("  (0-"+strconv.Itoa(features.MaxDays)+")")
	}

	opts, selected := r.options(f.state)
	c := components.NewChoice(r.label(), opts, selected)
	c.Focused = focused
	return c.View(labelWidth)
}
