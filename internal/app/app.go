package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/denguerisk/internal/form"
	"github.com/abhisek/denguerisk/internal/risk"
	"github.com/abhisek/denguerisk/internal/router"
	"github.com/abhisek/denguerisk/internal/screens/riskform"
	"github.com/abhisek/denguerisk/internal/ui/layout"
)

// Options configures the interactive form.
type Options struct {
	Context   context.Context
	Reducer   *form.Reducer
	Threshold risk.Threshold
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	form   *riskform.FormScreen
	width  int
	height int
}

// newAppModel creates the root model with the form as its bottom screen.
func newAppModel(opts Options) AppModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	f := riskform.New(ctx, opts.Reducer, opts.Threshold)
	return AppModel{
		router: router.New(f),
		form:   f,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	st := m.form.State()
	h := layout.Header{Title: m.router.Title(), Threshold: st.Threshold}
	if st.Outcome != nil {
		h.Decision = &st.Outcome.Decision
	}

	return layout.Frame(
		layout.RenderHeader(h, m.width),
		layout.RenderFooter(m.router.KeyHints(), m.width),
		m.width, m.height,
		m.router.View,
	)
}

// Run starts the interactive form and blocks until the user quits.
func Run(opts Options) error {
	if opts.Reducer == nil {
		return fmt.Errorf("app: reducer is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
