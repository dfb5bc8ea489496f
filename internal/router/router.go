package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/denguerisk/internal/screen"
	"github.com/abhisek/denguerisk/internal/ui/layout"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// backHints are shown for pushed screens that do not provide their own.
var backHints = []layout.KeyHint{
	{Key: "Esc", Description: "Voltar"},
	{Key: "Ctrl+C", Description: "Sair"},
}

// Router manages a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// Title returns the title of the active screen.
func (r *Router) Title() string {
	if active := r.Active(); active != nil {
		return active.Title()
	}
	return ""
}

// KeyHints returns the footer hints of the active screen.
func (r *Router) KeyHints() []layout.KeyHint {
	if p, ok := r.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if r.Depth() > 1 {
		return backHints
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Sair"}}
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
