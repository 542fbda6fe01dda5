package command

import (
	"fmt"

	"github.com/atomicstack/tmux-pie-menu/internal/logging/events"
	"github.com/atomicstack/tmux-pie-menu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
	// Sticky requests come from rings that stay open after the commit.
	Sticky bool
}

// Completed is delivered once a request's action has produced its result.
type Completed struct {
	ID     string
	Label  string
	Sticky bool
	Result menu.ActionResult
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a menu action into a Bubble Tea command while emitting trace
// logs. ActionResult messages are tagged with the originating request; any
// other message the action produces is passed through untouched.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(ctx, req.Item)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		if result, ok := msg.(menu.ActionResult); ok {
			return Completed{ID: req.ID, Label: req.Label, Sticky: req.Sticky, Result: result}
		}
		return msg
	}
}
