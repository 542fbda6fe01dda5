package ui

import (
	"time"

	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests. Ticks
// are queued rather than slept on and only delivered by Advance, so tests
// control the animation clock.
type Harness struct {
	model *Model
	now   time.Time
	ticks []tickMsg
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model, now: time.Unix(0, 0)}
	if model != nil {
		model.tick = h.queueTick
	}
	return h
}

func (h *Harness) queueTick(menu *pie.Menu, generation uint64) tea.Cmd {
	h.ticks = append(h.ticks, tickMsg{menu: menu, generation: generation})
	return nil
}

// Init runs the model's Init commands.
func (h *Harness) Init() {
	if h.model == nil {
		return
	}
	h.processCmd(h.model.Init())
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || h.quit {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Advance delivers n rounds of queued ticks, moving the clock forward one
// frame per round.
func (h *Harness) Advance(n int) {
	for i := 0; i < n; i++ {
		h.now = h.now.Add(pie.TickInterval)
		pending := h.ticks
		h.ticks = nil
		for _, tick := range pending {
			tick.at = h.now
			h.Send(tick)
		}
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.QuitMsg:
		h.quit = true
	case tea.BatchMsg:
		for _, sub := range msg {
			h.processCmd(sub)
		}
	default:
		h.Send(msg)
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}
