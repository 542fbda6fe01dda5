package ui

import (
	"time"

	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives one frame of a ring. Ticks are tagged with the menu and its
// open generation so a tick scheduled before a close never reaches the ring
// that replaced it.
type tickMsg struct {
	menu       *pie.Menu
	generation uint64
	at         time.Time
}

type tickFunc func(menu *pie.Menu, generation uint64) tea.Cmd

func tickAfterInterval(menu *pie.Menu, generation uint64) tea.Cmd {
	return tea.Tick(pie.TickInterval, func(at time.Time) tea.Msg {
		return tickMsg{menu: menu, generation: generation, at: at}
	})
}

func (m *Model) scheduleTick(menu *pie.Menu) tea.Cmd {
	if menu == nil || !menu.IsOpen() || m.tick == nil {
		return nil
	}
	return m.tick(menu, menu.Generation())
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(tickMsg)
	if !ok || m.surface == nil {
		return nil
	}
	if tick.menu != m.surface.Active() || tick.generation != tick.menu.Generation() {
		return nil
	}
	if !m.surface.Tick(tick.at) {
		return nil
	}
	return m.scheduleTick(tick.menu)
}
