package ui

import (
	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Back key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit("key")
	case key.Matches(keyMsg, m.keys.Back):
		if m.loading {
			return nil
		}
		return m.back("key")
	}
	return nil
}

// pointerEvent maps a terminal mouse event into pointer space. Cells are
// roughly twice as tall as they are wide, so rows count double. Wheel
// events have no pointer meaning and are dropped.
func pointerEvent(msg tea.MouseMsg) (pie.PointerEvent, bool) {
	mouse := tea.MouseEvent(msg)
	if mouse.IsWheel() {
		return pie.PointerEvent{}, false
	}
	ev := pie.PointerEvent{Point: pie.Point{X: float64(mouse.X), Y: float64(mouse.Y * 2)}}
	switch mouse.Action {
	case tea.MouseActionMotion:
		ev.Kind = pie.PointerMove
	case tea.MouseActionPress:
		ev.Kind = pie.PointerPress
	case tea.MouseActionRelease:
		ev.Kind = pie.PointerRelease
	default:
		return pie.PointerEvent{}, false
	}
	// X10 encoding reports releases without a button
	ev.Primary = mouse.Button == tea.MouseButtonLeft ||
		(ev.Kind == pie.PointerRelease && mouse.Button == tea.MouseButtonNone)
	return ev, true
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || m.loading || m.surface == nil {
		return nil
	}
	ev, ok := pointerEvent(mouse)
	if !ok {
		return nil
	}
	if ev.Kind == pie.PointerRelease && mouse.Button == tea.MouseButtonRight {
		return m.back("right-click")
	}
	active := m.surface.Active()
	wasOpen := active.IsOpen()
	hadSelection := active.Selected() != pie.None
	m.surface.Dispatch(ev)
	return m.afterDispatch(ev, wasOpen, hadSelection)
}
