package ui

import (
	"github.com/atomicstack/tmux-pie-menu/internal/backend"
	"github.com/atomicstack/tmux-pie-menu/internal/menu"
	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return nil
	}
	res := m.dispatcher.Handle(evt)
	if !m.hasBackendIssue() {
		m.backendLastErr = ""
	}
	if !res.SessionsUpdated && !res.WindowsUpdated {
		return nil
	}
	return m.refreshRings()
}

func (m *Model) hasBackendIssue() bool {
	for _, err := range m.backendState {
		if err != nil {
			return true
		}
	}
	return false
}

// refreshRings reruns the loader of every ring on the stack against the
// updated stores and swaps in a fresh ring wherever the entries changed. An
// open ring is reopened in place with the pointer where it was.
func (m *Model) refreshRings() tea.Cmd {
	ctx := m.menuContext()
	var cmd tea.Cmd
	for i, r := range m.stack {
		if r.node.Loader == nil {
			continue
		}
		items, err := r.node.Loader(ctx)
		if err != nil || sameItems(items, r.items) {
			continue
		}
		fresh := m.newRing(r.node, items)
		fresh.center = r.center
		m.stack[i] = fresh
		if i != len(m.stack)-1 {
			continue
		}
		if !r.pie.IsOpen() {
			m.surface = pie.NewSurface(fresh.pie)
			continue
		}
		cursor := r.pie.State().Cursor
		m.surface.Close()
		if cmd = m.openRing(fresh, r.center); cmd != nil {
			fresh.pie.Move(cursor)
		}
	}
	return cmd
}

func sameItems(a, b []menu.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
