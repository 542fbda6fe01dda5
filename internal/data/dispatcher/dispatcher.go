package dispatcher

import (
	"github.com/atomicstack/tmux-pie-menu/internal/backend"
	"github.com/atomicstack/tmux-pie-menu/internal/menu"
	"github.com/atomicstack/tmux-pie-menu/internal/state"
	"github.com/atomicstack/tmux-pie-menu/internal/tmux"
)

type Result struct {
	SessionsUpdated bool
	WindowsUpdated  bool
}

// Dispatcher applies backend snapshots to the stores the menu loaders read.
type Dispatcher struct {
	sessions state.SessionStore
	windows  state.WindowStore
}

func New(s state.SessionStore, w state.WindowStore) *Dispatcher {
	return &Dispatcher{sessions: s, windows: w}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindSessions:
		if snapshot, ok := evt.Data.(tmux.SessionSnapshot); ok {
			d.sessions.SetEntries(menu.SessionEntriesFromTmux(snapshot.Sessions))
			d.sessions.SetCurrent(snapshot.Current)
			res.SessionsUpdated = true
		}
	case backend.KindWindows:
		if snapshot, ok := evt.Data.(tmux.WindowSnapshot); ok {
			d.windows.SetEntries(menu.WindowEntriesFromTmux(snapshot.Windows))
			d.windows.SetCurrent(snapshot.CurrentID, snapshot.CurrentSession)
			res.WindowsUpdated = true
		}
	}
	return res
}
