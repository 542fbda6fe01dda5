package menu

import "github.com/atomicstack/tmux-pie-menu/internal/tmux"

func SessionEntriesFromTmux(sessions []tmux.Session) []SessionEntry {
	entries := make([]SessionEntry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, SessionEntry{
			Name:     s.Name,
			Label:    s.Label,
			Attached: s.Attached,
			Current:  s.Current,
			Windows:  s.Windows,
		})
	}
	return entries
}

func WindowEntriesFromTmux(windows []tmux.Window) []WindowEntry {
	entries := make([]WindowEntry, 0, len(windows))
	for _, w := range windows {
		entries = append(entries, WindowEntry{
			ID:      w.ID,
			Label:   w.Label,
			Name:    w.Name,
			Session: w.Session,
			Index:   w.Index,
			Current: w.Current,
		})
	}
	return entries
}
