package state

import "github.com/atomicstack/tmux-pie-menu/internal/menu"

type WindowStore interface {
	Entries() []menu.WindowEntry
	SetEntries([]menu.WindowEntry)
	CurrentID() string
	CurrentSession() string
	SetCurrent(id, session string)
}

type windowStore struct {
	entries        []menu.WindowEntry
	currentID      string
	currentSession string
}

func NewWindowStore() WindowStore {
	return &windowStore{}
}

func (w *windowStore) Entries() []menu.WindowEntry {
	return cloneWindowEntries(w.entries)
}

func (w *windowStore) SetEntries(entries []menu.WindowEntry) {
	w.entries = cloneWindowEntries(entries)
}

func (w *windowStore) CurrentID() string {
	return w.currentID
}

func (w *windowStore) CurrentSession() string {
	return w.currentSession
}

func (w *windowStore) SetCurrent(id, session string) {
	w.currentID = id
	w.currentSession = session
}

func cloneWindowEntries(entries []menu.WindowEntry) []menu.WindowEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]menu.WindowEntry, len(entries))
	copy(dup, entries)
	return dup
}
