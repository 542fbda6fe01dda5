package state

import "github.com/atomicstack/tmux-pie-menu/internal/menu"

type SessionStore interface {
	Entries() []menu.SessionEntry
	SetEntries([]menu.SessionEntry)
	Current() string
	SetCurrent(string)
}

type sessionStore struct {
	entries []menu.SessionEntry
	current string
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

func (s *sessionStore) Entries() []menu.SessionEntry {
	return cloneSessionEntries(s.entries)
}

func (s *sessionStore) SetEntries(entries []menu.SessionEntry) {
	s.entries = cloneSessionEntries(entries)
}

func (s *sessionStore) Current() string {
	return s.current
}

func (s *sessionStore) SetCurrent(current string) {
	s.current = current
}

func cloneSessionEntries(entries []menu.SessionEntry) []menu.SessionEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]menu.SessionEntry, len(entries))
	copy(dup, entries)
	return dup
}
