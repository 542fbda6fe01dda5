package pie

import (
	"time"

	"github.com/atomicstack/tmux-pie-menu/internal/logging/events"
)

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerPress
	PointerRelease
)

// PointerEvent is a normalized pointer event in pointer space.
type PointerEvent struct {
	Kind    PointerKind
	Point   Point
	Primary bool
}

// Surface owns the single menu that may be open on a host surface and routes
// pointer input to it. Input dispatch code holds the Surface explicitly.
type Surface struct {
	menu *Menu
}

// NewSurface returns a surface bound to m.
func NewSurface(m *Menu) *Surface {
	return &Surface{menu: m}
}

// Active returns the menu bound to the surface, open or not.
func (s *Surface) Active() *Menu {
	return s.menu
}

// Open binds m to the surface and opens it at the given point. Opening while
// a different menu is open is rejected.
func (s *Surface) Open(m *Menu, at Point) bool {
	if m == nil {
		return false
	}
	if s.menu != nil && s.menu != m && s.menu.IsOpen() {
		events.Pie.Reject(s.menu.ID())
		return false
	}
	s.menu = m
	return m.Open(at)
}

// Close closes the bound menu.
func (s *Surface) Close() bool {
	if s.menu == nil {
		return false
	}
	return s.menu.Close()
}

// Tick forwards a tick to the bound menu.
func (s *Surface) Tick(now time.Time) bool {
	if s.menu == nil {
		return false
	}
	return s.menu.Tick(now)
}

// Dispatch routes a pointer event and reports whether it was consumed.
//
// A closed menu opens on a primary press when ShowOnPress is set, otherwise
// on a primary release. While open, moves track the pointer and a release
// of any button commits the selection. Presses while open are swallowed,
// even with ShowOnPress: a press never commits, only the release does.
func (s *Surface) Dispatch(ev PointerEvent) bool {
	m := s.menu
	if m == nil {
		return false
	}
	switch ev.Kind {
	case PointerMove:
		return m.Move(ev.Point)
	case PointerPress:
		if m.IsOpen() {
			return true
		}
		if ev.Primary && m.cfg.ShowOnPress {
			return m.Open(ev.Point)
		}
	case PointerRelease:
		if m.IsOpen() {
			m.Commit()
			return true
		}
		if ev.Primary && !m.cfg.ShowOnPress {
			return m.Open(ev.Point)
		}
	}
	return false
}
