package pie

import (
	"math"
	"time"

	"github.com/atomicstack/tmux-pie-menu/internal/logging/events"
	"github.com/google/uuid"
)

const (
	// TickInterval is the period the host should call Tick at.
	TickInterval = 10 * time.Millisecond

	radiusStep = 2
	twistStep  = .05
)

// State is the per-lifecycle state of a menu. It is reset on every open and
// on close.
type State struct {
	Center    Point
	Cursor    Point
	Radius    float64
	MaxRadius float64
	Twist     float64
	Selected  int
	Open      bool
}

// Menu is the pie menu controller. It is driven from a single goroutine:
// the host forwards pointer input through Move, Commit, or a Surface, and
// calls Tick every TickInterval while Tick keeps returning true.
type Menu struct {
	cfg   Config
	items []*Item
	state State
	frame Frame

	id         string
	generation uint64
	ticks      int
}

// New constructs a menu owning the given items. Item order is ring order.
func New(cfg Config, items ...*Item) *Menu {
	return &Menu{
		cfg:   cfg,
		items: items,
		state: State{Selected: None},
		frame: Frame{Closest: None, Selected: None},
	}
}

// Config returns the menu configuration.
func (m *Menu) Config() Config {
	return m.cfg
}

// Items returns the menu items in ring order.
func (m *Menu) Items() []*Item {
	return m.items
}

// ID identifies the current (or most recent) open lifecycle.
func (m *Menu) ID() string {
	return m.id
}

// Generation increments on every successful Open. Hosts tag scheduled ticks
// with it so a tick scheduled for an earlier lifecycle can be dropped.
func (m *Menu) Generation() uint64 {
	return m.generation
}

// State returns a snapshot of the lifecycle state.
func (m *Menu) State() State {
	return m.state
}

// Frame returns the result of the last weighting pass.
func (m *Menu) Frame() Frame {
	return m.frame
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	return m.state.Open
}

// Animating reports whether the intro animation is still running.
func (m *Menu) Animating() bool {
	return m.state.Open && m.state.Radius < m.state.MaxRadius
}

// Selected returns the index of the hot item or None.
func (m *Menu) Selected() int {
	return m.state.Selected
}

// Open shows the menu centered at the given point. It returns false when the
// menu is already open or the BeforeOpen hook vetoed it. Nothing is drawn
// until the first Tick.
func (m *Menu) Open(at Point) bool {
	if m.state.Open {
		return false
	}
	if hook := m.cfg.Hooks.BeforeOpen; hook != nil && !hook(m) {
		events.Pie.Veto(m.id, "open")
		return false
	}

	maxRadius := math.Floor((m.cfg.Size - .3*m.cfg.Size) / 2)
	if maxRadius < 0 {
		maxRadius = 0
	}
	radius := math.Round(m.cfg.StartRadius * maxRadius)
	if radius > maxRadius {
		radius = maxRadius
	}
	twist := math.Remainder(-twistStep*math.Floor((maxRadius-radius)/2), FullCircle)

	m.id = uuid.NewString()
	m.generation++
	m.ticks = 0
	m.frame = Frame{Closest: None, Selected: None}
	m.state = State{
		Center:    at,
		Cursor:    at,
		Radius:    radius,
		MaxRadius: maxRadius,
		Twist:     twist,
		Selected:  None,
		Open:      true,
	}
	events.Pie.Open(m.id, at.X, at.Y, maxRadius, len(m.items))

	if hook := m.cfg.Hooks.AfterOpen; hook != nil {
		hook(m)
	}
	return true
}

// Move records a new pointer position. The layout picks it up on the next
// Tick. Outside edge-extension mode, straying further than half the menu
// size from the center dismisses the menu without consulting or notifying
// the close hooks. Move reports whether the event was consumed by an open
// menu.
func (m *Menu) Move(p Point) bool {
	if !m.state.Open {
		return false
	}
	m.state.Cursor = p
	if m.cfg.EdgeExtension {
		return true
	}
	if dist := p.Dist(m.state.Center); dist > m.cfg.Size/2 {
		events.Pie.Dismiss(m.id, dist)
		m.close(events.CloseReasonDismiss)
	}
	return true
}

// Tick lays out and draws one frame, then advances the intro animation by
// one fixed step, however long ago the previous tick ran. It returns true
// while the menu is open and should keep being ticked.
func (m *Menu) Tick(time.Time) bool {
	if !m.state.Open {
		return false
	}
	m.layout()
	for _, item := range m.items {
		item.draw()
	}

	if m.Animating() {
		m.advance()
		if !m.Animating() {
			events.Pie.Settled(m.id, m.ticks+1)
		}
	}
	m.ticks++
	return true
}

// Commit asks BeforeClose first; a veto leaves the menu open and runs no
// action. Otherwise the selected item's action runs, and unless it reports
// the event handled the menu is closed. Commit returns whether the menu is
// still open afterwards.
func (m *Menu) Commit() bool {
	if !m.state.Open {
		return false
	}
	if hook := m.cfg.Hooks.BeforeClose; hook != nil && !hook(m) {
		events.Pie.Veto(m.id, "commit")
		return true
	}
	if i := m.state.Selected; i >= 0 && i < len(m.items) {
		item := m.items[i]
		handled := item.execute(m)
		events.Pie.Commit(m.id, i, item.Label, handled)
		if handled || !m.state.Open {
			return m.state.Open
		}
	}
	m.close(events.CloseReasonRequest)
	return false
}

// Close hides the menu. It returns false when the menu was not open or the
// BeforeClose hook vetoed it.
func (m *Menu) Close() bool {
	if !m.state.Open {
		return false
	}
	if hook := m.cfg.Hooks.BeforeClose; hook != nil && !hook(m) {
		events.Pie.Veto(m.id, "close")
		return false
	}
	m.close(events.CloseReasonRequest)
	return true
}

func (m *Menu) close(reason events.CloseReason) {
	for n := len(m.items); n > 0; n-- {
		m.items[n-1].hide()
	}
	m.state = State{Selected: None}
	m.frame = Frame{Closest: None, Selected: None}
	events.Pie.Close(m.id, reason)

	if reason == events.CloseReasonDismiss {
		return
	}
	if hook := m.cfg.Hooks.AfterClose; hook != nil {
		hook(m)
	}
}

func (m *Menu) layout() {
	d := m.state.Cursor.Sub(m.state.Center)
	m.frame = Weigh(m.items, d.X, d.Y, m.state.Radius, m.state.Twist)
	Arrange(m.items, m.frame, m.state.Center, m.state.Radius)
	m.state.Selected = m.frame.Selected
}

func (m *Menu) advance() {
	if m.state.Radius += radiusStep; m.state.Radius > m.state.MaxRadius {
		m.state.Radius = m.state.MaxRadius
	}
	if m.state.Twist += twistStep; m.state.Twist > FullCircle {
		m.state.Twist -= FullCircle
	}
}
