package ui

import (
	"fmt"
	"math"

	"github.com/atomicstack/tmux-pie-menu/internal/logging"
	"github.com/atomicstack/tmux-pie-menu/internal/logging/events"
	"github.com/atomicstack/tmux-pie-menu/internal/menu"
	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	"github.com/atomicstack/tmux-pie-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// fallbackRingSize is used before the terminal size is known.
const fallbackRingSize = 48

// ring is one level of the drill-down stack: a catalog node, the entries its
// loader produced, and the pie menu presenting them.
type ring struct {
	node    *menu.Node
	items   []menu.Item
	pie     *pie.Menu
	sprites []*sprite
	center  pie.Point
}

type ringLoadedMsg struct {
	id    string
	items []menu.Item
	err   error
	at    pie.Point
	base  bool
}

func (m *Model) top() *ring {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// ringSize returns the side length for new rings: the configured size, or
// the largest square that fits the canvas in pointer space.
func (m *Model) ringSize() float64 {
	limit := math.Min(float64(m.width), float64(2*m.canvasHeight()))
	size := m.pieCfg.Size
	if size <= 0 || (limit > 0 && size > limit) {
		size = limit
	}
	if size <= 0 {
		size = fallbackRingSize
	}
	return size
}

func (m *Model) ringConfig() pie.Config {
	cfg := m.pieCfg
	cfg.Size = m.ringSize()
	if cfg.StartRadius <= 0 {
		cfg.StartRadius = pie.DefaultConfig().StartRadius
	}
	cfg.Hooks = pie.Hooks{
		// nothing opens while an action or loader is in flight
		BeforeOpen: func(*pie.Menu) bool { return !m.loading },
		AfterOpen:  func(*pie.Menu) { m.infoMsg = "" },
	}
	return cfg
}

func (m *Model) newRing(node *menu.Node, items []menu.Item) *ring {
	r := &ring{node: node, items: items}
	pieItems := make([]*pie.Item, len(items))
	r.sprites = make([]*sprite, len(items))
	for i, item := range items {
		idx := i
		child := node.Children[item.ID]
		r.sprites[i] = newSprite(entryLabel(child, item), child.Submenu())
		pieItems[i] = pie.NewItem(item.Label, func(*pie.Menu) bool {
			return m.commitEntry(r, idx)
		}, r.sprites[i])
	}
	r.pie = pie.New(m.ringConfig(), pieItems...)
	return r
}

func entryLabel(child *menu.Node, item menu.Item) string {
	if child != nil && child.Glyph != "" {
		return child.Glyph + " " + item.Label
	}
	return item.Label
}

// openRing binds r to the surface, opens it at the given point, and starts
// its tick loop.
func (m *Model) openRing(r *ring, at pie.Point) tea.Cmd {
	if r == nil {
		return nil
	}
	if m.surface == nil {
		m.surface = pie.NewSurface(r.pie)
	}
	if !m.surface.Open(r.pie, at) {
		return nil
	}
	r.center = at
	return m.scheduleTick(r.pie)
}

// commitEntry is the pie action behind every slice. Descending and sticky
// entries keep the ring open; everything else lets it close.
func (m *Model) commitEntry(r *ring, idx int) bool {
	if idx < 0 || idx >= len(r.items) {
		return false
	}
	item := r.items[idx]
	m.errMsg = ""
	sel, ok := m.registry.Select(r.node.ID, item)
	if !ok {
		return false
	}
	if sel.Descend != "" {
		m.descendTo = sel.Descend
		return true
	}
	m.pending = append(m.pending, m.bus.Execute(m.menuContext(), command.Request{
		ID:      requestID(r.node, item),
		Label:   item.Label,
		Handler: sel.Action,
		Item:    item,
		Sticky:  sel.Sticky,
	}))
	return sel.Sticky
}

func requestID(node *menu.Node, item menu.Item) string {
	if node == nil || node.ID == "root" {
		return item.ID
	}
	return node.ID + ":" + item.ID
}

// afterDispatch reacts to what a pointer event did to the active ring.
func (m *Model) afterDispatch(ev pie.PointerEvent, wasOpen, hadSelection bool) tea.Cmd {
	if m.descendTo != "" {
		return m.descend()
	}
	active := m.surface.Active()
	if len(m.pending) > 0 {
		cmds := m.pending
		m.pending = nil
		if !active.IsOpen() {
			m.loading = true
		}
		return tea.Batch(cmds...)
	}
	switch {
	case wasOpen && !active.IsOpen():
		if ev.Kind == pie.PointerRelease && !hadSelection {
			return m.back("release")
		}
		// dismissed by distance, or an entry with nothing behind it
		m.resetToBase()
	case !wasOpen && active.IsOpen():
		if r := m.top(); r != nil {
			r.center = active.State().Center
		}
		return m.scheduleTick(active)
	}
	return nil
}

func (m *Model) descend() tea.Cmd {
	id := m.descendTo
	m.descendTo = ""
	parent := m.top()
	if parent == nil {
		return nil
	}
	m.surface.Close()
	node, ok := m.registry.Find(id)
	if !ok || !node.Submenu() {
		m.setError(fmt.Errorf("unknown menu %q", id))
		return m.openRing(parent, parent.center)
	}
	m.loading = true
	return m.loadRingCmd(node, parent.center, false)
}

// back closes the top ring and reopens its parent at the same center. At
// the base ring it quits.
func (m *Model) back(reason string) tea.Cmd {
	if len(m.stack) <= 1 {
		return m.quit(reason)
	}
	top := m.top()
	m.surface.Close()
	m.stack = m.stack[:len(m.stack)-1]
	parent := m.top()
	events.UI.Ascend(top.node.ID, parent.node.ID)
	return m.openRing(parent, top.center)
}

// resetToBase drops every ring above the base and leaves the base closed,
// waiting for the next click.
func (m *Model) resetToBase() {
	if len(m.stack) == 0 {
		return
	}
	m.surface.Close()
	for len(m.stack) > 1 {
		top := m.top()
		m.stack = m.stack[:len(m.stack)-1]
		events.UI.Ascend(top.node.ID, m.top().node.ID)
	}
	m.surface = pie.NewSurface(m.stack[0].pie)
}

func (m *Model) quit(reason string) tea.Cmd {
	if m.surface != nil {
		m.surface.Close()
	}
	events.UI.Quit(reason)
	return tea.Quit
}

func (m *Model) loadRingCmd(node *menu.Node, at pie.Point, base bool) tea.Cmd {
	if node == nil {
		return nil
	}
	ctx := m.menuContext()
	return func() tea.Msg {
		var (
			items []menu.Item
			err   error
		)
		if node.Loader != nil {
			items, err = node.Loader(ctx)
		}
		if err != nil {
			logging.Error(err)
		}
		return ringLoadedMsg{id: node.ID, items: items, err: err, at: at, base: base}
	}
}

func (m *Model) handleRingLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(ringLoadedMsg)
	if !ok {
		return nil
	}
	node, found := m.registry.Find(loaded.id)
	if !found {
		return nil
	}
	if loaded.base {
		r := m.newRing(node, loaded.items)
		m.stack = []*ring{r}
		m.surface = pie.NewSurface(r.pie)
		m.setError(loaded.err)
		return m.maybeAutoOpen()
	}
	m.loading = false
	parent := m.top()
	if loaded.err != nil {
		m.setError(loaded.err)
		return m.openRing(parent, loaded.at)
	}
	r := m.newRing(node, loaded.items)
	m.stack = append(m.stack, r)
	if parent != nil {
		events.UI.Descend(parent.node.ID, node.ID)
	}
	if len(loaded.items) == 0 {
		m.infoMsg = "(no entries)"
	}
	return m.openRing(r, loaded.at)
}

func (m *Model) handleCompletedMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(command.Completed)
	if !ok {
		return nil
	}
	m.loading = false
	result := done.Result
	if result.Err != nil {
		m.setError(result.Err)
		events.Action.Error(result.Err)
		return m.recoverFromError()
	}
	events.Action.Success(result.Info)
	if done.Sticky && m.surface != nil && m.surface.Active().IsOpen() {
		if m.verbose && result.Info != "" {
			m.infoMsg = result.Info
		}
		return nil
	}
	return m.quit("action")
}

// recoverFromError brings the menu back after a failed action so the user
// can retry or pick something else.
func (m *Model) recoverFromError() tea.Cmd {
	if m.surface == nil || m.surface.Active().IsOpen() {
		return nil
	}
	center := m.canvasCenter()
	if r := m.top(); r != nil {
		center = r.center
	}
	m.resetToBase()
	return m.openRing(m.top(), center)
}
