package ui

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-pie-menu/internal/menu"
	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	tea "github.com/charmbracelet/bubbletea"
)

// Ring geometry for an 80x24 terminal: the canvas is 23 rows, so the center
// sits at pointer (40, 22) and settled rings have a radius of 16.
const (
	centerCol = 40
	centerRow = 11
)

type actionLog struct {
	calls []string
}

func (l *actionLog) action(info string, err error) menu.Action {
	return func(_ menu.Context, item menu.Item) tea.Cmd {
		return func() tea.Msg {
			l.calls = append(l.calls, item.ID)
			return menu.ActionResult{Info: info, Err: err}
		}
	}
}

func staticLoader(ids ...string) menu.Loader {
	return func(menu.Context) ([]menu.Item, error) {
		items := make([]menu.Item, 0, len(ids))
		for _, id := range ids {
			items = append(items, menu.Item{ID: id, Label: id})
		}
		return items, nil
	}
}

// testRegistry lays out a root ring of four slices: alpha (right, submenu),
// beta (down, leaf), gamma (left, sticky submenu), delta (up, failing leaf).
func testRegistry(log *actionLog) *menu.Registry {
	return menu.NewRegistry(map[string]*menu.Node{
		"root":      {Loader: staticLoader("alpha", "beta", "gamma", "delta")},
		"alpha":     {Glyph: "A", Loader: staticLoader("one", "two")},
		"alpha:one": {Action: log.action("one done", nil)},
		"alpha:two": {Action: log.action("two done", nil)},
		"beta":      {Action: log.action("beta done", nil)},
		"gamma":     {Loader: staticLoader("x", "y"), Action: log.action("nudged", nil), Sticky: true},
		"delta":     {Action: log.action("", errors.New("tmux exploded"))},
	})
}

func newTestHarness(t *testing.T, opts Options) (*Harness, *actionLog) {
	t.Helper()
	log := &actionLog{}
	m := NewModel(opts, nil)
	m.registry = testRegistry(log)
	m.base = m.registry.Root()
	h := NewHarness(m)
	h.Init()
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.Advance(3)
	return h, log
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// pick hovers the given cell, lets the ring lay out, and releases there.
func pick(h *Harness, x, y int) {
	h.Send(motion(x, y))
	h.Advance(1)
	h.Send(click(x, y))
}

func topID(h *Harness) string {
	if r := h.Model().top(); r != nil {
		return r.node.ID
	}
	return ""
}

func TestBaseRingOpensAtCanvasCenter(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	m := h.Model()
	if len(m.stack) != 1 || topID(h) != "root" {
		t.Fatalf("expected only the root ring, got %d rings (top %q)", len(m.stack), topID(h))
	}
	r := m.top()
	if !r.pie.IsOpen() {
		t.Fatalf("expected base ring to open once the size is known")
	}
	if got := r.pie.State().Center; got != (pie.Point{X: 40, Y: 22}) {
		t.Fatalf("expected ring centered at (40, 22), got %+v", got)
	}
	if got := r.pie.Config().Size; got != 46 {
		t.Fatalf("expected ring fitted to the canvas (46), got %v", got)
	}
	if m.top().pie.Animating() {
		t.Fatalf("expected intro to settle after three frames")
	}
}

func TestHoverSelectsSlice(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Send(motion(centerCol, centerRow+8))
	h.Advance(1)
	if got := h.Model().top().pie.Selected(); got != 1 {
		t.Fatalf("expected beta (slot 1) selected, got %d", got)
	}
	h.Send(motion(centerCol+1, centerRow))
	h.Advance(1)
	if got := h.Model().top().pie.Selected(); got != pie.None {
		t.Fatalf("expected no selection near the center, got %d", got)
	}
}

func TestDescendOpensChildAtSameCenter(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pick(h, centerCol+16, centerRow)
	m := h.Model()
	if topID(h) != "alpha" || len(m.stack) != 2 {
		t.Fatalf("expected alpha ring on top, got %q (%d rings)", topID(h), len(m.stack))
	}
	if m.loading {
		t.Fatalf("expected loading to clear once the ring arrived")
	}
	if m.stack[0].pie.IsOpen() {
		t.Fatalf("expected parent ring closed while the child is open")
	}
	child := m.top()
	if !child.pie.IsOpen() || child.pie.State().Center != (pie.Point{X: 40, Y: 22}) {
		t.Fatalf("expected child open at the parent center, got %+v", child.pie.State())
	}
	if len(child.items) != 2 {
		t.Fatalf("expected two child entries, got %d", len(child.items))
	}
}

func TestEscapeAscendsThenQuits(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pick(h, centerCol+16, centerRow)
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if topID(h) != "root" || !h.Model().top().pie.IsOpen() {
		t.Fatalf("expected esc to reopen the root ring, got %q", topID(h))
	}
	if h.Quit() {
		t.Fatalf("expected no quit after a single esc")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if !h.Quit() {
		t.Fatalf("expected esc on the base ring to quit")
	}
}

func TestQuitKey(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !h.Quit() {
		t.Fatalf("expected q to quit")
	}
}

func TestLeafActionRunsAndQuits(t *testing.T) {
	h, log := newTestHarness(t, Options{})
	pick(h, centerCol, centerRow+8)
	if len(log.calls) != 1 || log.calls[0] != "beta" {
		t.Fatalf("expected beta action once, got %v", log.calls)
	}
	if !h.Quit() {
		t.Fatalf("expected a successful action to quit")
	}
}

func TestChildLeafAction(t *testing.T) {
	h, log := newTestHarness(t, Options{})
	pick(h, centerCol+16, centerRow)
	h.Advance(3)
	// alpha has two slices: "one" to the right, "two" to the left
	pick(h, centerCol-16, centerRow)
	if len(log.calls) != 1 || log.calls[0] != "two" {
		t.Fatalf("expected alpha:two action, got %v", log.calls)
	}
	if !h.Quit() {
		t.Fatalf("expected quit after the child action")
	}
}

func TestStickyActionKeepsRingOpen(t *testing.T) {
	h, log := newTestHarness(t, Options{Verbose: true})
	pick(h, centerCol-16, centerRow)
	if topID(h) != "gamma" {
		t.Fatalf("expected gamma ring, got %q", topID(h))
	}
	h.Advance(3)
	pick(h, centerCol+16, centerRow)
	pick(h, centerCol+16, centerRow)
	if len(log.calls) != 2 || log.calls[0] != "x" || log.calls[1] != "x" {
		t.Fatalf("expected the sticky entry to run twice, got %v", log.calls)
	}
	m := h.Model()
	if h.Quit() || !m.top().pie.IsOpen() || m.loading {
		t.Fatalf("expected sticky ring to stay open, quit=%v loading=%v", h.Quit(), m.loading)
	}
	if m.infoMsg != "nudged" {
		t.Fatalf("expected verbose info to be shown, got %q", m.infoMsg)
	}
}

func TestActionErrorReopensBaseRing(t *testing.T) {
	h, log := newTestHarness(t, Options{})
	pick(h, centerCol, centerRow-8)
	m := h.Model()
	if len(log.calls) != 1 || log.calls[0] != "delta" {
		t.Fatalf("expected delta action, got %v", log.calls)
	}
	if h.Quit() {
		t.Fatalf("expected a failed action not to quit")
	}
	if m.errMsg != "tmux exploded" {
		t.Fatalf("expected error message, got %q", m.errMsg)
	}
	if len(m.stack) != 1 || !m.top().pie.IsOpen() || m.loading {
		t.Fatalf("expected base ring reopened, rings=%d loading=%v", len(m.stack), m.loading)
	}
}

func TestReleaseAtCenterGoesBack(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pick(h, centerCol+16, centerRow)
	h.Advance(3)
	pick(h, centerCol, centerRow)
	if topID(h) != "root" || !h.Model().top().pie.IsOpen() {
		t.Fatalf("expected an empty release to reopen the parent, got %q", topID(h))
	}
	h.Advance(1)
	pick(h, centerCol, centerRow)
	if !h.Quit() {
		t.Fatalf("expected an empty release on the base ring to quit")
	}
}

func TestRightClickAscends(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pick(h, centerCol+16, centerRow)
	h.Send(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight})
	if topID(h) != "root" || len(h.Model().stack) != 1 {
		t.Fatalf("expected right click to ascend, got %q", topID(h))
	}
}

func TestDismissalResetsWithoutQuitting(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pick(h, centerCol+16, centerRow)
	h.Send(motion(79, centerRow))
	m := h.Model()
	if h.Quit() {
		t.Fatalf("expected dismissal not to quit")
	}
	if len(m.stack) != 1 || m.top().pie.IsOpen() {
		t.Fatalf("expected only a closed base ring after dismissal, rings=%d", len(m.stack))
	}
	h.Send(click(10, 5))
	if !m.top().pie.IsOpen() || m.top().pie.State().Center != (pie.Point{X: 10, Y: 10}) {
		t.Fatalf("expected a click to reopen the base ring under the pointer, got %+v", m.top().pie.State())
	}
	if m.top().center != (pie.Point{X: 10, Y: 10}) {
		t.Fatalf("expected ring center recorded, got %+v", m.top().center)
	}
}

func TestMouseIgnoredWhileLoading(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	m := h.Model()
	m.loading = true
	h.Send(click(centerCol+16, centerRow))
	if len(m.stack) != 1 || m.descendTo != "" {
		t.Fatalf("expected input ignored while loading")
	}
}

func TestStaleTicksAreDropped(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	first := h.Model().top().pie
	gen := first.Generation()
	pick(h, centerCol+16, centerRow)
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if first.Generation() == gen {
		t.Fatalf("expected reopening to bump the generation")
	}
	h.ticks = nil
	h.Send(tickMsg{menu: first, generation: gen})
	if len(h.ticks) != 0 {
		t.Fatalf("expected stale generation tick to be dropped")
	}
	foreign := pie.New(pie.DefaultConfig())
	foreign.Open(pie.Point{})
	h.Send(tickMsg{menu: foreign, generation: foreign.Generation()})
	if len(h.ticks) != 0 {
		t.Fatalf("expected tick for a foreign menu to be dropped")
	}
	h.Send(tickMsg{menu: first, generation: first.Generation()})
	if len(h.ticks) != 1 {
		t.Fatalf("expected current tick to schedule the next one, got %d", len(h.ticks))
	}
}

func TestResizeRebuildsClosedBaseRing(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pick(h, centerCol+16, centerRow)
	h.Send(motion(79, centerRow))
	m := h.Model()
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 12})
	if got := m.top().pie.Config().Size; got != 22 {
		t.Fatalf("expected rebuilt ring sized to the new canvas (22), got %v", got)
	}
}

func TestConfiguredSizeIsClampedToCanvas(t *testing.T) {
	m := NewModel(Options{Pie: pie.Config{Size: 30, StartRadius: .5}}, nil)
	m.width, m.height = 80, 24
	if got := m.ringSize(); got != 30 {
		t.Fatalf("expected configured size 30, got %v", got)
	}
	m.pieCfg.Size = 500
	if got := m.ringSize(); got != 46 {
		t.Fatalf("expected oversize ring clamped to 46, got %v", got)
	}
	m.width, m.height = 0, 0
	m.pieCfg.Size = 0
	if got := m.ringSize(); got != fallbackRingSize {
		t.Fatalf("expected fallback size before the first resize, got %v", got)
	}
	if got := m.ringConfig().StartRadius; got != .5 {
		t.Fatalf("expected configured start radius, got %v", got)
	}
}

func TestRootMenuOverride(t *testing.T) {
	m := NewModel(Options{RootMenu: "sess"}, nil)
	if m.base.ID != "session" {
		t.Fatalf("expected fuzzy match on session, got %q", m.base.ID)
	}
	if m.errMsg != "" {
		t.Fatalf("expected no error, got %q", m.errMsg)
	}
	m = NewModel(Options{RootMenu: "zzzz"}, nil)
	if m.base.ID != "root" || m.errMsg == "" {
		t.Fatalf("expected fallback to root with an error, got %q / %q", m.base.ID, m.errMsg)
	}
}

func TestRequestID(t *testing.T) {
	reg := menu.BuildRegistry()
	root := reg.Root()
	resize, _ := reg.Find("pane:resize")
	if got := requestID(root, menu.Item{ID: "detach"}); got != "detach" {
		t.Fatalf("expected bare id under root, got %q", got)
	}
	if got := requestID(resize, menu.Item{ID: "left"}); got != "pane:resize:left" {
		t.Fatalf("expected qualified id, got %q", got)
	}
}
