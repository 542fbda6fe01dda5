package pie

import (
	"math"
	"testing"
	"time"
)

type recordingPresenter struct {
	shows   int
	hides   int
	visible bool
	center  Point
	size    float64
}

func (r *recordingPresenter) SetBounds(center Point, size float64) {
	r.center = center
	r.size = size
}

func (r *recordingPresenter) Show() {
	r.shows++
	r.visible = true
}

func (r *recordingPresenter) Hide() {
	r.hides++
	r.visible = false
}

func newTestMenu(cfg Config, n int, action Action) (*Menu, []*recordingPresenter) {
	presenters := make([]*recordingPresenter, n)
	items := make([]*Item, n)
	for i := range items {
		presenters[i] = &recordingPresenter{}
		items[i] = NewItem("item", action, presenters[i])
	}
	return New(cfg, items...), presenters
}

// aim moves the cursor onto the slot of item i at the current radius.
func aim(m *Menu, i int) {
	st := m.State()
	cell := FullCircle / float64(len(m.Items()))
	a := st.Twist + float64(i)*cell
	m.Move(st.Center.Polar(st.Radius, a))
}

func TestOpenInitialisesState(t *testing.T) {
	m, _ := newTestMenu(DefaultConfig(), 4, nil)
	at := Point{X: 300, Y: 200}
	if !m.Open(at) {
		t.Fatalf("expected open to succeed")
	}
	st := m.State()
	if st.MaxRadius != 112 {
		t.Fatalf("expected max radius 112, got %v", st.MaxRadius)
	}
	if st.Radius != 84 {
		t.Fatalf("expected start radius 84, got %v", st.Radius)
	}
	if math.Abs(st.Twist-(-0.7)) > 1e-12 {
		t.Fatalf("expected twist -0.7, got %v", st.Twist)
	}
	if st.Center != at || st.Cursor != at {
		t.Fatalf("expected center and cursor at %+v, got %+v / %+v", at, st.Center, st.Cursor)
	}
	if st.Selected != None {
		t.Fatalf("expected no selection before the first tick, got %d", st.Selected)
	}
	if m.ID() == "" || m.Generation() != 1 {
		t.Fatalf("expected lifecycle id and generation 1, got %q / %d", m.ID(), m.Generation())
	}
}

func TestOpenIsNotReentrant(t *testing.T) {
	m, _ := newTestMenu(DefaultConfig(), 3, nil)
	m.Open(Point{X: 10, Y: 10})
	id := m.ID()
	if m.Open(Point{X: 50, Y: 50}) {
		t.Fatalf("expected second open to be a no-op")
	}
	if m.ID() != id || m.State().Center != (Point{X: 10, Y: 10}) {
		t.Fatalf("expected state untouched by re-entrant open")
	}
	if !m.Close() {
		t.Fatalf("expected close to succeed")
	}
	if m.Close() {
		t.Fatalf("expected second close to be a no-op")
	}
}

func TestCloseBeforeFirstTickDrawsNothing(t *testing.T) {
	m, presenters := newTestMenu(DefaultConfig(), 5, nil)
	m.Open(Point{X: 100, Y: 100})
	m.Close()
	if m.Tick(time.Now()) {
		t.Fatalf("expected tick after close to report no further ticks")
	}
	for i, p := range presenters {
		if p.shows != 0 {
			t.Fatalf("expected presenter %d never shown, got %d shows", i, p.shows)
		}
		if p.hides != 1 {
			t.Fatalf("expected presenter %d hidden once, got %d", i, p.hides)
		}
	}
}

func TestTickAnimatesIntoFinalPose(t *testing.T) {
	m, presenters := newTestMenu(DefaultConfig(), 6, nil)
	m.Open(Point{X: 200, Y: 200})
	now := time.Unix(0, 0)
	prev := m.State().Radius
	ticks := 0
	for m.Animating() {
		if !m.Tick(now) {
			t.Fatalf("expected open menu to request more ticks")
		}
		now = now.Add(TickInterval)
		ticks++
		r := m.State().Radius
		if r < prev || r > m.State().MaxRadius {
			t.Fatalf("radius %v not monotonic within max (previous %v)", r, prev)
		}
		prev = r
		if ticks > 100 {
			t.Fatalf("animation did not settle")
		}
	}
	if ticks != 14 {
		t.Fatalf("expected 14 ticks to settle, got %d", ticks)
	}
	if tw := m.State().Twist; math.Abs(tw) > 1e-9 {
		t.Fatalf("expected twist to settle at 0, got %v", tw)
	}
	if !m.Tick(now) {
		t.Fatalf("expected ticking to continue after the intro")
	}
	for i, p := range presenters {
		if !p.visible || p.shows != 15 {
			t.Fatalf("expected presenter %d visible with 15 shows, got %+v", i, p)
		}
	}
}

func TestTickAdvancesOneStepRegardlessOfGap(t *testing.T) {
	m, _ := newTestMenu(DefaultConfig(), 3, nil)
	m.Open(Point{})
	start := m.State()
	now := time.Unix(0, 0)
	gaps := []time.Duration{0, 6 * TickInterval, time.Second, TickInterval / 2}
	for i, gap := range gaps {
		now = now.Add(gap)
		m.Tick(now)
		st := m.State()
		if want := start.Radius + float64(radiusStep*(i+1)); st.Radius != want {
			t.Fatalf("tick %d after %v: expected radius %v, got %v", i, gap, want, st.Radius)
		}
		if want := start.Twist + twistStep*float64(i+1); math.Abs(st.Twist-want) > 1e-9 {
			t.Fatalf("tick %d after %v: expected twist %v, got %v", i, gap, want, st.Twist)
		}
	}
}

func TestTickSelectsAimedItem(t *testing.T) {
	m, presenters := newTestMenu(DefaultConfig(), 6, nil)
	m.Open(Point{X: 400, Y: 300})
	aim(m, 4)
	m.Tick(time.Time{})
	if got := m.Selected(); got != 4 {
		t.Fatalf("expected item 4 selected, got %d", got)
	}
	if presenters[4].size <= presenters[1].size {
		t.Fatalf("expected hot item to render larger than the opposite item")
	}
	m.Move(Point{X: 401, Y: 300})
	m.Tick(time.Time{})
	if got := m.Selected(); got != None {
		t.Fatalf("expected no selection in the dead-zone, got %d", got)
	}
}

func TestCommitHandledKeepsMenuOpen(t *testing.T) {
	afterClose := 0
	cfg := DefaultConfig()
	cfg.Hooks.AfterClose = func(*Menu) { afterClose++ }
	calls := 0
	m, _ := newTestMenu(cfg, 4, func(*Menu) bool {
		calls++
		return true
	})
	m.Open(Point{X: 200, Y: 200})
	aim(m, 1)
	m.Tick(time.Time{})
	if !m.Commit() {
		t.Fatalf("expected menu to stay open after a handled action")
	}
	if !m.IsOpen() || calls != 1 || afterClose != 0 {
		t.Fatalf("expected open menu, one call, no after-close; got open=%v calls=%d afterClose=%d", m.IsOpen(), calls, afterClose)
	}
}

func TestCommitUnhandledCloses(t *testing.T) {
	afterClose := 0
	cfg := DefaultConfig()
	cfg.Hooks.AfterClose = func(*Menu) { afterClose++ }
	var got *Menu
	m, presenters := newTestMenu(cfg, 4, func(menu *Menu) bool {
		got = menu
		return false
	})
	m.Open(Point{X: 200, Y: 200})
	aim(m, 3)
	m.Tick(time.Time{})
	if m.Commit() {
		t.Fatalf("expected menu closed after an unhandled action")
	}
	if got != m {
		t.Fatalf("expected action to receive the menu")
	}
	if afterClose != 1 {
		t.Fatalf("expected after-close once, got %d", afterClose)
	}
	for i, p := range presenters {
		if p.visible {
			t.Fatalf("expected presenter %d hidden", i)
		}
	}
}

func TestCommitWithoutSelectionCloses(t *testing.T) {
	calls := 0
	m, _ := newTestMenu(DefaultConfig(), 4, func(*Menu) bool {
		calls++
		return true
	})
	m.Open(Point{X: 50, Y: 50})
	m.Tick(time.Time{})
	if m.Commit() || calls != 0 {
		t.Fatalf("expected close without running an action, calls=%d", calls)
	}
}

func TestCommitVetoedByBeforeCloseRunsNoAction(t *testing.T) {
	allowClose := false
	asked, afterClose := 0, 0
	cfg := DefaultConfig()
	cfg.Hooks.BeforeClose = func(*Menu) bool {
		asked++
		return allowClose
	}
	cfg.Hooks.AfterClose = func(*Menu) { afterClose++ }
	calls := 0
	m, _ := newTestMenu(cfg, 4, func(*Menu) bool {
		calls++
		return false
	})
	m.Open(Point{X: 200, Y: 200})
	aim(m, 0)
	m.Tick(time.Time{})
	if m.Selected() != 0 {
		t.Fatalf("expected item 0 selected, got %d", m.Selected())
	}
	if !m.Commit() || !m.IsOpen() {
		t.Fatalf("expected vetoed commit to keep the menu open")
	}
	if calls != 0 || afterClose != 0 {
		t.Fatalf("expected no action and no after-close on veto, calls=%d afterClose=%d", calls, afterClose)
	}
	allowClose = true
	asked = 0
	if m.Commit() || m.IsOpen() {
		t.Fatalf("expected commit to close once the veto is lifted")
	}
	if calls != 1 || asked != 1 || afterClose != 1 {
		t.Fatalf("expected one action, one before-close, one after-close; got calls=%d asked=%d afterClose=%d", calls, asked, afterClose)
	}
}

func TestHooksVetoTransitions(t *testing.T) {
	allowOpen, allowClose := false, false
	opened := 0
	cfg := DefaultConfig()
	cfg.Hooks = Hooks{
		BeforeOpen:  func(*Menu) bool { return allowOpen },
		AfterOpen:   func(*Menu) { opened++ },
		BeforeClose: func(*Menu) bool { return allowClose },
	}
	m, _ := newTestMenu(cfg, 2, nil)
	if m.Open(Point{}) || m.IsOpen() || opened != 0 {
		t.Fatalf("expected vetoed open to leave the menu closed")
	}
	allowOpen = true
	if !m.Open(Point{}) || opened != 1 {
		t.Fatalf("expected open once the veto is lifted")
	}
	if m.Close() || !m.IsOpen() {
		t.Fatalf("expected vetoed close to keep the menu open")
	}
	allowClose = true
	if !m.Close() || m.IsOpen() {
		t.Fatalf("expected close once the veto is lifted")
	}
}

func TestMoveBeyondSizeDismisses(t *testing.T) {
	closed := 0
	cfg := DefaultConfig()
	cfg.Hooks.BeforeClose = func(*Menu) bool { return false }
	cfg.Hooks.AfterClose = func(*Menu) { closed++ }
	m, _ := newTestMenu(cfg, 3, nil)
	m.Open(Point{X: 500, Y: 500})
	m.Move(Point{X: 500 + 159, Y: 500})
	if !m.IsOpen() {
		t.Fatalf("expected menu open within half its size")
	}
	m.Move(Point{X: 500 + 161, Y: 500})
	if m.IsOpen() || closed != 0 {
		t.Fatalf("expected forced dismissal without close hooks, open=%v closed=%d", m.IsOpen(), closed)
	}
}

func TestEdgeExtensionNeverDismisses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EdgeExtension = true
	m, _ := newTestMenu(cfg, 3, nil)
	m.Open(Point{X: 500, Y: 500})
	m.Move(Point{X: 5000, Y: 500})
	if !m.IsOpen() {
		t.Fatalf("expected edge-extension menu to stay open")
	}
	m.Tick(time.Time{})
	if m.Selected() != 0 {
		t.Fatalf("expected far cursor to select item 0, got %d", m.Selected())
	}
}

func TestEmptyMenuOpensAndTicks(t *testing.T) {
	m := New(DefaultConfig())
	if !m.Open(Point{}) {
		t.Fatalf("expected empty menu to open")
	}
	if !m.Tick(time.Time{}) || m.Selected() != None {
		t.Fatalf("expected empty ring to tick with no selection")
	}
	if m.Commit() {
		t.Fatalf("expected commit on empty ring to close")
	}
}

func TestItemsWithoutPresenterStillWeighted(t *testing.T) {
	p := &recordingPresenter{}
	items := []*Item{NewItem("a", nil, nil), NewItem("b", nil, p), NewItem("c", nil, nil)}
	m := New(DefaultConfig(), items...)
	m.Open(Point{X: 100, Y: 100})
	aim(m, 0)
	m.Tick(time.Time{})
	if m.Selected() != 0 {
		t.Fatalf("expected presenter-less item to be selectable, got %d", m.Selected())
	}
	for i, item := range items {
		if item.Weight <= 0 || item.Cell <= 0 {
			t.Fatalf("expected item %d to take part in the layout, got %+v", i, item)
		}
	}
	if p.shows != 1 {
		t.Fatalf("expected the presented item to be drawn once, got %d", p.shows)
	}
	m.Close()
	if p.hides != 1 {
		t.Fatalf("expected hide on close, got %d", p.hides)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected default config valid, got %v", err)
	}
	bad := []Config{
		{Size: 0, StartRadius: .5},
		{Size: 100, StartRadius: 0},
		{Size: 100, StartRadius: 1.5},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected %+v to be rejected", cfg)
		}
	}
}
