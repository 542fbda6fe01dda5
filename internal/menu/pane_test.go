package menu

import (
	"errors"
	"testing"
)

func TestLoadLayoutMenuUsesTmuxLayouts(t *testing.T) {
	defer withStub(&layoutsFn, func() []string { return []string{"tiled", "main-vertical"} })()
	items, err := loadLayoutMenu(Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "tiled" || items[1].Label != "Main Vertical" {
		t.Fatalf("unexpected items %#v", items)
	}
}

func TestPaneResizeActionUsesStep(t *testing.T) {
	var gotDir string
	var gotAmount int
	defer withStub(&resizePaneFn, func(_, dir string, amount int) error {
		gotDir, gotAmount = dir, amount
		return nil
	})()
	msg := PaneResizeAction(Context{}, Item{ID: "up"})()
	if res, ok := msg.(ActionResult); !ok || res.Err != nil {
		t.Fatalf("unexpected result %#v", msg)
	}
	if gotDir != "up" || gotAmount != resizeStep {
		t.Fatalf("expected up by %d, got %s by %d", resizeStep, gotDir, gotAmount)
	}
}

func TestPaneActionsReportErrors(t *testing.T) {
	fail := errors.New("no pane")
	defer withStub(&splitPaneFn, func(string, bool) error { return fail })()
	defer withStub(&zoomPaneFn, func(string) error { return fail })()
	defer withStub(&killPaneFn, func(string) error { return fail })()
	for name, action := range map[string]Action{
		"split": PaneSplitAction(true),
		"zoom":  PaneZoomAction,
		"kill":  PaneKillAction,
	} {
		msg := action(Context{}, Item{})()
		if res, ok := msg.(ActionResult); !ok || !errors.Is(res.Err, fail) {
			t.Fatalf("%s: expected error result, got %#v", name, msg)
		}
	}
}

func TestLayoutAction(t *testing.T) {
	var applied string
	defer withStub(&selectLayoutFn, func(_, layout string) error {
		applied = layout
		return nil
	})()
	if msg := LayoutAction(Context{}, Item{ID: " "})(); msg.(ActionResult).Err == nil {
		t.Fatalf("expected error for blank layout")
	}
	msg := LayoutAction(Context{}, Item{ID: "tiled"})()
	if res := msg.(ActionResult); res.Err != nil || res.Info != "Applied layout tiled" || applied != "tiled" {
		t.Fatalf("unexpected result %#v (applied %q)", res, applied)
	}
}
