package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-pie-menu/internal/tmux"
)

const resizeStep = 5

var (
	splitPaneFn    = tmux.SplitPane
	zoomPaneFn     = tmux.ZoomPane
	killPaneFn     = tmux.KillPane
	resizePaneFn   = tmux.ResizePane
	selectLayoutFn = tmux.SelectLayout
	layoutsFn      = tmux.Layouts
)

func loadPaneResizeMenu(Context) ([]Item, error) {
	// ring order runs clockwise from the right
	return menuItemsFromIDs([]string{"right", "down", "left", "up"}), nil
}

func loadLayoutMenu(Context) ([]Item, error) {
	return menuItemsFromIDs(layoutsFn()), nil
}

func PaneSplitAction(horizontal bool) Action {
	return func(ctx Context, _ Item) tea.Cmd {
		return func() tea.Msg {
			if err := splitPaneFn(ctx.SocketPath, horizontal); err != nil {
				return ActionResult{Err: err}
			}
			return ActionResult{Info: "Split pane"}
		}
	}
}

func PaneZoomAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		if err := zoomPaneFn(ctx.SocketPath); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: "Toggled zoom"}
	}
}

func PaneKillAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		if err := killPaneFn(ctx.SocketPath); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: "Killed pane"}
	}
}

func PaneResizeAction(ctx Context, item Item) tea.Cmd {
	direction := strings.TrimSpace(item.ID)
	return func() tea.Msg {
		if err := resizePaneFn(ctx.SocketPath, direction, resizeStep); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Resized pane %s", direction)}
	}
}

func LayoutAction(ctx Context, item Item) tea.Cmd {
	layout := strings.TrimSpace(item.ID)
	if layout == "" {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("invalid layout")} }
	}
	return func() tea.Msg {
		if err := selectLayoutFn(ctx.SocketPath, layout); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Applied layout %s", layout)}
	}
}
