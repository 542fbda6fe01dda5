package menu

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-pie-menu/internal/tmux"
)

var (
	switchClientFn = tmux.SwitchClient
	selectWindowFn = tmux.SelectWindow
	stepWindowFn   = tmux.StepWindow
	newWindowFn    = tmux.NewWindow
)

func loadWindowSwitchMenu(ctx Context) ([]Item, error) {
	return WindowSwitchItems(ctx), nil
}

// WindowSwitchItems lists every window except the current one, current
// session first.
func WindowSwitchItems(ctx Context) []Item {
	ordered := make([]WindowEntry, 0, len(ctx.Windows))
	for _, entry := range ctx.Windows {
		if entry.Current || entry.ID == ctx.CurrentWindowID {
			continue
		}
		ordered = append(ordered, entry)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if (a.Session == ctx.CurrentSession) != (b.Session == ctx.CurrentSession) {
			return a.Session == ctx.CurrentSession
		}
		if a.Session != b.Session {
			return a.Session < b.Session
		}
		return a.Index < b.Index
	})
	if len(ordered) > maxDynamicItems {
		ordered = ordered[:maxDynamicItems]
	}
	items := make([]Item, 0, len(ordered))
	for _, entry := range ordered {
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			label = entry.ID
		}
		if entry.Session != ctx.CurrentSession && entry.Session != "" {
			label = entry.Session + "/" + label
		}
		items = append(items, Item{ID: entry.ID, Label: label})
	}
	return items
}

func WindowSwitchAction(ctx Context, item Item) tea.Cmd {
	windowID := item.ID
	session, _, ok := strings.Cut(windowID, ":")
	if !ok || session == "" {
		err := fmt.Errorf("invalid window id: %s", windowID)
		return func() tea.Msg { return ActionResult{Err: err} }
	}
	label := item.Label
	return func() tea.Msg {
		if session != ctx.CurrentSession {
			if err := switchClientFn(ctx.SocketPath, ctx.ClientID, session); err != nil {
				return ActionResult{Err: err}
			}
		}
		if err := selectWindowFn(ctx.SocketPath, windowID); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Switched to %s", label)}
	}
}

func WindowStepAction(direction string) Action {
	return func(ctx Context, _ Item) tea.Cmd {
		return func() tea.Msg {
			if err := stepWindowFn(ctx.SocketPath, direction); err != nil {
				return ActionResult{Err: err}
			}
			return ActionResult{Info: fmt.Sprintf("Moved to %s window", direction)}
		}
	}
}

func WindowNewAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		if err := newWindowFn(ctx.SocketPath); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: "Created window"}
	}
}
