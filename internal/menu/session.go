package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-pie-menu/internal/tmux"
)

var detachClientFn = tmux.DetachClient

func loadSessionMenu(ctx Context) ([]Item, error) {
	items := make([]Item, 0, len(ctx.Sessions))
	for _, entry := range ctx.Sessions {
		if entry.Current || entry.Name == ctx.CurrentSession {
			continue
		}
		if len(items) == maxDynamicItems {
			break
		}
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			label = entry.Name
		}
		items = append(items, Item{ID: entry.Name, Label: label})
	}
	return items, nil
}

func SessionSwitchAction(ctx Context, item Item) tea.Cmd {
	target := strings.TrimSpace(item.ID)
	if target == "" {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("invalid session target")} }
	}
	return func() tea.Msg {
		if err := switchClientFn(ctx.SocketPath, ctx.ClientID, target); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Switched to %s", target)}
	}
}

func DetachAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		if err := detachClientFn(ctx.SocketPath, ctx.ClientID); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: "Detached"}
	}
}
