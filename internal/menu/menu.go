package menu

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Item is one entry in a loaded menu. ID addresses the entry within its
// node; Label is what the ring shows.
type Item struct {
	ID    string
	Label string
}

// Context carries runtime data needed by loaders and actions.
type Context struct {
	SocketPath      string
	ClientID        string
	Sessions        []SessionEntry
	CurrentSession  string
	Windows         []WindowEntry
	CurrentWindowID string
}

// WindowEntry represents a tmux window reference for menu loaders.
type WindowEntry struct {
	ID      string
	Label   string
	Name    string
	Session string
	Index   int
	Current bool
}

// SessionEntry represents a tmux session reference for menu loaders.
type SessionEntry struct {
	Name     string
	Label    string
	Attached bool
	Current  bool
	Windows  int
}

// Loader populates a menu's entries on demand.
type Loader func(Context) ([]Item, error)

// Action runs a committed entry. The returned command produces an
// ActionResult.
type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}

// maxDynamicItems bounds loader output; a ring with more slices than this
// is unreadable at terminal resolution.
const maxDynamicItems = 12

func rootItems() []Item {
	return menuItemsFromIDs([]string{"window", "pane", "layout", "session", "new-window", "detach"})
}

func loadWindowMenu(Context) ([]Item, error) {
	return menuItemsFromIDs([]string{"next", "previous", "last", "new", "switch"}), nil
}

func loadPaneMenu(Context) ([]Item, error) {
	return menuItemsFromIDs([]string{"split-h", "split-v", "zoom", "kill", "resize"}), nil
}

func menuItemsFromIDs(ids []string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Label: prettyLabel(id)})
	}
	return items
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
