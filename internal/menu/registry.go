package menu

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Node represents a menu definition within the registry tree. A node with a
// Loader opens as its own ring; a node with only an Action is a leaf of its
// parent's ring.
type Node struct {
	ID       string
	Glyph    string
	Loader   Loader
	Action   Action
	Children map[string]*Node
	// Sticky menus stay open after a commit so the entry can be repeated.
	Sticky bool
}

// Submenu reports whether selecting the node opens another ring.
func (n *Node) Submenu() bool {
	return n != nil && n.Loader != nil
}

// Registry exposes lookup utilities for menu definitions.
type Registry struct {
	root  *Node
	nodes map[string]*Node
}

func definitions() map[string]*Node {
	return map[string]*Node{
		"root":            {Loader: func(Context) ([]Item, error) { return rootItems(), nil }},
		"window":          {Glyph: "▣", Loader: loadWindowMenu},
		"window:next":     {Action: WindowStepAction("next")},
		"window:previous": {Action: WindowStepAction("previous")},
		"window:last":     {Action: WindowStepAction("last")},
		"window:new":      {Action: WindowNewAction},
		"window:switch":   {Glyph: "⇄", Loader: loadWindowSwitchMenu, Action: WindowSwitchAction},
		"pane":            {Glyph: "◫", Loader: loadPaneMenu},
		"pane:split-h":    {Action: PaneSplitAction(true)},
		"pane:split-v":    {Action: PaneSplitAction(false)},
		"pane:zoom":       {Action: PaneZoomAction},
		"pane:kill":       {Action: PaneKillAction},
		"pane:resize":     {Glyph: "⇔", Loader: loadPaneResizeMenu, Action: PaneResizeAction, Sticky: true},
		"layout":          {Glyph: "▦", Loader: loadLayoutMenu, Action: LayoutAction},
		"session":         {Glyph: "◉", Loader: loadSessionMenu, Action: SessionSwitchAction},
		"new-window":      {Action: WindowNewAction},
		"detach":          {Action: DetachAction},
	}
}

// BuildRegistry constructs the registry from the static menu definitions.
func BuildRegistry() *Registry {
	return NewRegistry(definitions())
}

// NewRegistry links the given nodes, keyed by ID, into a tree. Parents are
// derived from the ID prefix before the last colon; "root" is the top.
func NewRegistry(nodes map[string]*Node) *Registry {
	for id, node := range nodes {
		node.ID = id
		node.Children = make(map[string]*Node)
	}
	for id, node := range nodes {
		if id == "root" {
			continue
		}
		parentID, key := parentKey(id)
		if parent, ok := nodes[parentID]; ok {
			parent.Children[key] = node
		}
	}
	return &Registry{root: nodes["root"], nodes: nodes}
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Child resolves a child node under the given parent for the provided key.
func (r *Registry) Child(parentID, key string) (*Node, bool) {
	parent, ok := r.nodes[parentID]
	if !ok {
		return nil, false
	}
	node, ok := parent.Children[key]
	return node, ok
}

// Menus lists the IDs of every node that opens as a ring, sorted.
func (r *Registry) Menus() []string {
	ids := make([]string, 0, len(r.nodes))
	for id, node := range r.nodes {
		if node.Submenu() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Resolve finds the ring named by a user-supplied string: an exact ID first,
// then the closest fuzzy match.
func (r *Registry) Resolve(name string) (*Node, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r.root, true
	}
	if node, ok := r.nodes[name]; ok && node.Submenu() {
		return node, true
	}
	ids := r.Menus()
	ranks := fuzzy.RankFindFold(name, ids)
	if len(ranks) == 0 {
		return nil, false
	}
	sort.Stable(ranks)
	return r.nodes[ranks[0].Target], true
}

// Selection describes what committing an entry should do.
type Selection struct {
	// Descend names the ring to open in place of the current one.
	Descend string
	Action  Action
	Sticky  bool
}

// Select resolves an entry of the ring nodeID. Child nodes win over the
// ring's own action.
func (r *Registry) Select(nodeID string, item Item) (Selection, bool) {
	parent, ok := r.nodes[nodeID]
	if !ok {
		return Selection{}, false
	}
	if child, ok := parent.Children[item.ID]; ok {
		if child.Submenu() {
			return Selection{Descend: child.ID}, true
		}
		if child.Action != nil {
			return Selection{Action: child.Action, Sticky: child.Sticky}, true
		}
	}
	if parent.Action != nil {
		return Selection{Action: parent.Action, Sticky: parent.Sticky}, true
	}
	return Selection{}, false
}

func parentKey(id string) (string, string) {
	if id == "" {
		return "root", ""
	}
	if !strings.Contains(id, ":") {
		return "root", id
	}
	idx := strings.LastIndex(id, ":")
	return id[:idx], id[idx+1:]
}
