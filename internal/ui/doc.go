// Package ui contains the Bubble Tea program that hosts the pie menu inside a
// tmux popup. The Model type orchestrates messages; the pie package owns
// layout, selection, and the open/close lifecycle.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Mouse events are mapped into pointer space (columns, rows doubled) and
//     dispatched through a pie.Surface, which owns the single open ring.
//     afterDispatch (navigation.go) then looks at what the event did: a
//     descend request, queued actions, an empty release, or a dismissal.
//   - Every open ring is ticked at pie.TickInterval. Ticks carry the menu and
//     its open generation so stale ticks are dropped.
//
// State ownership:
//   - The drill-down stack holds one ring per level. Only the top ring is ever
//     open; descending closes the parent and opens the child at the same
//     center, ascending does the reverse.
//   - Session and window stores are provided by internal/state and kept in
//     sync by the dispatcher so dynamic rings always see current tmux data.
//   - Actions run asynchronously through the internal/ui/command bus, whose
//     Completed message tells the model whether to quit or keep a sticky ring
//     open.
//
// Backend interactions:
//   - A backend.Watcher streams tmux snapshots; applyBackendEvent refreshes
//     the stores and rebuilds any ring on the stack whose entries changed.
package ui
