package tmux

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// FetchSessions lists every session on the server, labelled with
// TMUX_PIE_MENU_SESSION_FORMAT when set.
func FetchSessions(socketPath string) (SessionSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return SessionSnapshot{}, err
	}

	sessions, err := client.ListSessions()
	if err != nil {
		return SessionSnapshot{}, err
	}
	if len(sessions) == 0 {
		if fallback, err := fetchSessionsFallback(socketPath); err == nil {
			sessions = fallback
		}
	}
	labels := fetchSessionLabels(client, os.Getenv("TMUX_PIE_MENU_SESSION_FORMAT"))
	current := currentSessionName(client)
	attached := realAttachedClients(client)
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		label := labels[s.Name]
		if label == "" {
			label = defaultLabelForSession(s)
		}
		clients := attached[s.Name]
		out = append(out, Session{
			Name:     s.Name,
			Label:    label,
			Attached: len(clients) > 0,
			Clients:  clients,
			Current:  s.Name == current,
			Windows:  s.Windows,
		})
	}
	return SessionSnapshot{Sessions: out, Current: current}, nil
}

// FetchWindows lists every window on the server in session:index order as
// reported by tmux.
func FetchWindows(socketPath string) (WindowSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return WindowSnapshot{}, err
	}

	all, err := client.ListAllWindows()
	if err != nil {
		return WindowSnapshot{}, err
	}
	lines, err := fetchWindowLines(client, os.Getenv("TMUX_PIE_MENU_WINDOW_FORMAT"))
	if err != nil {
		lines = fallbackWindowLines(all)
	}
	byID := make(map[string]*gotmux.Window, len(all))
	for _, w := range all {
		byID[w.Id] = w
	}

	snapshot := WindowSnapshot{CurrentSession: currentSessionName(client)}
	for _, line := range lines {
		entry := Window{ID: line.displayID, Label: line.label, InternalID: line.windowID}
		if w := byID[line.windowID]; w != nil {
			entry.Session = firstSession(w)
			if entry.Session == "" {
				entry.Session = strings.TrimSpace(w.Session)
			}
			entry.Index = w.Index
			entry.Name = w.Name
			entry.Active = w.Active
			if entry.ID == "" {
				entry.ID = fmt.Sprintf("%s:%d", entry.Session, w.Index)
			}
		} else {
			entry.Session, entry.Index = splitWindowID(line.displayID)
		}
		entry.Current = entry.Session == snapshot.CurrentSession && entry.Active
		if entry.Current && snapshot.CurrentID == "" {
			snapshot.CurrentID = entry.ID
			snapshot.CurrentLabel = entry.Label
		}
		snapshot.Windows = append(snapshot.Windows, entry)
	}
	return snapshot, nil
}

func splitWindowID(id string) (string, int) {
	session, index, _ := strings.Cut(id, ":")
	idx, _ := strconv.Atoi(strings.TrimSpace(index))
	return strings.TrimSpace(session), idx
}

// fetchSessionsFallback shells out to tmux when the control-mode listing
// comes back empty, which happens while the connection is still attaching.
func fetchSessionsFallback(socketPath string) ([]*gotmux.Session, error) {
	args := append(baseArgs(socketPath), "list-sessions", "-F", "#{session_name}\t#{session_windows}\t#{session_attached}")
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return nil, err
	}
	var sessions []*gotmux.Session
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), "\t", 3)
		if len(parts) < 3 {
			continue
		}
		windows, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
		attached, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
		sessions = append(sessions, &gotmux.Session{
			Name:     strings.TrimSpace(parts[0]),
			Windows:  windows,
			Attached: attached,
		})
	}
	return sessions, nil
}

func fetchSessionLabels(client tmuxClient, envFormat string) map[string]string {
	labelExpr := defaultSessionFormat
	if expr := strings.TrimSpace(envFormat); expr != "" {
		labelExpr = expr
	}
	lines, err := client.ListSessionsFormat("#{session_name}\t" + labelExpr)
	if err != nil {
		return map[string]string{}
	}
	labels := make(map[string]string, len(lines))
	for _, line := range lines {
		name, label, _ := strings.Cut(strings.TrimSpace(line), "\t")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if label = strings.TrimSpace(label); label == "" {
			label = name
		}
		labels[name] = label
	}
	return labels
}

func defaultLabelForSession(s *gotmux.Session) string {
	label := fmt.Sprintf("%s: %d window", s.Name, s.Windows)
	if s.Windows != 1 {
		label += "s"
	}
	if s.Attached > 0 {
		label += " (attached)"
	}
	return label
}

// realAttachedClients maps session names to the non-control-mode clients
// attached to them, so our own connection never marks a session attached.
func realAttachedClients(client tmuxClient) map[string][]string {
	clients, err := client.ListClients()
	if err != nil {
		return nil
	}
	result := make(map[string][]string)
	for _, c := range clients {
		if c == nil || c.ControlMode || c.Session == "" {
			continue
		}
		result[c.Session] = append(result[c.Session], c.Name)
	}
	return result
}

func firstSession(w *gotmux.Window) string {
	if len(w.ActiveSessionsList) > 0 {
		return w.ActiveSessionsList[0]
	}
	if len(w.LinkedSessionsList) > 0 {
		return w.LinkedSessionsList[0]
	}
	return ""
}

type windowLine struct {
	windowID  string
	displayID string
	label     string
}

func fetchWindowLines(client tmuxClient, envFormat string) ([]windowLine, error) {
	labelExpr := defaultWindowFormat
	if expr := strings.TrimSpace(envFormat); expr != "" {
		labelExpr = expr
	}
	format := fmt.Sprintf("#{window_id}\t#{session_name}:#{window_index}\t#{window_index}: %s", labelExpr)
	raw, err := client.ListWindowsFormat("", "", format)
	if err != nil {
		return nil, err
	}
	result := make([]windowLine, 0, len(raw))
	for _, line := range raw {
		parts := strings.SplitN(strings.TrimSpace(line), "\t", 3)
		if len(parts) < 2 {
			continue
		}
		entry := windowLine{
			windowID:  strings.TrimSpace(parts[0]),
			displayID: strings.TrimSpace(parts[1]),
		}
		entry.label = entry.displayID
		if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
			entry.label = strings.TrimSpace(parts[2])
		}
		result = append(result, entry)
	}
	return result, nil
}

func fallbackWindowLines(windows []*gotmux.Window) []windowLine {
	lines := make([]windowLine, 0, len(windows))
	for _, w := range windows {
		session := firstSession(w)
		lines = append(lines, windowLine{
			windowID:  w.Id,
			displayID: fmt.Sprintf("%s:%d", session, w.Index),
			label:     fmt.Sprintf("%d: %s", w.Index, w.Name),
		})
	}
	return lines
}
