package tmux

import (
	"os"
	"strings"
	"sync"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var (
	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string
)

// dialTmux returns the shared control-mode connection for socketPath,
// replacing it when a different socket is requested.
func dialTmux(socketPath string) (tmuxClient, error) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil && cachedSocket == socketPath {
		return cachedClient, nil
	}
	if cachedClient != nil {
		_ = cachedClient.Close()
		cachedClient = nil
	}
	var (
		client *gotmux.Tmux
		err    error
	)
	if socketPath != "" {
		client, err = gotmux.NewTmux(socketPath)
	} else {
		client, err = gotmux.DefaultTmux()
	}
	if err != nil {
		return nil, err
	}
	cachedClient = client
	cachedSocket = socketPath
	return client, nil
}

// Shutdown closes the shared connection, if any.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil {
		_ = cachedClient.Close()
	}
	cachedClient = nil
	cachedSocket = ""
}

// CurrentClientID attempts to detect the client that launched the popup so
// switch-client targets the visible tmux client instead of the control-mode
// connection.
func CurrentClientID(socketPath string) string {
	client, err := newTmux(socketPath)
	if err != nil {
		return ""
	}
	session := currentSessionName(client)
	if session == "" {
		return ""
	}
	clients, err := client.ListClients()
	if err != nil {
		return ""
	}
	for _, c := range clients {
		if c == nil || c.ControlMode || strings.TrimSpace(c.Session) != session {
			continue
		}
		if isValidClientName(c.Name) {
			return c.Name
		}
	}
	return ""
}

// isValidClientName rejects values that cannot be a tmux client name, such as
// status-line text captured by a misconfigured format.
func isValidClientName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\n[]")
}

func currentSessionName(client tmuxClient) string {
	if target := sessionTarget(); target != "" {
		if name, err := client.DisplayMessage(target, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if clients, err := client.ListClients(); err == nil {
		for _, c := range clients {
			if c != nil && !c.ControlMode && c.Session != "" {
				return c.Session
			}
		}
	}
	return ""
}

// sessionTarget names the pane or session the popup was launched from.
// Inside display-popup TMUX_PANE is unset, but $TMUX still carries the
// session id as its third field.
func sessionTarget() string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		return pane
	}
	parts := strings.Split(os.Getenv("TMUX"), ",")
	if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
		return "$" + strings.TrimSpace(parts[2])
	}
	return ""
}
