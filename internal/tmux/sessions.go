package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
	"github.com/atomicstack/tmux-pie-menu/internal/logging/events"
)

// SwitchClient points clientID (or, when it is not a usable client name,
// whichever client tmux picks) at the target session.
func SwitchClient(socketPath, clientID, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("session target required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	opts := &gotmux.SwitchClientOptions{TargetSession: target}
	if id := strings.TrimSpace(clientID); isValidClientName(id) {
		opts.TargetClient = id
	}
	events.Tmux.SwitchClient(target)
	return client.SwitchClient(opts)
}

func DetachClient(socketPath, clientID string) error {
	args := []string{"detach-client"}
	if id := strings.TrimSpace(clientID); isValidClientName(id) {
		args = append(args, "-t", id)
	}
	return Run(socketPath, args...)
}

func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_PIE_MENU_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
