package tmux

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-pie-menu/internal/logging/events"
)

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

// Run executes a tmux command line against socketPath with the tmux binary.
func Run(socketPath string, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("tmux command required")
	}
	events.Tmux.Run(args)
	full := append(baseArgs(socketPath), args...)
	if err := runExecCommand("tmux", full...).Run(); err != nil {
		return fmt.Errorf("tmux %s: %w", args[0], err)
	}
	return nil
}
