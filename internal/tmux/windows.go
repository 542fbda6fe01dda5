package tmux

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-pie-menu/internal/logging/events"
)

func SelectWindow(socketPath, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("window target required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	events.Tmux.SelectWindow(target)
	return client.SelectWindow(target)
}

// StepWindow moves to the next, previous, or last-used window.
func StepWindow(socketPath, direction string) error {
	var cmd string
	switch direction {
	case "next":
		cmd = "next-window"
	case "previous":
		cmd = "previous-window"
	case "last":
		cmd = "last-window"
	default:
		return fmt.Errorf("unknown window direction %q", direction)
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	events.Tmux.Run([]string{cmd})
	_, err = client.Command(cmd)
	return err
}

func NewWindow(socketPath string) error {
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	events.Tmux.Run([]string{"new-window"})
	_, err = client.Command("new-window")
	return err
}
