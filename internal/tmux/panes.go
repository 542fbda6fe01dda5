package tmux

import (
	"fmt"
	"strconv"
)

var layouts = map[string]bool{
	"even-horizontal": true,
	"even-vertical":   true,
	"main-horizontal": true,
	"main-vertical":   true,
	"tiled":           true,
}

// Layouts returns the preset layout names in the order tmux cycles them.
func Layouts() []string {
	return []string{"even-horizontal", "even-vertical", "main-horizontal", "main-vertical", "tiled"}
}

func SelectLayout(socketPath, layout string) error {
	if !layouts[layout] {
		return fmt.Errorf("unknown layout %q", layout)
	}
	return Run(socketPath, "select-layout", layout)
}

func ResizePane(socketPath, direction string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	flag := ""
	switch direction {
	case "left":
		flag = "-L"
	case "right":
		flag = "-R"
	case "up":
		flag = "-U"
	case "down":
		flag = "-D"
	default:
		return fmt.Errorf("unknown direction %q", direction)
	}
	return Run(socketPath, "resize-pane", flag, strconv.Itoa(amount))
}

// SplitPane splits the current pane side by side when horizontal is set,
// otherwise one above the other.
func SplitPane(socketPath string, horizontal bool) error {
	if horizontal {
		return Run(socketPath, "split-window", "-h")
	}
	return Run(socketPath, "split-window", "-v")
}

func ZoomPane(socketPath string) error {
	return Run(socketPath, "resize-pane", "-Z")
}

func KillPane(socketPath string) error {
	return Run(socketPath, "kill-pane")
}
