package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/tmux-pie-menu/internal/backend"
	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	"github.com/atomicstack/tmux-pie-menu/internal/tmux"
	"github.com/atomicstack/tmux-pie-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath    string
	Size          float64
	StartRadius   float64
	EdgeExtension bool
	ShowOnPress   bool
	RootMenu      string
	PollInterval  time.Duration
	ShowFooter    bool
	Verbose       bool
}

// PieConfig returns the ring configuration. A zero Size is passed through;
// the UI fits such rings to the terminal.
func (c Config) PieConfig() pie.Config {
	cfg := pie.DefaultConfig()
	cfg.Size = c.Size
	if c.StartRadius > 0 {
		cfg.StartRadius = c.StartRadius
	}
	cfg.EdgeExtension = c.EdgeExtension
	cfg.ShowOnPress = c.ShowOnPress
	return cfg
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	defer tmux.Shutdown()

	watcher := backend.NewWatcher(socketPath, cfg.PollInterval)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		SocketPath: socketPath,
		ClientID:   tmux.CurrentClientID(socketPath),
		Pie:        cfg.PieConfig(),
		RootMenu:   cfg.RootMenu,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	}, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
