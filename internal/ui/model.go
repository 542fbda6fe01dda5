package ui

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/tmux-pie-menu/internal/backend"
	"github.com/atomicstack/tmux-pie-menu/internal/data/dispatcher"
	"github.com/atomicstack/tmux-pie-menu/internal/logging/events"
	"github.com/atomicstack/tmux-pie-menu/internal/menu"
	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	"github.com/atomicstack/tmux-pie-menu/internal/state"
	"github.com/atomicstack/tmux-pie-menu/internal/theme"
	"github.com/atomicstack/tmux-pie-menu/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	SocketPath string
	ClientID   string
	// Pie is the ring configuration. A Size of zero fits the ring to the
	// terminal.
	Pie        pie.Config
	RootMenu   string
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model for the tmux pie menu.
type Model struct {
	surface  *pie.Surface
	stack    []*ring
	base     *menu.Node
	pieCfg   pie.Config
	autoOpen bool
	width    int
	height   int

	loading   bool
	pending   []tea.Cmd
	descendTo string
	errMsg    string
	infoMsg   string

	showFooter bool
	verbose    bool
	keys       keyMap
	help       help.Model

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	handlers map[reflect.Type]msgHandler
	tick     tickFunc

	registry   *menu.Registry
	bus        *command.Bus
	socketPath string
	clientID   string
	sessions   state.SessionStore
	windows    state.WindowStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI with the configured base ring. The ring
// itself is loaded by Init and opens at the terminal center once the size
// is known.
func NewModel(opts Options, watcher *backend.Watcher) *Model {
	registry := menu.BuildRegistry()
	sessions := state.NewSessionStore()
	windows := state.NewWindowStore()
	m := &Model{
		pieCfg:       opts.Pie,
		autoOpen:     true,
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		keys:         defaultKeyMap(),
		help:         help.New(),
		backend:      watcher,
		backendState: map[backend.Kind]error{},
		tick:         tickAfterInterval,
		registry:     registry,
		bus:          command.New(),
		socketPath:   opts.SocketPath,
		clientID:     opts.ClientID,
		sessions:     sessions,
		windows:      windows,
		dispatcher:   dispatcher.New(sessions, windows),
	}
	base, ok := registry.Resolve(opts.RootMenu)
	if !ok {
		base = registry.Root()
		m.errMsg = fmt.Sprintf("unknown menu %q", opts.RootMenu)
	}
	m.base = base
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadRingCmd(m.base, pie.Point{}, true)}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(ringLoadedMsg{}):     m.handleRingLoadedMsg,
		reflect.TypeOf(command.Completed{}): m.handleCompletedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		SocketPath:      m.socketPath,
		ClientID:        m.clientID,
		Sessions:        m.sessions.Entries(),
		CurrentSession:  m.sessions.Current(),
		Windows:         m.windows.Entries(),
		CurrentWindowID: m.windows.CurrentID(),
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	m.help.Width = size.Width
	events.UI.Resize(size.Width, size.Height)
	m.rebuildIdleBase()
	return m.maybeAutoOpen()
}

// rebuildIdleBase recreates the base ring at the current terminal size. A
// ring's size is fixed once built, so only a closed base ring is replaced.
func (m *Model) rebuildIdleBase() {
	if len(m.stack) != 1 || m.stack[0].pie.IsOpen() {
		return
	}
	base := m.stack[0]
	m.stack[0] = m.newRing(base.node, base.items)
	m.stack[0].center = base.center
	m.surface = pie.NewSurface(m.stack[0].pie)
}

// maybeAutoOpen opens the base ring at the center of the canvas the first
// time both the ring and the terminal size are known.
func (m *Model) maybeAutoOpen() tea.Cmd {
	if !m.autoOpen || len(m.stack) == 0 || m.width <= 0 || m.height <= 0 {
		return nil
	}
	m.autoOpen = false
	return m.openRing(m.stack[0], m.canvasCenter())
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.errMsg = err.Error()
	m.infoMsg = ""
}
