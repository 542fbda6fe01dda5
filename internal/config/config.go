package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-pie-menu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose   bool
	ListMenus bool
}

const (
	envSocketPath  = "TMUX_PIE_MENU_SOCKET"
	envSize        = "TMUX_PIE_MENU_SIZE"
	envStartRadius = "TMUX_PIE_MENU_START_RADIUS"
	envFitts       = "TMUX_PIE_MENU_FITTS"
	envShowOnPress = "TMUX_PIE_MENU_SHOW_ON_PRESS"
	envMenu        = "TMUX_PIE_MENU_MENU"
	envPoll        = "TMUX_PIE_MENU_POLL"
	envShowFooter  = "TMUX_PIE_MENU_FOOTER"
	envVerbose     = "TMUX_PIE_MENU_VERBOSE"
	envTrace       = "TMUX_PIE_MENU_TRACE"
	envLogFile     = "TMUX_PIE_MENU_LOG_FILE"
)

const (
	defaultStartRadius  = .75
	defaultPollInterval = 1500 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-pie-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	size := fs.Float64("size", envOrFloat(env, envSize, 0), "ring size in columns (0 fits the popup)")
	startRadius := fs.Float64("start-radius", envOrFloat(env, envStartRadius, defaultStartRadius), "fraction of the final radius the open animation starts from")
	fitts := fs.Bool("fitts", envOrBool(env, envFitts, false), "let slices reach the popup edge and never dismiss on distance")
	showOnPress := fs.Bool("show-on-press", envOrBool(env, envShowOnPress, false), "open the ring on button press instead of release")
	rootMenu := fs.String("menu", envOrDefault(env, envMenu, ""), "ring to open first (fuzzy matched, e.g. window, pane, session)")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, defaultPollInterval), "tmux polling interval for session and window rings")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for sticky actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	list := fs.Bool("list", false, "print the ring catalog and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			SocketPath:    *socket,
			Size:          *size,
			StartRadius:   *startRadius,
			EdgeExtension: *fitts,
			ShowOnPress:   *showOnPress,
			RootMenu:      *rootMenu,
			PollInterval:  *poll,
			ShowFooter:    *footer,
			Verbose:       *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:   *verbose,
			ListMenus: *list,
		},
		Flags: map[string]string{
			"socket":       *socket,
			"size":         strconv.FormatFloat(*size, 'g', -1, 64),
			"start-radius": strconv.FormatFloat(*startRadius, 'g', -1, 64),
			"fitts":        strconv.FormatBool(*fitts),
			"showOnPress":  strconv.FormatBool(*showOnPress),
			"menu":         *rootMenu,
			"poll":         poll.String(),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects ring settings the layout cannot work with. A size of zero
// is allowed and means the ring is fitted to the popup.
func Validate(cfg Config) error {
	if cfg.App.Size < 0 {
		return fmt.Errorf("size must be >= 0 (got %g)", cfg.App.Size)
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be > 0 (got %s)", cfg.App.PollInterval)
	}
	ring := cfg.App.PieConfig()
	if ring.Size == 0 {
		ring.Size = 1
	}
	return ring.Validate()
}
