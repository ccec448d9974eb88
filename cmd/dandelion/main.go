// Package main is the entry point for the dandelion binding inspector.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/remixlab/dandelion/internal/config"
	"github.com/remixlab/dandelion/internal/config/loader"
	"github.com/remixlab/dandelion/internal/config/watcher"
	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/agent"
	"github.com/remixlab/dandelion/internal/plugin/lua"
	"github.com/remixlab/dandelion/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	ConfigPath string
	ScriptPath string
	Preset     string
	TwoD       bool
	XSens      *float64
	YSens      *float64
	Watch      bool
	Dump       bool
	LogPath    string
	LogLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	scene := agent.Scene3D
	if opts.TwoD {
		scene = agent.Scene2D
	}
	a := agent.New(scene, agent.WithLogger(logger))

	if err := configure(a, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Dump {
		if err := dump(os.Stdout, a); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := inspect(ctx, a, opts, logger); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// configure applies, in order, the preset flag, the config file, the
// sensitivity flags and the script. With none of the first three the
// drag-arcball preset is used.
func configure(a *agent.Agent, opts options, logger *slog.Logger) error {
	var cfg *config.Config
	if opts.ConfigPath != "" {
		var err error
		cfg, err = config.Load(opts.ConfigPath, config.WithEnv(loader.DefaultEnvPrefix))
		if err != nil {
			return err
		}
	}
	return setup(a, opts, cfg, logger)
}

func setup(a *agent.Agent, opts options, cfg *config.Config, logger *slog.Logger) error {
	switch {
	case opts.Preset != "":
		p, err := agent.ParsePreset(opts.Preset)
		if err != nil {
			return err
		}
		if err := a.ApplyPreset(p); err != nil {
			return err
		}
	case opts.ConfigPath == "" && opts.ScriptPath == "":
		a.DragToArcball()
	}

	if cfg != nil {
		if err := cfg.Apply(a); err != nil {
			return fmt.Errorf("%s: %w", opts.ConfigPath, err)
		}
		logger.Info("config applied", "path", opts.ConfigPath, "bindings", len(cfg.Bindings))
	}

	if opts.XSens != nil {
		a.SetXSensitivity(*opts.XSens)
	}
	if opts.YSens != nil {
		a.SetYSensitivity(*opts.YSens)
	}

	if opts.ScriptPath != "" {
		if err := runScript(a, opts.ScriptPath, logger); err != nil {
			return err
		}
	}

	return nil
}

// reload rebuilds the startup configuration of a with cfg in place of the
// config file, so entries deleted from the file are unbound. a is left
// untouched on error.
func reload(a *agent.Agent, opts options, cfg *config.Config, logger *slog.Logger) error {
	fresh := agent.New(a.Scene())
	if err := setup(fresh, opts, cfg, logger); err != nil {
		return err
	}

	for _, t := range action.Targets {
		motion := a.MotionProfile(t)
		motion.RemoveBindings()
		for s, act := range fresh.MotionProfile(t).All() {
			motion.SetBinding(s, act)
		}
		click := a.ClickProfile(t)
		click.RemoveBindings()
		for s, act := range fresh.ClickProfile(t).All() {
			click.SetBinding(s, act)
		}
	}
	a.SetXSensitivity(fresh.XSensitivity())
	a.SetYSensitivity(fresh.YSensitivity())
	return nil
}

func runScript(a *agent.Agent, path string, logger *slog.Logger) error {
	state := lua.NewState(lua.WithLogger(logger.With("script", path)))
	defer state.Close()

	if err := lua.Install(state, a); err != nil {
		return err
	}
	if err := state.DoFile(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	logger.Info("script applied", "path", path)
	return nil
}

// dump writes the bindings of a as a configuration document.
func dump(w io.Writer, a *agent.Agent) error {
	out, err := config.Export(a)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// inspect runs the interactive terminal inspector until quit or ctx is done.
func inspect(ctx context.Context, a *agent.Agent, opts options, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	app := term.NewApp(screen, a, term.WithAppLogger(logger))

	if opts.Watch && opts.ConfigPath != "" {
		w, err := watcher.New(opts.ConfigPath, func(cfg *config.Config, err error) {
			postErr := app.Post(func(a *agent.Agent) error {
				if err != nil {
					return err
				}
				return reload(a, opts, cfg, logger)
			})
			if postErr != nil {
				logger.Warn("dropped config reload", "error", postErr)
			}
		},
			watcher.WithLogger(logger),
			watcher.WithLoadOptions(config.WithEnv(loader.DefaultEnvPrefix)),
		)
		if err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}
		defer w.Close()
		go func() {
			_ = w.Run(ctx)
		}()
	}

	return app.Run(ctx)
}

func newLogger(opts options) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch {
	case opts.LogPath != "":
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, handlerOpts)), func() { _ = f.Close() }, nil
	case opts.Dump:
		return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts)), func() {}, nil
	default:
		// The inspector owns the terminal.
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
}

// floatFlag returns a flag.Func setter storing into *dst.
func floatFlag(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func parseFlags() options {
	opts := options{LogLevel: "info"}
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to binding configuration (toml, yaml or json)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to binding configuration (shorthand)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Lua script run after the configuration")
	flag.StringVar(&opts.Preset, "preset", "", "Binding preset applied first (e.g. drag-arcball)")
	flag.BoolVar(&opts.TwoD, "2d", false, "Use a two-dimensional scene")
	flag.Func("xsens", "Horizontal motion sensitivity", floatFlag(&opts.XSens))
	flag.Func("ysens", "Vertical motion sensitivity", floatFlag(&opts.YSens))
	flag.BoolVar(&opts.Watch, "watch", false, "Rebuild the bindings when the configuration changes")
	flag.BoolVar(&opts.Dump, "dump", false, "Print the resulting bindings as JSON and exit")
	flag.StringVar(&opts.LogPath, "log", "", "Write logs to this file")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Dandelion - mouse binding inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: dandelion [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nPresets:\n")
		for _, p := range agent.Presets {
			fmt.Fprintf(os.Stderr, "  %s\n", p)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dandelion                          Inspect drag-arcball bindings\n")
		fmt.Fprintf(os.Stderr, "  dandelion -preset move-arcball -2d Inspect a 2D preset\n")
		fmt.Fprintf(os.Stderr, "  dandelion -c mouse.toml -watch     Inspect and live-reload a config\n")
		fmt.Fprintf(os.Stderr, "  dandelion -c mouse.toml -dump      Print the resolved bindings\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Dandelion %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
