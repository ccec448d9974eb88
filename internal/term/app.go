package term

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/remixlab/dandelion/internal/input/agent"
	"github.com/remixlab/dandelion/internal/input/mouse"
)

// Task is work run on the event loop with exclusive access to the agent.
type Task func(a *agent.Agent) error

type quitSignal struct{}

// App is the interactive inspector: it feeds terminal mouse input through
// the normalizer into the agent and shows what each target receives.
type App struct {
	screen tcell.Screen
	agent  *agent.Agent
	input  *Input
	norm   *mouse.Normalizer
	view   *View
	logger *slog.Logger
}

// AppOption configures an App.
type AppOption func(*App)

// WithAppLogger sets the logger.
func WithAppLogger(logger *slog.Logger) AppOption {
	return func(app *App) {
		if logger != nil {
			app.logger = logger
		}
	}
}

// WithMouseConfig sets the normalizer configuration.
func WithMouseConfig(cfg mouse.Config) AppOption {
	return func(app *App) {
		app.norm = mouse.NewNormalizer(cfg)
	}
}

// WithHistory sets the number of lines the view keeps.
func WithHistory(n int) AppOption {
	return func(app *App) {
		app.view = NewView(app.screen, n)
	}
}

// NewApp creates an inspector for a drawing to screen. The screen must
// already be initialized.
func NewApp(screen tcell.Screen, a *agent.Agent, opts ...AppOption) *App {
	app := &App{
		screen: screen,
		agent:  a,
		input:  NewInput(),
		norm:   mouse.NewNormalizer(mouse.DefaultConfig()),
		view:   NewView(screen, DefaultHistory),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// View returns the dispatch view.
func (app *App) View() *View {
	return app.view
}

// Post schedules fn on the event loop. It is safe to call from any
// goroutine.
func (app *App) Post(fn Task) error {
	return app.screen.PostEvent(tcell.NewEventInterrupt(fn))
}

// Run processes screen events until the user quits or ctx is done.
func (app *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
	})
	defer stop()

	app.refresh()
	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !app.HandleEvent(ev) {
			return ctx.Err()
		}
	}
}

// HandleEvent processes one screen event and redraws. It returns false
// when the loop should stop.
func (app *App) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		app.handleMouse(e)

	case *tcell.EventKey:
		if !app.handleKey(e) {
			return false
		}

	case *tcell.EventResize:
		app.screen.Sync()

	case *tcell.EventInterrupt:
		switch data := e.Data().(type) {
		case quitSignal:
			return false
		case Task:
			if err := data(app.agent); err != nil {
				app.logger.Error("posted task failed", "error", err)
				app.view.SetMessage(err.Error())
			} else {
				app.view.SetMessage("")
			}
		}
	}

	app.refresh()
	return true
}

func (app *App) handleMouse(e *tcell.EventMouse) {
	for _, me := range app.input.Translate(e) {
		ev, ok := app.norm.Normalize(me)
		if !ok {
			continue
		}
		app.view.Record(ev, app.agent.Handle(ev))
	}
}

func (app *App) handleKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := e.Rune(); {
	case r == 'q':
		return false
	case r == 'c':
		app.view.Clear()
	case r == 'r':
		app.input.Reset()
		app.norm.Reset()
		app.agent.Metrics().Reset()
		app.view.Clear()
	case r >= '1' && int(r-'1') < len(agent.Presets):
		p := agent.Presets[r-'1']
		if err := app.agent.ApplyPreset(p); err != nil {
			app.view.SetMessage(err.Error())
			break
		}
		app.view.SetMessage("preset " + p.String())
	}
	return true
}

func (app *App) refresh() {
	app.view.SetStatus(app.status())
	app.view.Draw()
}

func (app *App) status() string {
	snap := app.agent.Metrics().Snapshot()
	mode := "2d"
	if app.agent.Scene().Is3D() {
		mode = "3d"
	}
	return fmt.Sprintf(" dandelion %s  sens %.2g,%.2g  events %d  dispatched %d  misses %d  shadowed %d",
		mode, app.agent.XSensitivity(), app.agent.YSensitivity(),
		snap.EventsTotal(), snap.Dispatched, snap.Misses, snap.Shadowed)
}
