package agent

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/profile"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

// MotionProfile binds motion and wheel shortcuts to two-axis actions.
type MotionProfile = profile.Profile[shortcut.Shortcut, action.DOF2Action]

// ClickProfile binds click shortcuts to click actions.
type ClickProfile = profile.Profile[shortcut.ClickShortcut, action.ClickAction]

// Scene reports the dimensionality of the scene the agent drives.
// Presets read it to choose between 2D and 3D actions.
type Scene interface {
	Is3D() bool
}

// StaticScene is a Scene with a fixed mode.
type StaticScene bool

const (
	// Scene2D is a fixed two-dimensional scene.
	Scene2D StaticScene = false
	// Scene3D is a fixed three-dimensional scene.
	Scene3D StaticScene = true
)

// Is3D implements Scene.
func (s StaticScene) Is3D() bool {
	return bool(s)
}

// Agent owns the binding profiles of both targets and resolves events
// against them.
type Agent struct {
	id     string
	scene  Scene
	logger *slog.Logger

	metrics *Metrics

	motion   [len(action.Targets)]*MotionProfile
	click    [len(action.Targets)]*ClickProfile
	handlers [len(action.Targets)]Handler

	xSens float64
	ySens float64
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithHandler registers the handler that receives actions for target.
func WithHandler(target action.Target, h Handler) Option {
	return func(a *Agent) {
		a.handlers[target] = h
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(a *Agent) {
		if m != nil {
			a.metrics = m
		}
	}
}

// New creates an agent with empty profiles and unit sensitivities.
// A nil scene is treated as a 3D scene.
func New(scene Scene, opts ...Option) *Agent {
	if scene == nil {
		scene = Scene3D
	}

	a := &Agent{
		id:      uuid.NewString(),
		scene:   scene,
		logger:  slog.New(slog.DiscardHandler),
		metrics: NewMetrics(),
		xSens:   1,
		ySens:   1,
	}
	for _, t := range action.Targets {
		a.motion[t] = profile.New[shortcut.Shortcut, action.DOF2Action]()
		a.click[t] = profile.New[shortcut.ClickShortcut, action.ClickAction]()
	}

	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("agent", a.id)

	return a
}

// ID returns the unique identifier of this agent.
func (a *Agent) ID() string {
	return a.id
}

// Scene returns the scene the agent was created for.
func (a *Agent) Scene() Scene {
	return a.scene
}

// Metrics returns the agent's metrics collector.
func (a *Agent) Metrics() *Metrics {
	return a.metrics
}

// SetHandler registers (or with nil, removes) the handler for target.
func (a *Agent) SetHandler(target action.Target, h Handler) {
	a.handlers[target] = h
}

// MotionProfile returns the motion profile of target, wheel bindings included.
func (a *Agent) MotionProfile(target action.Target) *MotionProfile {
	return a.motion[target]
}

// ClickProfile returns the click profile of target.
func (a *Agent) ClickProfile(target action.Target) *ClickProfile {
	return a.click[target]
}

// XSensitivity returns the x sensitivity.
//
// Default value is 1. A higher value makes motion along x faster; a
// negative value inverts its direction.
func (a *Agent) XSensitivity() float64 {
	return a.xSens
}

// SetXSensitivity defines the XSensitivity.
func (a *Agent) SetXSensitivity(sensitivity float64) {
	a.xSens = sensitivity
}

// YSensitivity returns the y sensitivity.
//
// Default value is 1. A higher value makes motion along y faster; a
// negative value inverts its direction.
func (a *Agent) YSensitivity() float64 {
	return a.ySens
}

// SetYSensitivity defines the YSensitivity.
func (a *Agent) SetYSensitivity(sensitivity float64) {
	a.ySens = sensitivity
}

// Sensitivities returns the per-axis scale factors for events of kind.
// Only two-axis motion is scaled; the remaining slots are reserved for
// devices with up to six degrees of freedom.
func (a *Agent) Sensitivities(kind Kind) [6]float64 {
	if kind == KindMotion {
		return [6]float64{a.xSens, a.ySens, 1, 1, 1, 1}
	}
	return [6]float64{1, 1, 1, 1, 1, 1}
}

// ButtonModifiersFix returns the mask a binding for button is stored
// under: the center button implies Alt and the right button implies Meta.
// Other ids leave mask unchanged. The result is stable under repeated
// application.
func ButtonModifiersFix(mask shortcut.Modifier, id shortcut.ID) shortcut.Modifier {
	switch id {
	case shortcut.CenterID:
		return mask | shortcut.ModAlt
	case shortcut.RightID:
		return mask | shortcut.ModMeta
	default:
		return mask
	}
}
