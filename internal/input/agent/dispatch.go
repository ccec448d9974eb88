package agent

import (
	"slices"
	"time"

	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

// Kind is the kind of a normalized input event.
type Kind uint8

const (
	// KindMotion is two-axis pointer motion, with or without a button held.
	KindMotion Kind = iota
	// KindWheel is one-axis wheel motion.
	KindWheel
	// KindClick is a discrete button click.
	KindClick
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMotion:
		return "motion"
	case KindWheel:
		return "wheel"
	case KindClick:
		return "click"
	default:
		return "unknown"
	}
}

// Event is a normalized input event.
type Event struct {
	// Kind is the event kind.
	Kind Kind

	// ID is the button held during motion (shortcut.NoID for a plain
	// gesture) or the clicked button. Wheel events always use
	// shortcut.WheelID regardless of this field.
	ID shortcut.ID

	// Modifiers are the keyboard modifiers reported by the host.
	Modifiers shortcut.Modifier

	// Clicks is the accumulated click count of a click event.
	Clicks int

	// Delta is the raw motion: two values for motion, one for the wheel.
	Delta []float64
}

// Shortcut returns the motion shortcut the event resolves through.
func (e Event) Shortcut() shortcut.Shortcut {
	if e.Kind == KindWheel {
		return shortcut.New(e.Modifiers, shortcut.WheelID)
	}
	return shortcut.New(ButtonModifiersFix(e.Modifiers, e.ID), e.ID)
}

// ClickShortcut returns the click shortcut the event resolves through.
func (e Event) ClickShortcut() shortcut.ClickShortcut {
	return shortcut.NewClick(ButtonModifiersFix(e.Modifiers, e.ID), e.ID, e.Clicks)
}

// Dispatch is an action resolved for one target.
type Dispatch struct {
	Target action.Target
	Action action.Action
	// Delta is the event delta, scaled by the sensitivities for motion.
	Delta []float64
}

// Handler applies resolved actions to a target.
type Handler interface {
	HandleAction(d Dispatch)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(d Dispatch)

// HandleAction calls f(d).
func (f HandlerFunc) HandleAction(d Dispatch) {
	f(d)
}

// Handle resolves ev against the profiles of every target, forwards each
// resolved action to the target's handler and returns the dispatches in
// target order. Targets without a matching binding, or whose binding is
// the null action, are skipped.
func (a *Agent) Handle(ev Event) []Dispatch {
	start := time.Now()
	a.metrics.RecordEvent(ev.Kind)

	var out []Dispatch
	for _, t := range action.Targets {
		act, ok := a.resolve(t, ev)
		if !ok {
			a.metrics.RecordMiss()
			continue
		}
		if act.IsNull() {
			a.metrics.RecordShadowed()
			a.logger.Debug("shortcut shadowed", "target", t, "kind", ev.Kind)
			continue
		}

		d := Dispatch{
			Target: t,
			Action: act,
			Delta:  a.scale(ev),
		}
		a.logger.Debug("dispatch", "target", t, "kind", ev.Kind, "action", act)
		if h := a.handlers[t]; h != nil {
			h.HandleAction(d)
		}
		out = append(out, d)
		a.metrics.RecordDispatch(time.Since(start))
	}

	return out
}

// Resolve returns the action target would receive for ev without
// dispatching it. A null binding is returned with ok set.
func (a *Agent) Resolve(target action.Target, ev Event) (action.Action, bool) {
	return a.resolve(target, ev)
}

func (a *Agent) resolve(t action.Target, ev Event) (action.Action, bool) {
	switch ev.Kind {
	case KindMotion:
		act, ok := a.motion[t].Action(ev.Shortcut())
		if !ok {
			return nil, false
		}
		return act, true

	case KindWheel:
		act, ok := a.motion[t].Action(ev.Shortcut())
		if !ok {
			return nil, false
		}
		dof1, ok := act.DOF1()
		if !ok {
			a.logger.Debug("wheel binding without one-axis form", "target", t, "action", act)
			return nil, false
		}
		return dof1, true

	case KindClick:
		act, ok := a.click[t].Action(ev.ClickShortcut())
		if !ok {
			return nil, false
		}
		return act, true
	}

	return nil, false
}

// scale applies the sensitivities to the event delta.
func (a *Agent) scale(ev Event) []float64 {
	out := slices.Clone(ev.Delta)
	if ev.Kind != KindMotion {
		return out
	}
	sens := a.Sensitivities(ev.Kind)
	for i := range min(len(out), len(sens)) {
		out[i] *= sens[i]
	}
	return out
}
