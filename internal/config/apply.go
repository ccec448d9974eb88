package config

import (
	"errors"
	"fmt"

	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/agent"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

// edit is a validated binding entry.
type edit struct {
	target   action.Target
	kind     agent.Kind
	shortcut shortcut.Shortcut
	clicks   int
	action   action.Action
	remove   bool
}

// kindOf infers the binding kind: click when clicks is positive, wheel
// for wheel shortcuts and motion otherwise.
func kindOf(sc shortcut.Shortcut, clicks int) agent.Kind {
	switch {
	case clicks > 0:
		return agent.KindClick
	case sc.IsWheel():
		return agent.KindWheel
	default:
		return agent.KindMotion
	}
}

func (b Binding) resolve(i int) (edit, error) {
	fail := func(field string, err error) (edit, error) {
		return edit{}, &BindingError{Index: i, Field: field, Err: err}
	}

	var e edit
	var err error

	if e.target, err = action.ParseTarget(b.Target); err != nil {
		return fail("target", err)
	}
	if e.shortcut, err = shortcut.Parse(b.Shortcut); err != nil {
		return fail("shortcut", err)
	}
	if b.Clicks < 0 {
		return fail("clicks", fmt.Errorf("negative click count %d", b.Clicks))
	}
	e.clicks = b.Clicks
	e.kind = kindOf(e.shortcut, b.Clicks)
	e.remove = b.Remove

	if e.kind == agent.KindClick && !e.shortcut.ID.IsButton() {
		return fail("shortcut", fmt.Errorf("click binding needs a button, got %q", b.Shortcut))
	}
	if e.remove {
		return e, nil
	}

	switch e.kind {
	case agent.KindClick:
		e.action, err = action.ParseClick(b.Action)
	case agent.KindWheel:
		e.action, err = action.ParseDOF1(b.Action)
	default:
		e.action, err = action.ParseDOF2(b.Action)
	}
	if err != nil {
		return fail("action", fmt.Errorf("%w for %s binding", err, e.kind))
	}

	return e, nil
}

// Validate checks the whole configuration and reports every problem found.
func (c *Config) Validate() error {
	_, err := c.compile()
	return err
}

type compiled struct {
	preset *agent.Preset
	edits  []edit
}

func (c *Config) compile() (compiled, error) {
	var (
		out  compiled
		errs []error
	)

	if c.Preset != "" {
		p, err := agent.ParsePreset(c.Preset)
		if err != nil {
			errs = append(errs, fmt.Errorf("preset: %w", err))
		} else {
			out.preset = &p
		}
	}

	for i, b := range c.Bindings {
		e, err := b.resolve(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out.edits = append(out.edits, e)
	}

	return out, errors.Join(errs...)
}

// Apply validates the configuration and then applies it to a: clearing
// existing bindings if requested, then the preset, the sensitivities and
// the binding edits in order. Nothing is changed when validation fails.
func (c *Config) Apply(a *agent.Agent) error {
	comp, err := c.compile()
	if err != nil {
		return err
	}

	if c.Clear {
		a.RemoveBindings()
	}
	if comp.preset != nil {
		if err := a.ApplyPreset(*comp.preset); err != nil {
			return err
		}
	}
	if c.Sensitivity.X != nil {
		a.SetXSensitivity(*c.Sensitivity.X)
	}
	if c.Sensitivity.Y != nil {
		a.SetYSensitivity(*c.Sensitivity.Y)
	}

	for _, e := range comp.edits {
		applyEdit(a, e)
	}

	return nil
}

// Apply validates the single binding b and applies it to a.
func (b Binding) Apply(a *agent.Agent) error {
	e, err := b.resolve(-1)
	if err != nil {
		return err
	}
	applyEdit(a, e)
	return nil
}

func applyEdit(a *agent.Agent, e edit) {
	mask, id := e.shortcut.Mask, e.shortcut.ID

	switch e.kind {
	case agent.KindClick:
		if e.remove {
			a.RemoveClickBinding(e.target, mask, id, e.clicks)
			return
		}
		a.SetClickBinding(e.target, mask, id, e.clicks, e.action.(action.ClickAction))

	case agent.KindWheel:
		if e.remove {
			a.RemoveWheelBinding(e.target, mask)
			return
		}
		a.SetWheelBinding(e.target, mask, e.action.(action.DOF1Action))

	case agent.KindMotion:
		switch {
		case e.remove && id == shortcut.NoID:
			a.RemoveGestureBinding(e.target, mask)
		case e.remove:
			a.RemoveButtonBinding(e.target, mask, id)
		case id == shortcut.NoID:
			a.SetGestureBinding(e.target, mask, e.action.(action.DOF2Action))
		default:
			a.SetButtonBinding(e.target, mask, id, e.action.(action.DOF2Action))
		}
	}
}
