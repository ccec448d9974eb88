package agent

import (
	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

// Gestures: pointer motion without a button

// SetGestureBinding binds the button-less mask shortcut of target to act.
func (a *Agent) SetGestureBinding(target action.Target, mask shortcut.Modifier, act action.DOF2Action) {
	a.motion[target].SetBinding(shortcut.New(mask, shortcut.NoID), act)
}

// RemoveGestureBinding removes the button-less mask shortcut of target.
func (a *Agent) RemoveGestureBinding(target action.Target, mask shortcut.Modifier) {
	a.motion[target].RemoveBinding(shortcut.New(mask, shortcut.NoID))
}

// HasGestureBinding returns true if the button-less mask shortcut of target is bound.
func (a *Agent) HasGestureBinding(target action.Target, mask shortcut.Modifier) bool {
	return a.motion[target].HasBinding(shortcut.New(mask, shortcut.NoID))
}

// GestureAction returns the action bound to the button-less mask shortcut of target.
func (a *Agent) GestureAction(target action.Target, mask shortcut.Modifier) (action.DOF2Action, bool) {
	return a.motion[target].Action(shortcut.New(mask, shortcut.NoID))
}

// Buttons: pointer motion with a button held

func buttonShortcut(mask shortcut.Modifier, button shortcut.ID) shortcut.Shortcut {
	return shortcut.New(ButtonModifiersFix(mask, button), button)
}

// SetButtonBinding binds the mask-button shortcut of target to act.
func (a *Agent) SetButtonBinding(target action.Target, mask shortcut.Modifier, button shortcut.ID, act action.DOF2Action) {
	a.motion[target].SetBinding(buttonShortcut(mask, button), act)
}

// RemoveButtonBinding removes the mask-button shortcut of target.
func (a *Agent) RemoveButtonBinding(target action.Target, mask shortcut.Modifier, button shortcut.ID) {
	a.motion[target].RemoveBinding(buttonShortcut(mask, button))
}

// HasButtonBinding returns true if the mask-button shortcut of target is bound.
func (a *Agent) HasButtonBinding(target action.Target, mask shortcut.Modifier, button shortcut.ID) bool {
	return a.motion[target].HasBinding(buttonShortcut(mask, button))
}

// ButtonAction returns the action bound to the mask-button shortcut of target.
func (a *Agent) ButtonAction(target action.Target, mask shortcut.Modifier, button shortcut.ID) (action.DOF2Action, bool) {
	return a.motion[target].Action(buttonShortcut(mask, button))
}

// Wheel

// SetWheelBinding binds the mask-wheel shortcut of target to act. The
// action is stored in its two-axis form in the motion profile.
func (a *Agent) SetWheelBinding(target action.Target, mask shortcut.Modifier, act action.DOF1Action) {
	a.motion[target].SetBinding(shortcut.New(mask, shortcut.WheelID), act.DOF2())
}

// RemoveWheelBinding removes the mask-wheel shortcut of target.
func (a *Agent) RemoveWheelBinding(target action.Target, mask shortcut.Modifier) {
	a.motion[target].RemoveBinding(shortcut.New(mask, shortcut.WheelID))
}

// HasWheelBinding returns true if the mask-wheel shortcut of target is bound.
func (a *Agent) HasWheelBinding(target action.Target, mask shortcut.Modifier) bool {
	return a.motion[target].HasBinding(shortcut.New(mask, shortcut.WheelID))
}

// WheelAction returns the one-axis action bound to the mask-wheel shortcut
// of target. ok is false when nothing is bound or the bound two-axis
// action has no one-axis form.
func (a *Agent) WheelAction(target action.Target, mask shortcut.Modifier) (action.DOF1Action, bool) {
	act, ok := a.motion[target].Action(shortcut.New(mask, shortcut.WheelID))
	if !ok {
		return action.DOF1Null, false
	}
	return act.DOF1()
}

// IsWheelActionBound returns true if act is bound to any wheel shortcut of target.
func (a *Agent) IsWheelActionBound(target action.Target, act action.DOF1Action) bool {
	want := act.DOF2()
	for s, v := range a.motion[target].All() {
		if s.IsWheel() && v == want {
			return true
		}
	}
	return false
}

// Clicks

func clickShortcut(mask shortcut.Modifier, button shortcut.ID, clicks int) shortcut.ClickShortcut {
	return shortcut.NewClick(ButtonModifiersFix(mask, button), button, clicks)
}

// SetClickBinding binds the mask-button-clicks shortcut of target to act.
func (a *Agent) SetClickBinding(target action.Target, mask shortcut.Modifier, button shortcut.ID, clicks int, act action.ClickAction) {
	a.click[target].SetBinding(clickShortcut(mask, button, clicks), act)
}

// RemoveClickBinding removes the mask-button-clicks shortcut of target.
func (a *Agent) RemoveClickBinding(target action.Target, mask shortcut.Modifier, button shortcut.ID, clicks int) {
	a.click[target].RemoveBinding(clickShortcut(mask, button, clicks))
}

// HasClickBinding returns true if the mask-button-clicks shortcut of target is bound.
func (a *Agent) HasClickBinding(target action.Target, mask shortcut.Modifier, button shortcut.ID, clicks int) bool {
	return a.click[target].HasBinding(clickShortcut(mask, button, clicks))
}

// ClickAction returns the action bound to the mask-button-clicks shortcut of target.
func (a *Agent) ClickAction(target action.Target, mask shortcut.Modifier, button shortcut.ID, clicks int) (action.ClickAction, bool) {
	return a.click[target].Action(clickShortcut(mask, button, clicks))
}

// Bulk removal

// RemoveMotionBindings removes the gesture and button bindings of target.
// Wheel bindings are kept.
func (a *Agent) RemoveMotionBindings(target action.Target) {
	a.motion[target].Retain(func(s shortcut.Shortcut, _ action.DOF2Action) bool {
		return s.IsWheel()
	})
}

// RemoveWheelBindings removes every wheel binding of target.
func (a *Agent) RemoveWheelBindings(target action.Target) {
	a.motion[target].Retain(func(s shortcut.Shortcut, _ action.DOF2Action) bool {
		return !s.IsWheel()
	})
}

// RemoveClickBindings removes every click binding of target.
func (a *Agent) RemoveClickBindings(target action.Target) {
	a.click[target].RemoveBindings()
}

// RemoveTargetBindings removes the motion, wheel and click bindings of target.
func (a *Agent) RemoveTargetBindings(target action.Target) {
	a.RemoveMotionBindings(target)
	a.RemoveClickBindings(target)
	a.RemoveWheelBindings(target)
}

// RemoveEyeBindings removes every binding of the eye.
func (a *Agent) RemoveEyeBindings() {
	a.RemoveTargetBindings(action.Eye)
}

// RemoveFrameBindings removes every binding of the frame.
func (a *Agent) RemoveFrameBindings() {
	a.RemoveTargetBindings(action.Frame)
}

// RemoveBindings removes every binding of both targets.
func (a *Agent) RemoveBindings() {
	a.RemoveFrameBindings()
	a.RemoveEyeBindings()
}

// Listing

// Binding describes one entry of a target's profiles.
type Binding struct {
	Target   action.Target
	Kind     Kind
	Shortcut shortcut.Shortcut
	// Clicks is set for click bindings only.
	Clicks int
	Action action.Action
}

// Bindings lists the bindings of target: motion first, then wheel, then
// clicks, each ordered by shortcut.
func (a *Agent) Bindings(target action.Target) []Binding {
	var motion, wheel []Binding

	mp := a.motion[target]
	for _, s := range mp.Shortcuts(shortcut.Shortcut.Compare) {
		act, _ := mp.Action(s)
		if !s.IsWheel() {
			motion = append(motion, Binding{Target: target, Kind: KindMotion, Shortcut: s, Action: act})
			continue
		}
		b := Binding{Target: target, Kind: KindWheel, Shortcut: s, Action: act}
		if dof1, ok := act.DOF1(); ok {
			b.Action = dof1
		}
		wheel = append(wheel, b)
	}

	out := append(motion, wheel...)

	cp := a.click[target]
	for _, s := range cp.Shortcuts(shortcut.ClickShortcut.Compare) {
		act, _ := cp.Action(s)
		out = append(out, Binding{
			Target:   target,
			Kind:     KindClick,
			Shortcut: s.Shortcut(),
			Clicks:   s.Clicks,
			Action:   act,
		})
	}

	return out
}
