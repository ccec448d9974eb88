// Package agent resolves mouse input events to scene actions.
//
// An Agent owns the binding profiles for the two targets (the eye and the
// frame). Each target has a motion profile, which also stores wheel
// bindings under the reserved shortcut.WheelID, and a click profile keyed
// by click shortcuts.
//
// # Dispatch
//
// Handle builds the exact shortcut for an event and looks it up in the
// profile of each target. A miss is not an error: the target simply gets
// no action. A binding to the null action shadows the shortcut and also
// forwards nothing. Motion deltas are scaled by the x and y
// sensitivities before they are forwarded; wheel and click deltas are not.
//
//	a := agent.New(agent.Scene3D,
//	    agent.WithHandler(action.Eye, agent.HandlerFunc(moveCamera)),
//	)
//	a.DragToArcball()
//	a.Handle(agent.Event{
//	    Kind:  agent.KindMotion,
//	    ID:    shortcut.LeftID,
//	    Delta: []float64{dx, dy},
//	})
//
// # Button Modifiers
//
// Hosts conventionally report the center button with an implied Alt and
// the right button with an implied Meta. ButtonModifiersFix adds those
// modifiers; both the binding API and Handle run masks through it, so a
// binding made for "Right" matches right-button events whether or not the
// host already set Meta.
//
// # Presets
//
// DragToArcball, MoveToArcball, DragToFirstPerson, MoveToFirstPerson,
// DragToThirdPerson and MoveToThirdPerson clear every binding and install
// a complete scheme. "Drag" presets act while a button is held; "move"
// presets act on plain pointer motion qualified by modifier keys.
//
// # Thread Safety
//
// Agent is not safe for concurrent use. Binding changes and Handle must
// run on the same goroutine, normally the host's event loop.
package agent
