// Package mouse models raw pointer input and normalizes it into the
// events consumed by the binding agent.
//
// A host (the terminal front end, a test, a script) feeds Events to a
// Normalizer, which tracks click sequences, drags and the last pointer
// position:
//
//	n := mouse.NewNormalizer(mouse.DefaultConfig())
//	if ev, ok := n.Normalize(raw); ok {
//	    agent.Handle(ev)
//	}
//
// # Click Counting
//
// Presses of the same button close together in time and space form a
// sequence. The count wraps back to 1 after Config.MaxClicks.
//
// # Motion
//
// Drags report the delta since the previous pointer position together
// with the held button. Plain moves report the same delta with no button,
// which the agent resolves through gesture bindings.
//
// # Wheel
//
// Vertical wheel ticks become one-axis wheel events of ±Config.WheelStep.
// Horizontal ticks are ignored.
//
// Normalizer is safe for concurrent use.
package mouse
