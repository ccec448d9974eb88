package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/remixlab/dandelion/internal/input/mouse"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

// pointerButtons are the button bits tracked for press and release, in
// the order presses are reported.
var pointerButtons = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.ButtonPrimary, mouse.ButtonLeft},
	{tcell.ButtonMiddle, mouse.ButtonMiddle},
	{tcell.ButtonSecondary, mouse.ButtonRight},
}

var wheelButtons = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.WheelUp, mouse.ButtonScrollUp},
	{tcell.WheelDown, mouse.ButtonScrollDown},
	{tcell.WheelLeft, mouse.ButtonScrollLeft},
	{tcell.WheelRight, mouse.ButtonScrollRight},
}

const pointerMask = tcell.ButtonPrimary | tcell.ButtonMiddle | tcell.ButtonSecondary

// Input converts tcell mouse events into mouse events. It is not safe for
// concurrent use; call it from the event loop.
type Input struct {
	buttons tcell.ButtonMask
	pos     mouse.Position
	known   bool
}

// NewInput creates a new translator with no buttons held.
func NewInput() *Input {
	return &Input{}
}

// Translate returns the mouse events described by ev. Wheel bits produce
// scroll presses only. Otherwise newly set button bits produce presses,
// cleared bits produce releases, and a position change with no button
// transition produces a drag (button held) or a move.
func (in *Input) Translate(ev *tcell.EventMouse) []mouse.Event {
	x, y := ev.Position()
	base := mouse.Event{
		Position:  mouse.Position{X: x, Y: y},
		Modifiers: convertMod(ev.Modifiers()),
		Timestamp: ev.When(),
	}
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now()
	}

	btns := ev.Buttons()

	var out []mouse.Event
	for _, w := range wheelButtons {
		if btns&w.mask != 0 {
			out = append(out, with(base, w.button, mouse.ActionPress))
		}
	}
	if len(out) > 0 {
		return out
	}

	held := btns & pointerMask
	pressed := held &^ in.buttons
	released := in.buttons &^ held

	for _, b := range pointerButtons {
		if released&b.mask != 0 {
			out = append(out, with(base, b.button, mouse.ActionRelease))
		}
	}
	for _, b := range pointerButtons {
		if pressed&b.mask != 0 {
			out = append(out, with(base, b.button, mouse.ActionPress))
		}
	}

	moved := !in.known || base.Position != in.pos
	if len(out) == 0 && moved {
		if held != 0 {
			out = append(out, with(base, heldButton(held), mouse.ActionDrag))
		} else {
			out = append(out, with(base, mouse.ButtonNone, mouse.ActionMove))
		}
	}

	in.buttons = held
	in.pos = base.Position
	in.known = true

	return out
}

// Reset forgets the held buttons and the last position.
func (in *Input) Reset() {
	*in = Input{}
}

func with(ev mouse.Event, b mouse.Button, a mouse.Action) mouse.Event {
	ev.Button = b
	ev.Action = a
	return ev
}

// heldButton returns the first held button in press order.
func heldButton(held tcell.ButtonMask) mouse.Button {
	for _, b := range pointerButtons {
		if held&b.mask != 0 {
			return b.button
		}
	}
	return mouse.ButtonNone
}

// convertMod converts a tcell modifier mask to shortcut modifiers.
func convertMod(m tcell.ModMask) shortcut.Modifier {
	var result shortcut.Modifier
	if m&tcell.ModShift != 0 {
		result |= shortcut.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= shortcut.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= shortcut.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= shortcut.ModMeta
	}
	return result
}
