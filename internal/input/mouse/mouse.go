package mouse

import (
	"time"

	"github.com/remixlab/dandelion/internal/input/shortcut"
)

// Button is the physical source of a mouse event. Wheel ticks are
// reported as the four scroll buttons.
type Button uint8

const (
	// ButtonNone is no button, e.g. for plain motion.
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonMiddle is the middle button (wheel click).
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight

	// Wheel ticks
	ButtonScrollUp
	ButtonScrollDown
	ButtonScrollLeft
	ButtonScrollRight
)

var buttonNames = [...]string{
	ButtonNone:        "none",
	ButtonLeft:        "left",
	ButtonMiddle:      "middle",
	ButtonRight:       "right",
	ButtonScrollUp:    "scroll-up",
	ButtonScrollDown:  "scroll-down",
	ButtonScrollLeft:  "scroll-left",
	ButtonScrollRight: "scroll-right",
}

// String returns the button name, e.g. "left".
func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "none"
}

// IsScroll reports whether b is one of the scroll buttons.
func (b Button) IsScroll() bool {
	return b >= ButtonScrollUp && b <= ButtonScrollRight
}

// ID maps b to its shortcut id: the middle button is CenterID and every
// scroll button is WheelID.
func (b Button) ID() shortcut.ID {
	switch {
	case b == ButtonLeft:
		return shortcut.LeftID
	case b == ButtonMiddle:
		return shortcut.CenterID
	case b == ButtonRight:
		return shortcut.RightID
	case b.IsScroll():
		return shortcut.WheelID
	}
	return shortcut.NoID
}

// Action is what happened to the button.
type Action uint8

const (
	// ActionNone is no action.
	ActionNone Action = iota
	// ActionPress is a button press or a wheel tick.
	ActionPress
	// ActionRelease is a button release.
	ActionRelease
	// ActionMove is motion with no button held.
	ActionMove
	// ActionDrag is motion with a button held.
	ActionDrag
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionPress:   "press",
	ActionRelease: "release",
	ActionMove:    "move",
	ActionDrag:    "drag",
}

// String returns the action name, e.g. "press".
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "none"
}

// Position is a pointer location in host units (cells or pixels).
type Position struct {
	X int
	Y int
}

// Sub returns p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	d := p.Sub(other)
	return abs(d.X) + abs(d.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Event is a raw mouse event as reported by a host.
type Event struct {
	Position Position
	// Button is the pressed, released or scrolled button, or the held
	// button of a drag.
	Button    Button
	Modifiers shortcut.Modifier
	Action    Action
	// Timestamp orders presses for click counting. Zero means now.
	Timestamp time.Time
}

// Config configures normalization.
type Config struct {
	// DoubleClickTime is the maximum time between presses of a sequence.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum distance between presses of a sequence.
	DoubleClickDistance int

	// MaxClicks is the count after which a sequence wraps back to 1.
	MaxClicks int

	// WheelStep is the magnitude of the delta of one wheel tick.
	WheelStep float64

	// InvertWheel flips the sign of wheel deltas.
	InvertWheel bool
}

// DefaultConfig returns a 400ms, 4 unit double-click window with up to
// triple clicks and unit wheel steps.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 4,
		MaxClicks:           3,
		WheelStep:           1,
	}
}
