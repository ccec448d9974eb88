package shortcut

import (
	"cmp"
	"fmt"
	"strings"
)

// ID identifies the device element an event comes from: a mouse button,
// the wheel, or none at all.
type ID int

const (
	// NoID marks a button-less gesture (plain pointer motion).
	NoID ID = 0
	// LeftID is the primary (left) mouse button.
	LeftID ID = 1
	// CenterID is the middle mouse button.
	CenterID ID = 2
	// RightID is the secondary (right) mouse button.
	RightID ID = 3
	// WheelID is the reserved id under which wheel motion is bound.
	WheelID ID = 4
)

// String returns the device name used in the text form of shortcuts.
func (id ID) String() string {
	switch id {
	case NoID:
		return "None"
	case LeftID:
		return "Left"
	case CenterID:
		return "Center"
	case RightID:
		return "Right"
	case WheelID:
		return "Wheel"
	default:
		return fmt.Sprintf("Button%d", int(id))
	}
}

// IsButton returns true if id names a mouse button.
func (id ID) IsButton() bool {
	return id != NoID && id != WheelID
}

// Shortcut is a motion shortcut: a modifier mask plus a device id.
type Shortcut struct {
	Mask Modifier
	ID   ID
}

// New creates a motion shortcut.
func New(mask Modifier, id ID) Shortcut {
	return Shortcut{Mask: mask, ID: id}
}

// IsGesture returns true for button-less shortcuts.
func (s Shortcut) IsGesture() bool {
	return s.ID == NoID
}

// IsWheel returns true for wheel shortcuts.
func (s Shortcut) IsWheel() bool {
	return s.ID == WheelID
}

// String returns the text form, e.g. "Ctrl+Shift+Wheel".
func (s Shortcut) String() string {
	mods := s.Mask.String()
	switch {
	case s.ID == NoID && mods == "":
		return "None"
	case s.ID == NoID:
		return mods
	case mods == "":
		return s.ID.String()
	default:
		return mods + "+" + s.ID.String()
	}
}

// Compare orders shortcuts by id, then mask.
func (s Shortcut) Compare(other Shortcut) int {
	if c := cmp.Compare(s.ID, other.ID); c != 0 {
		return c
	}
	return cmp.Compare(s.Mask, other.Mask)
}

// ClickShortcut is a button shortcut qualified by a click count.
type ClickShortcut struct {
	Mask   Modifier
	ID     ID
	Clicks int
}

// NewClick creates a click shortcut. Click counts below one are clamped to one.
func NewClick(mask Modifier, id ID, clicks int) ClickShortcut {
	if clicks < 1 {
		clicks = 1
	}
	return ClickShortcut{Mask: mask, ID: id, Clicks: clicks}
}

// Shortcut returns the click shortcut without its click count.
func (c ClickShortcut) Shortcut() Shortcut {
	return Shortcut{Mask: c.Mask, ID: c.ID}
}

// String returns e.g. "2xShift+Left".
func (c ClickShortcut) String() string {
	var sb strings.Builder
	if c.Clicks != 1 {
		fmt.Fprintf(&sb, "%dx", c.Clicks)
	}
	sb.WriteString(c.Shortcut().String())
	return sb.String()
}

// Compare orders click shortcuts by id, then click count, then mask.
func (c ClickShortcut) Compare(other ClickShortcut) int {
	if n := cmp.Compare(c.ID, other.ID); n != 0 {
		return n
	}
	if n := cmp.Compare(c.Clicks, other.Clicks); n != 0 {
		return n
	}
	return cmp.Compare(c.Mask, other.Mask)
}
