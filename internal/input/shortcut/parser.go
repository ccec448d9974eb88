package shortcut

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty shortcut specification")
	ErrInvalidSpec = errors.New("invalid shortcut specification")
)

// deviceNameMap maps device names (lowercase) to ids.
var deviceNameMap = map[string]ID{
	"left":   LeftID,
	"center": CenterID,
	"middle": CenterID,
	"right":  RightID,
	"wheel":  WheelID,
	"none":   NoID,
}

// IDFromName returns the device id for a name (case-insensitive).
func IDFromName(name string) (ID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if id, ok := deviceNameMap[name]; ok {
		return id, true
	}
	if n, ok := strings.CutPrefix(name, "button"); ok {
		if v, err := strconv.Atoi(n); err == nil && v > 0 {
			return ID(v), true
		}
	}
	return NoID, false
}

// Parse parses a shortcut specification string.
//
// Supported formats:
//   - Device only: "Left", "Center", "Middle", "Right", "Wheel", "Button5"
//   - With modifiers: "Shift+Left", "Ctrl+Shift+Wheel"
//   - Button-less gestures: "None", "Alt", "Ctrl+Shift"
func Parse(spec string) (Shortcut, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Shortcut{}, ErrEmptySpec
	}

	var (
		mods      Modifier
		id        = NoID
		hasDevice bool
	)

	parts := strings.Split(spec, "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Shortcut{}, fmt.Errorf("%w: empty token in %q", ErrInvalidSpec, spec)
		}

		if mod := ModifierFromName(p); mod != ModNone {
			if hasDevice {
				return Shortcut{}, fmt.Errorf("%w: modifier %q after device", ErrInvalidSpec, p)
			}
			mods = mods.With(mod)
			continue
		}

		dev, ok := IDFromName(p)
		if !ok {
			return Shortcut{}, fmt.Errorf("%w: unknown token %q", ErrInvalidSpec, p)
		}
		if hasDevice {
			return Shortcut{}, fmt.Errorf("%w: more than one device in %q", ErrInvalidSpec, spec)
		}
		// "None" is only meaningful on its own
		if dev == NoID && len(parts) > 1 {
			return Shortcut{}, fmt.Errorf("%w: %q must stand alone", ErrInvalidSpec, p)
		}
		if i != len(parts)-1 {
			return Shortcut{}, fmt.Errorf("%w: device %q must come last", ErrInvalidSpec, p)
		}
		id = dev
		hasDevice = true
	}

	return Shortcut{Mask: mods, ID: id}, nil
}

// MustParse parses a shortcut specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Shortcut {
	s, err := Parse(spec)
	if err != nil {
		panic("invalid shortcut specification: " + spec + ": " + err.Error())
	}
	return s
}

// NormalizeSpec parses and re-formats a specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	s, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}
