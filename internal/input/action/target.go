package action

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by name parsing.
var (
	// ErrUnknownAction indicates an action name that is not in the set.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownTarget indicates a target name other than eye or frame.
	ErrUnknownTarget = errors.New("unknown target")
)

// Target is the scene entity an action applies to.
type Target uint8

const (
	// Eye is the virtual camera.
	Eye Target = iota
	// Frame is the manipulated object.
	Frame
)

// Targets lists all targets in dispatch order.
var Targets = [...]Target{Eye, Frame}

// String returns a string representation of the target.
func (t Target) String() string {
	switch t {
	case Eye:
		return "eye"
	case Frame:
		return "frame"
	default:
		return "unknown"
	}
}

// ParseTarget parses "eye" or "frame" (case-insensitive).
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "eye", "camera":
		return Eye, nil
	case "frame":
		return Frame, nil
	}
	return Eye, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}
