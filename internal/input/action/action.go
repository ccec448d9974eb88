package action

import (
	"fmt"
	"strings"
)

// Action is one of DOF2Action, DOF1Action or ClickAction.
type Action interface {
	fmt.Stringer

	// Arity returns 2 for DOF2 actions, 1 for DOF1 actions and 0 for clicks.
	Arity() int

	// IsNull reports whether this is the null sentinel of its set.
	IsNull() bool

	sealed()
}

// DOF2Action is a two-axis motion action.
type DOF2Action uint8

const (
	// DOF2Null is the null sentinel. Binding it shadows dispatch.
	DOF2Null DOF2Action = iota
	// DOF2Custom is left to the application.
	DOF2Custom

	// Single-axis rotations and translations, driven by the first axis.
	DOF2RotateX
	DOF2RotateY
	DOF2RotateZ
	DOF2TranslateX
	DOF2TranslateY
	DOF2TranslateZ

	// DOF2Scale scales the frame.
	DOF2Scale
	// DOF2ZoomOnAnchor zooms towards the anchor point.
	DOF2ZoomOnAnchor
	// DOF2ZoomOnRegion zooms on the rectangle swept by a drag.
	DOF2ZoomOnRegion

	// DOF2Translate translates in the screen plane.
	DOF2Translate
	// DOF2Rotate rotates with a trackball.
	DOF2Rotate
	// DOF2ScreenRotate rotates around the screen z axis.
	DOF2ScreenRotate
	// DOF2ScreenTranslate translates along the dominant screen axis.
	DOF2ScreenTranslate

	// First person motions.
	DOF2MoveForward
	DOF2MoveBackward
	DOF2LookAround
	DOF2Drive

	// DOF2RotateCAD rotates around the scene up vector.
	DOF2RotateCAD
	// DOF2Hinge rotates around a fixed hinge axis.
	DOF2Hinge
)

// DOF1Action is a one-axis motion action.
type DOF1Action uint8

const (
	// DOF1Null is the null sentinel.
	DOF1Null DOF1Action = iota
	// DOF1Custom is left to the application.
	DOF1Custom

	// Single-axis rotations and translations.
	DOF1RotateX
	DOF1RotateY
	DOF1RotateZ
	DOF1TranslateX
	DOF1TranslateY
	DOF1TranslateZ

	// DOF1Scale scales the frame.
	DOF1Scale
	// DOF1ZoomOnAnchor zooms towards the anchor point.
	DOF1ZoomOnAnchor
)

// ClickAction is a discrete click action.
type ClickAction uint8

const (
	// ClickNull is the null sentinel.
	ClickNull ClickAction = iota
	// ClickCustom is left to the application.
	ClickCustom

	// Frame actions.
	ClickCenterFrame
	ClickAlignFrame

	// Pixel actions, using the pointer position.
	ClickZoomOnPixel
	ClickAnchorFromPixel

	// Scene actions.
	ClickCenterScene
	ClickAlignScene
	ClickShowAll
)

var dof2Names = [...]string{
	DOF2Null:            "NULL",
	DOF2Custom:          "CUSTOM",
	DOF2RotateX:         "ROTATE_X",
	DOF2RotateY:         "ROTATE_Y",
	DOF2RotateZ:         "ROTATE_Z",
	DOF2TranslateX:      "TRANSLATE_X",
	DOF2TranslateY:      "TRANSLATE_Y",
	DOF2TranslateZ:      "TRANSLATE_Z",
	DOF2Scale:           "SCALE",
	DOF2ZoomOnAnchor:    "ZOOM_ON_ANCHOR",
	DOF2ZoomOnRegion:    "ZOOM_ON_REGION",
	DOF2Translate:       "TRANSLATE",
	DOF2Rotate:          "ROTATE",
	DOF2ScreenRotate:    "SCREEN_ROTATE",
	DOF2ScreenTranslate: "SCREEN_TRANSLATE",
	DOF2MoveForward:     "MOVE_FORWARD",
	DOF2MoveBackward:    "MOVE_BACKWARD",
	DOF2LookAround:      "LOOK_AROUND",
	DOF2Drive:           "DRIVE",
	DOF2RotateCAD:       "ROTATE_CAD",
	DOF2Hinge:           "HINGE",
}

var dof1Names = [...]string{
	DOF1Null:         "NULL",
	DOF1Custom:       "CUSTOM",
	DOF1RotateX:      "ROTATE_X",
	DOF1RotateY:      "ROTATE_Y",
	DOF1RotateZ:      "ROTATE_Z",
	DOF1TranslateX:   "TRANSLATE_X",
	DOF1TranslateY:   "TRANSLATE_Y",
	DOF1TranslateZ:   "TRANSLATE_Z",
	DOF1Scale:        "SCALE",
	DOF1ZoomOnAnchor: "ZOOM_ON_ANCHOR",
}

var clickNames = [...]string{
	ClickNull:            "NULL",
	ClickCustom:          "CUSTOM",
	ClickCenterFrame:     "CENTER_FRAME",
	ClickAlignFrame:      "ALIGN_FRAME",
	ClickZoomOnPixel:     "ZOOM_ON_PIXEL",
	ClickAnchorFromPixel: "ANCHOR_FROM_PIXEL",
	ClickCenterScene:     "CENTER_SCENE",
	ClickAlignScene:      "ALIGN_SCENE",
	ClickShowAll:         "SHOW_ALL",
}

// dof1ToDOF2 maps each one-axis action to its two-axis counterpart.
var dof1ToDOF2 = [...]DOF2Action{
	DOF1Null:         DOF2Null,
	DOF1Custom:       DOF2Custom,
	DOF1RotateX:      DOF2RotateX,
	DOF1RotateY:      DOF2RotateY,
	DOF1RotateZ:      DOF2RotateZ,
	DOF1TranslateX:   DOF2TranslateX,
	DOF1TranslateY:   DOF2TranslateY,
	DOF1TranslateZ:   DOF2TranslateZ,
	DOF1Scale:        DOF2Scale,
	DOF1ZoomOnAnchor: DOF2ZoomOnAnchor,
}

// String returns the action name, e.g. "ROTATE".
func (a DOF2Action) String() string {
	if int(a) < len(dof2Names) {
		return dof2Names[a]
	}
	return fmt.Sprintf("DOF2Action(%d)", uint8(a))
}

// String returns the action name, e.g. "TRANSLATE_Z".
func (a DOF1Action) String() string {
	if int(a) < len(dof1Names) {
		return dof1Names[a]
	}
	return fmt.Sprintf("DOF1Action(%d)", uint8(a))
}

// String returns the action name, e.g. "ALIGN_FRAME".
func (a ClickAction) String() string {
	if int(a) < len(clickNames) {
		return clickNames[a]
	}
	return fmt.Sprintf("ClickAction(%d)", uint8(a))
}

// Arity returns 2.
func (DOF2Action) Arity() int { return 2 }

// Arity returns 1.
func (DOF1Action) Arity() int { return 1 }

// Arity returns 0.
func (ClickAction) Arity() int { return 0 }

// IsNull reports whether a is DOF2Null.
func (a DOF2Action) IsNull() bool { return a == DOF2Null }

// IsNull reports whether a is DOF1Null.
func (a DOF1Action) IsNull() bool { return a == DOF1Null }

// IsNull reports whether a is ClickNull.
func (a ClickAction) IsNull() bool { return a == ClickNull }

func (DOF2Action) sealed()  {}
func (DOF1Action) sealed()  {}
func (ClickAction) sealed() {}

// DOF2 returns the two-axis form of a, used to store wheel bindings in a
// motion profile. The second axis of the resulting action is unused.
func (a DOF1Action) DOF2() DOF2Action {
	if int(a) < len(dof1ToDOF2) {
		return dof1ToDOF2[a]
	}
	return DOF2Null
}

// DOF1 returns the one-axis form of a. ok is false when a has none.
func (a DOF2Action) DOF1() (DOF1Action, bool) {
	for i, d := range dof1ToDOF2 {
		if d == a {
			return DOF1Action(i), true
		}
	}
	return DOF1Null, false
}

// DOF2Actions returns every two-axis action except Null.
func DOF2Actions() []DOF2Action {
	out := make([]DOF2Action, 0, len(dof2Names)-1)
	for i := 1; i < len(dof2Names); i++ {
		out = append(out, DOF2Action(i))
	}
	return out
}

// DOF1Actions returns every one-axis action except Null.
func DOF1Actions() []DOF1Action {
	out := make([]DOF1Action, 0, len(dof1Names)-1)
	for i := 1; i < len(dof1Names); i++ {
		out = append(out, DOF1Action(i))
	}
	return out
}

// ClickActions returns every click action except Null.
func ClickActions() []ClickAction {
	out := make([]ClickAction, 0, len(clickNames)-1)
	for i := 1; i < len(clickNames); i++ {
		out = append(out, ClickAction(i))
	}
	return out
}

// ParseDOF2 parses a two-axis action name such as "ROTATE" or "translate_z".
func ParseDOF2(name string) (DOF2Action, error) {
	i, err := lookup(name, dof2Names[:])
	return DOF2Action(i), err
}

// ParseDOF1 parses a one-axis action name.
func ParseDOF1(name string) (DOF1Action, error) {
	i, err := lookup(name, dof1Names[:])
	return DOF1Action(i), err
}

// ParseClick parses a click action name.
func ParseClick(name string) (ClickAction, error) {
	i, err := lookup(name, clickNames[:])
	return ClickAction(i), err
}

func lookup(name string, names []string) (int, error) {
	norm := strings.ToUpper(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for i, n := range names {
		if n == norm {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
