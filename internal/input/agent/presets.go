package agent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

// ErrUnknownPreset indicates a preset name that is not recognized.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names a complete binding scheme.
type Preset uint8

const (
	// PresetDragArcball is DragToArcball.
	PresetDragArcball Preset = iota
	// PresetMoveArcball is MoveToArcball.
	PresetMoveArcball
	// PresetDragFirstPerson is DragToFirstPerson.
	PresetDragFirstPerson
	// PresetMoveFirstPerson is MoveToFirstPerson.
	PresetMoveFirstPerson
	// PresetDragThirdPerson is DragToThirdPerson.
	PresetDragThirdPerson
	// PresetMoveThirdPerson is MoveToThirdPerson.
	PresetMoveThirdPerson
)

var presetNames = [...]string{
	PresetDragArcball:     "drag-arcball",
	PresetMoveArcball:     "move-arcball",
	PresetDragFirstPerson: "drag-first-person",
	PresetMoveFirstPerson: "move-first-person",
	PresetDragThirdPerson: "drag-third-person",
	PresetMoveThirdPerson: "move-third-person",
}

// Presets lists every preset.
var Presets = [...]Preset{
	PresetDragArcball,
	PresetMoveArcball,
	PresetDragFirstPerson,
	PresetMoveFirstPerson,
	PresetDragThirdPerson,
	PresetMoveThirdPerson,
}

// String returns the preset name, e.g. "drag-arcball".
func (p Preset) String() string {
	if int(p) < len(presetNames) {
		return presetNames[p]
	}
	return "unknown"
}

// ParsePreset parses a preset name such as "drag-arcball" or "move_first_person".
func ParsePreset(name string) (Preset, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range presetNames {
		if n == norm {
			return Preset(i), nil
		}
	}
	return PresetDragArcball, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// ApplyPreset installs the binding scheme named by p.
func (a *Agent) ApplyPreset(p Preset) error {
	switch p {
	case PresetDragArcball:
		a.DragToArcball()
	case PresetMoveArcball:
		a.MoveToArcball()
	case PresetDragFirstPerson:
		a.DragToFirstPerson()
	case PresetMoveFirstPerson:
		a.MoveToFirstPerson()
	case PresetDragThirdPerson:
		a.DragToThirdPerson()
	case PresetMoveThirdPerson:
		a.MoveToThirdPerson()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownPreset, p)
	}
	return nil
}

const (
	none  = shortcut.ModNone
	shift = shortcut.ModShift
	ctrl  = shortcut.ModCtrl
	alt   = shortcut.ModAlt

	left   = shortcut.LeftID
	center = shortcut.CenterID
	right  = shortcut.RightID
)

// DragToArcball sets 'arcball' bindings driven by button drags.
//
// Eye:
//
//	Left                 ROTATE
//	Center               TRANSLATE_Z (3D) or SCALE (2D)
//	Right                TRANSLATE
//	Shift+Left           ZOOM_ON_REGION
//	Shift+Center         SCREEN_TRANSLATE
//	Shift+Right          SCREEN_ROTATE
//
// Frame:
//
//	Left                 ROTATE
//	Center               SCALE
//	Right                TRANSLATE
//	Shift+Center         SCREEN_TRANSLATE
//	Shift+Right          SCREEN_ROTATE
//
// The common bindings are applied too (see setCommonBindings).
func (a *Agent) DragToArcball() {
	a.RemoveBindings()

	a.SetButtonBinding(action.Eye, none, left, action.DOF2Rotate)
	a.SetButtonBinding(action.Eye, none, center, a.depthOrScale())
	a.SetButtonBinding(action.Eye, none, right, action.DOF2Translate)
	a.SetButtonBinding(action.Eye, shift, left, action.DOF2ZoomOnRegion)
	a.SetButtonBinding(action.Eye, shift, center, action.DOF2ScreenTranslate)
	a.SetButtonBinding(action.Eye, shift, right, action.DOF2ScreenRotate)

	a.setFrameArcballButtons()

	a.setCommonBindings()
	a.presetApplied(PresetDragArcball)
}

// MoveToArcball sets 'arcball' bindings driven by plain pointer motion.
//
// Eye:
//
//	No button            ROTATE
//	Shift                TRANSLATE_Z (3D) or SCALE (2D)
//	Ctrl                 TRANSLATE
//	Ctrl+Shift           ZOOM_ON_REGION
//	Center               SCREEN_TRANSLATE
//	Right                SCREEN_ROTATE
//
// Frame:
//
//	No button            ROTATE
//	Shift                SCALE
//	Ctrl                 TRANSLATE
//	Center               SCREEN_TRANSLATE
//	Right                SCREEN_ROTATE
//
// Alt with no button is bound to the null action on both targets. The
// common bindings are applied too.
func (a *Agent) MoveToArcball() {
	a.RemoveBindings()

	a.SetGestureBinding(action.Eye, none, action.DOF2Rotate)
	a.SetGestureBinding(action.Eye, shift, a.depthOrScale())
	a.SetGestureBinding(action.Eye, ctrl, action.DOF2Translate)
	a.SetGestureBinding(action.Eye, ctrl|shift, action.DOF2ZoomOnRegion)
	a.SetButtonBinding(action.Eye, none, center, action.DOF2ScreenTranslate)
	a.SetButtonBinding(action.Eye, none, right, action.DOF2ScreenRotate)
	a.SetGestureBinding(action.Eye, alt, action.DOF2Null)

	a.setFrameArcballGestures()

	a.setCommonBindings()
	a.presetApplied(PresetMoveArcball)
}

// DragToFirstPerson sets 'first-person' bindings driven by button drags.
//
// Eye:
//
//	Left                 MOVE_FORWARD
//	Right                MOVE_BACKWARD
//	Shift+Left           ROTATE_Z
//	Ctrl+Wheel           ROTATE_Z
//	Center               LOOK_AROUND (3D only)
//	Shift+Center         DRIVE (3D only)
//
// Frame bindings are those of DragToArcball. The common bindings are
// applied too.
func (a *Agent) DragToFirstPerson() {
	a.RemoveBindings()

	a.SetButtonBinding(action.Eye, none, left, action.DOF2MoveForward)
	a.SetButtonBinding(action.Eye, none, right, action.DOF2MoveBackward)
	a.SetButtonBinding(action.Eye, shift, left, action.DOF2RotateZ)
	a.SetWheelBinding(action.Eye, ctrl, action.DOF1RotateZ)
	if a.scene.Is3D() {
		a.SetButtonBinding(action.Eye, none, center, action.DOF2LookAround)
		a.SetButtonBinding(action.Eye, shift, center, action.DOF2Drive)
	}

	a.setFrameArcballButtons()

	a.setCommonBindings()
	a.presetApplied(PresetDragFirstPerson)
}

// MoveToFirstPerson sets 'first-person' bindings driven by plain pointer
// motion.
//
// Eye:
//
//	Ctrl                 MOVE_FORWARD
//	Shift                MOVE_BACKWARD
//	Right                ROTATE_Z
//	Ctrl+Shift+Wheel     ROTATE_Z
//	No button            LOOK_AROUND (3D only)
//	Ctrl+Shift           DRIVE (3D only)
//
// Frame bindings are those of MoveToArcball. Alt with no button is bound
// to the null action on both targets. The common bindings are applied too.
func (a *Agent) MoveToFirstPerson() {
	a.RemoveBindings()

	a.SetGestureBinding(action.Eye, ctrl, action.DOF2MoveForward)
	a.SetGestureBinding(action.Eye, shift, action.DOF2MoveBackward)
	a.SetGestureBinding(action.Eye, alt, action.DOF2Null)
	a.SetButtonBinding(action.Eye, none, right, action.DOF2RotateZ)
	a.SetWheelBinding(action.Eye, ctrl|shift, action.DOF1RotateZ)
	if a.scene.Is3D() {
		a.SetGestureBinding(action.Eye, none, action.DOF2LookAround)
		a.SetGestureBinding(action.Eye, ctrl|shift, action.DOF2Drive)
	}

	a.setFrameArcballGestures()

	a.setCommonBindings()
	a.presetApplied(PresetMoveFirstPerson)
}

// DragToThirdPerson sets 'third-person' bindings driven by button drags.
// Only the frame (the avatar) is bound:
//
//	Left                 MOVE_FORWARD
//	Right                MOVE_BACKWARD
//	Shift+Left           ROTATE_Z
//	Center               LOOK_AROUND (3D only)
//	Shift+Center         DRIVE (3D only)
//
// The common bindings are applied too.
func (a *Agent) DragToThirdPerson() {
	a.RemoveBindings()

	a.SetButtonBinding(action.Frame, none, left, action.DOF2MoveForward)
	a.SetButtonBinding(action.Frame, none, right, action.DOF2MoveBackward)
	a.SetButtonBinding(action.Frame, shift, left, action.DOF2RotateZ)
	if a.scene.Is3D() {
		a.SetButtonBinding(action.Frame, none, center, action.DOF2LookAround)
		a.SetButtonBinding(action.Frame, shift, center, action.DOF2Drive)
	}

	a.setCommonBindings()
	a.presetApplied(PresetDragThirdPerson)
}

// MoveToThirdPerson sets 'third-person' bindings driven by plain pointer
// motion. Only the frame (the avatar) is bound:
//
//	Ctrl                 MOVE_FORWARD
//	Shift                MOVE_BACKWARD
//	Ctrl+Shift+Wheel     ROTATE_Z
//	Alt                  null action
//	No button            LOOK_AROUND (3D only)
//	Ctrl+Shift           DRIVE (3D only)
//
// The common bindings are applied too.
func (a *Agent) MoveToThirdPerson() {
	a.RemoveBindings()

	a.SetGestureBinding(action.Frame, ctrl, action.DOF2MoveForward)
	a.SetGestureBinding(action.Frame, shift, action.DOF2MoveBackward)
	a.SetWheelBinding(action.Frame, ctrl|shift, action.DOF1RotateZ)
	a.SetGestureBinding(action.Frame, alt, action.DOF2Null)
	if a.scene.Is3D() {
		a.SetGestureBinding(action.Frame, none, action.DOF2LookAround)
		a.SetGestureBinding(action.Frame, ctrl|shift, action.DOF2Drive)
	}

	a.setCommonBindings()
	a.presetApplied(PresetMoveThirdPerson)
}

func (a *Agent) setFrameArcballButtons() {
	a.SetButtonBinding(action.Frame, none, left, action.DOF2Rotate)
	a.SetButtonBinding(action.Frame, none, center, action.DOF2Scale)
	a.SetButtonBinding(action.Frame, none, right, action.DOF2Translate)
	a.SetButtonBinding(action.Frame, shift, center, action.DOF2ScreenTranslate)
	a.SetButtonBinding(action.Frame, shift, right, action.DOF2ScreenRotate)
}

func (a *Agent) setFrameArcballGestures() {
	a.SetGestureBinding(action.Frame, none, action.DOF2Rotate)
	a.SetGestureBinding(action.Frame, shift, action.DOF2Scale)
	a.SetGestureBinding(action.Frame, ctrl, action.DOF2Translate)
	a.SetGestureBinding(action.Frame, alt, action.DOF2Null)
	a.SetButtonBinding(action.Frame, none, center, action.DOF2ScreenTranslate)
	a.SetButtonBinding(action.Frame, none, right, action.DOF2ScreenRotate)
}

// setCommonBindings sets the bindings shared by every preset:
//
//	2 x Left             ALIGN_FRAME (both targets)
//	2 x Right            CENTER_FRAME (both targets)
//	Wheel                eye: TRANSLATE_Z (3D) or SCALE (2D); frame: SCALE
func (a *Agent) setCommonBindings() {
	for _, t := range action.Targets {
		a.SetClickBinding(t, none, left, 2, action.ClickAlignFrame)
		a.SetClickBinding(t, none, right, 2, action.ClickCenterFrame)
	}

	eyeWheel := action.DOF1Scale
	if a.scene.Is3D() {
		eyeWheel = action.DOF1TranslateZ
	}
	a.SetWheelBinding(action.Eye, none, eyeWheel)
	a.SetWheelBinding(action.Frame, none, action.DOF1Scale)
}

// depthOrScale returns TRANSLATE_Z in 3D scenes and SCALE in 2D ones.
func (a *Agent) depthOrScale() action.DOF2Action {
	if a.scene.Is3D() {
		return action.DOF2TranslateZ
	}
	return action.DOF2Scale
}

func (a *Agent) presetApplied(p Preset) {
	a.metrics.RecordPreset()
	a.logger.Info("bindings preset applied", "preset", p, "3d", a.scene.Is3D())
}
