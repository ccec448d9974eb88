package agent

import (
	"errors"
	"testing"

	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input   string
		want    Preset
		wantErr bool
	}{
		{"drag-arcball", PresetDragArcball, false},
		{"Move-Arcball", PresetMoveArcball, false},
		{"drag_first_person", PresetDragFirstPerson, false},
		{" move-first-person ", PresetMoveFirstPerson, false},
		{"drag-third-person", PresetDragThirdPerson, false},
		{"MOVE_THIRD_PERSON", PresetMoveThirdPerson, false},
		{"orbit", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePreset(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPreset) {
					t.Errorf("ParsePreset(%q) error = %v, want ErrUnknownPreset", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePreset(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePreset(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, p := range Presets {
		got, err := ParsePreset(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %v, %v", p.String(), got, err)
		}
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	a := New(Scene3D)
	if err := a.ApplyPreset(Preset(99)); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ApplyPreset(99) error = %v, want ErrUnknownPreset", err)
	}
}

type snapshot struct {
	motion [len(action.Targets)]*MotionProfile
	click  [len(action.Targets)]*ClickProfile
}

func takeSnapshot(a *Agent) snapshot {
	var s snapshot
	for _, t := range action.Targets {
		s.motion[t] = a.MotionProfile(t).Clone()
		s.click[t] = a.ClickProfile(t).Clone()
	}
	return s
}

func (s snapshot) equal(a *Agent) bool {
	for _, t := range action.Targets {
		if !s.motion[t].Equal(a.MotionProfile(t)) || !s.click[t].Equal(a.ClickProfile(t)) {
			return false
		}
	}
	return true
}

func TestPresetIdempotence(t *testing.T) {
	for _, scene := range []StaticScene{Scene2D, Scene3D} {
		for _, p := range Presets {
			a := New(scene)
			if err := a.ApplyPreset(p); err != nil {
				t.Fatalf("ApplyPreset(%v) error = %v", p, err)
			}
			once := takeSnapshot(a)

			if err := a.ApplyPreset(p); err != nil {
				t.Fatalf("ApplyPreset(%v) error = %v", p, err)
			}
			if !once.equal(a) {
				t.Errorf("%v (3D=%v): applying twice differs from once", p, scene.Is3D())
			}

			// Presets fully replace earlier bindings
			for _, other := range Presets {
				a.ApplyPreset(other)
				a.ApplyPreset(p)
				if !once.equal(a) {
					t.Errorf("%v after %v (3D=%v) differs from %v alone", p, other, scene.Is3D(), p)
				}
			}
		}
	}
}

func TestDragToArcball3D(t *testing.T) {
	a := New(Scene3D)
	a.DragToArcball()

	buttons := []struct {
		target action.Target
		mask   shortcut.Modifier
		button shortcut.ID
		want   action.DOF2Action
	}{
		{action.Eye, none, left, action.DOF2Rotate},
		{action.Eye, none, center, action.DOF2TranslateZ},
		{action.Eye, none, right, action.DOF2Translate},
		{action.Eye, shift, left, action.DOF2ZoomOnRegion},
		{action.Eye, shift, center, action.DOF2ScreenTranslate},
		{action.Eye, shift, right, action.DOF2ScreenRotate},
		{action.Frame, none, left, action.DOF2Rotate},
		{action.Frame, none, center, action.DOF2Scale},
		{action.Frame, none, right, action.DOF2Translate},
		{action.Frame, shift, center, action.DOF2ScreenTranslate},
		{action.Frame, shift, right, action.DOF2ScreenRotate},
	}
	for _, tt := range buttons {
		got, ok := a.ButtonAction(tt.target, tt.mask, tt.button)
		if !ok || got != tt.want {
			t.Errorf("%v ButtonAction(%v, %v) = %v, %v, want %v", tt.target, tt.mask, tt.button, got, ok, tt.want)
		}
	}

	if a.HasButtonBinding(action.Frame, shift, left) {
		t.Error("frame Shift+Left should be unbound")
	}
	if got := a.MotionProfile(action.Eye).Len(); got != 7 {
		t.Errorf("eye motion profile has %d entries, want 7", got)
	}

	for _, target := range action.Targets {
		if got, _ := a.ClickAction(target, none, left, 2); got != action.ClickAlignFrame {
			t.Errorf("%v 2xLeft = %v, want ALIGN_FRAME", target, got)
		}
		if got, _ := a.ClickAction(target, none, right, 2); got != action.ClickCenterFrame {
			t.Errorf("%v 2xRight = %v, want CENTER_FRAME", target, got)
		}
		if got := a.ClickProfile(target).Len(); got != 2 {
			t.Errorf("%v click profile has %d entries, want 2", target, got)
		}
	}

	if got, _ := a.WheelAction(action.Eye, none); got != action.DOF1TranslateZ {
		t.Errorf("eye wheel = %v, want TRANSLATE_Z", got)
	}
	if got, _ := a.WheelAction(action.Frame, none); got != action.DOF1Scale {
		t.Errorf("frame wheel = %v, want SCALE", got)
	}
}

func TestDragToArcball2D(t *testing.T) {
	a := New(Scene2D)
	a.DragToArcball()

	if got, _ := a.ButtonAction(action.Eye, none, center); got != action.DOF2Scale {
		t.Errorf("eye Center = %v, want SCALE", got)
	}
	if got, _ := a.WheelAction(action.Eye, none); got != action.DOF1Scale {
		t.Errorf("eye wheel = %v, want SCALE", got)
	}
}

func TestMoveToArcball(t *testing.T) {
	a := New(Scene3D)
	a.MoveToArcball()

	gestures := []struct {
		target action.Target
		mask   shortcut.Modifier
		want   action.DOF2Action
	}{
		{action.Eye, none, action.DOF2Rotate},
		{action.Eye, shift, action.DOF2TranslateZ},
		{action.Eye, ctrl, action.DOF2Translate},
		{action.Eye, ctrl | shift, action.DOF2ZoomOnRegion},
		{action.Eye, alt, action.DOF2Null},
		{action.Frame, none, action.DOF2Rotate},
		{action.Frame, shift, action.DOF2Scale},
		{action.Frame, ctrl, action.DOF2Translate},
		{action.Frame, alt, action.DOF2Null},
	}
	for _, tt := range gestures {
		got, ok := a.GestureAction(tt.target, tt.mask)
		if !ok || got != tt.want {
			t.Errorf("%v GestureAction(%v) = %v, %v, want %v", tt.target, tt.mask, got, ok, tt.want)
		}
	}

	for _, target := range action.Targets {
		if got, _ := a.ButtonAction(target, none, center); got != action.DOF2ScreenTranslate {
			t.Errorf("%v Center = %v, want SCREEN_TRANSLATE", target, got)
		}
		if got, _ := a.ButtonAction(target, none, right); got != action.DOF2ScreenRotate {
			t.Errorf("%v Right = %v, want SCREEN_ROTATE", target, got)
		}
	}
}

func TestFirstPerson2DSkips3DActions(t *testing.T) {
	for _, p := range []Preset{PresetDragFirstPerson, PresetMoveFirstPerson, PresetDragThirdPerson, PresetMoveThirdPerson} {
		a := New(Scene2D)
		a.ApplyPreset(p)

		for _, target := range action.Targets {
			mp := a.MotionProfile(target)
			if mp.IsActionBound(action.DOF2LookAround) {
				t.Errorf("%v: %v has LOOK_AROUND bound in 2D", p, target)
			}
			if mp.IsActionBound(action.DOF2Drive) {
				t.Errorf("%v: %v has DRIVE bound in 2D", p, target)
			}
		}

		a3 := New(Scene3D)
		a3.ApplyPreset(p)
		found := false
		for _, target := range action.Targets {
			if a3.MotionProfile(target).IsActionBound(action.DOF2LookAround) {
				found = true
			}
		}
		if !found {
			t.Errorf("%v: LOOK_AROUND not bound in 3D", p)
		}
	}
}

func TestDragToFirstPerson(t *testing.T) {
	a := New(Scene3D)
	a.DragToFirstPerson()

	tests := []struct {
		mask   shortcut.Modifier
		button shortcut.ID
		want   action.DOF2Action
	}{
		{none, left, action.DOF2MoveForward},
		{none, right, action.DOF2MoveBackward},
		{shift, left, action.DOF2RotateZ},
		{none, center, action.DOF2LookAround},
		{shift, center, action.DOF2Drive},
	}
	for _, tt := range tests {
		if got, _ := a.ButtonAction(action.Eye, tt.mask, tt.button); got != tt.want {
			t.Errorf("eye ButtonAction(%v, %v) = %v, want %v", tt.mask, tt.button, got, tt.want)
		}
	}
	if got, _ := a.WheelAction(action.Eye, ctrl); got != action.DOF1RotateZ {
		t.Errorf("eye Ctrl+Wheel = %v, want ROTATE_Z", got)
	}
	if got, _ := a.ButtonAction(action.Frame, none, left); got != action.DOF2Rotate {
		t.Errorf("frame Left = %v, want ROTATE", got)
	}
}

func TestMoveToFirstPerson(t *testing.T) {
	a := New(Scene3D)
	a.MoveToFirstPerson()

	tests := []struct {
		mask shortcut.Modifier
		want action.DOF2Action
	}{
		{ctrl, action.DOF2MoveForward},
		{shift, action.DOF2MoveBackward},
		{alt, action.DOF2Null},
		{none, action.DOF2LookAround},
		{ctrl | shift, action.DOF2Drive},
	}
	for _, tt := range tests {
		if got, ok := a.GestureAction(action.Eye, tt.mask); !ok || got != tt.want {
			t.Errorf("eye GestureAction(%v) = %v, %v, want %v", tt.mask, got, ok, tt.want)
		}
	}
	if got, _ := a.ButtonAction(action.Eye, none, right); got != action.DOF2RotateZ {
		t.Errorf("eye Right = %v, want ROTATE_Z", got)
	}
	if got, _ := a.WheelAction(action.Eye, ctrl|shift); got != action.DOF1RotateZ {
		t.Errorf("eye Ctrl+Shift+Wheel = %v, want ROTATE_Z", got)
	}
}

func TestThirdPersonBindsFrameOnly(t *testing.T) {
	for _, p := range []Preset{PresetDragThirdPerson, PresetMoveThirdPerson} {
		a := New(Scene3D)
		a.ApplyPreset(p)

		for s := range a.MotionProfile(action.Eye).All() {
			if !s.IsWheel() {
				t.Errorf("%v: eye has motion binding %v", p, s)
			}
		}
		if a.MotionProfile(action.Frame).Len() == 0 {
			t.Errorf("%v: frame has no motion bindings", p)
		}
	}

	a := New(Scene3D)
	a.MoveToThirdPerson()
	if got, _ := a.GestureAction(action.Frame, ctrl); got != action.DOF2MoveForward {
		t.Errorf("frame Ctrl = %v, want MOVE_FORWARD", got)
	}
	if got, _ := a.WheelAction(action.Frame, ctrl|shift); got != action.DOF1RotateZ {
		t.Errorf("frame Ctrl+Shift+Wheel = %v, want ROTATE_Z", got)
	}
	if got, _ := a.WheelAction(action.Frame, none); got != action.DOF1Scale {
		t.Errorf("frame Wheel = %v, want SCALE", got)
	}
}

func TestPresetRecordsMetrics(t *testing.T) {
	m := NewMetrics()
	a := New(Scene3D, WithMetrics(m))
	a.DragToArcball()
	a.MoveToThirdPerson()

	if got := m.Snapshot().Presets; got != 2 {
		t.Errorf("Presets = %d, want 2", got)
	}
}
