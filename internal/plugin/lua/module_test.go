package lua

import (
	"strings"
	"testing"

	glua "github.com/yuin/gopher-lua"

	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/agent"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

func newModuleState(t *testing.T, scene agent.Scene) (*State, *agent.Agent) {
	t.Helper()

	a := agent.New(scene)
	state := NewState()
	t.Cleanup(func() { state.Close() })

	if err := Install(state, a); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	return state, a
}

func TestModulePreset(t *testing.T) {
	state, a := newModuleState(t, agent.Scene3D)

	if err := state.DoString(`dandelion.preset("drag-arcball")`); err != nil {
		t.Fatalf("preset error = %v", err)
	}

	want := agent.New(agent.Scene3D)
	want.DragToArcball()
	if !a.MotionProfile(action.Eye).Equal(want.MotionProfile(action.Eye)) {
		t.Error("eye motion profile differs from DragToArcball")
	}
	if !a.ClickProfile(action.Frame).Equal(want.ClickProfile(action.Frame)) {
		t.Error("frame click profile differs from DragToArcball")
	}

	err := state.DoString(`dandelion.preset("orbit")`)
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("preset(orbit) error = %v, want unknown preset", err)
	}
}

func TestModulePresets(t *testing.T) {
	state, _ := newModuleState(t, agent.Scene3D)

	if err := state.DoString(`names = dandelion.presets()`); err != nil {
		t.Fatalf("presets error = %v", err)
	}
	tbl, ok := state.GetGlobal("names").(*glua.LTable)
	if !ok {
		t.Fatalf("presets() returned %T, want table", state.GetGlobal("names"))
	}
	if tbl.Len() != len(agent.Presets) {
		t.Errorf("presets() len = %d, want %d", tbl.Len(), len(agent.Presets))
	}
	if got := tbl.RawGetInt(1); got != glua.LString("drag-arcball") {
		t.Errorf("presets()[1] = %v, want drag-arcball", got)
	}
}

func TestModuleBind(t *testing.T) {
	state, a := newModuleState(t, agent.Scene3D)

	err := state.DoString(`
		dandelion.bind("eye", "Ctrl+Right", "DRIVE")
		dandelion.bind("eye", "Shift", "rotate")
		dandelion.bind("frame", "Wheel", "SCALE")
		dandelion.bind("frame", "Left", "ALIGN_FRAME", 2)
	`)
	if err != nil {
		t.Fatalf("bind error = %v", err)
	}

	if got, ok := a.ButtonAction(action.Eye, shortcut.ModCtrl, shortcut.RightID); !ok || got != action.DOF2Drive {
		t.Errorf("eye Ctrl+Right = %v, %v, want DRIVE", got, ok)
	}
	if got, ok := a.GestureAction(action.Eye, shortcut.ModShift); !ok || got != action.DOF2Rotate {
		t.Errorf("eye Shift gesture = %v, %v, want ROTATE", got, ok)
	}
	if got, ok := a.WheelAction(action.Frame, 0); !ok || got != action.DOF1Scale {
		t.Errorf("frame wheel = %v, %v, want SCALE", got, ok)
	}
	if got, ok := a.ClickAction(action.Frame, 0, shortcut.LeftID, 2); !ok || got != action.ClickAlignFrame {
		t.Errorf("frame double click = %v, %v, want ALIGN_FRAME", got, ok)
	}
}

func TestModuleBindErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"target", `dandelion.bind("world", "Left", "ROTATE")`, "unknown target"},
		{"shortcut", `dandelion.bind("eye", "Hyper+Left", "ROTATE")`, "shortcut"},
		{"action", `dandelion.bind("eye", "Left", "WARP")`, "unknown action"},
		{"wheel two-axis", `dandelion.bind("eye", "Wheel", "LOOK_AROUND")`, "unknown action"},
		{"click on wheel", `dandelion.bind("eye", "Wheel", "SHOW_ALL", 1)`, "needs a button"},
		{"missing arg", `dandelion.bind("eye", "Left")`, "bad argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, a := newModuleState(t, agent.Scene3D)

			err := state.DoString(tt.code)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
			for _, target := range action.Targets {
				if n := len(a.Bindings(target)); n != 0 {
					t.Errorf("%s has %d bindings after failed bind", target, n)
				}
			}
		})
	}
}

func TestModuleUnbindAndAction(t *testing.T) {
	state, _ := newModuleState(t, agent.Scene3D)

	err := state.DoString(`
		dandelion.preset("drag-arcball")
		before = dandelion.action("eye", "Left")
		wheel = dandelion.action("eye", "Wheel")
		click = dandelion.action("eye", "Left", 2)
		dandelion.unbind("eye", "Left")
		dandelion.unbind("eye", "Left", 2)
		after = dandelion.action("eye", "Left")
		afterClick = dandelion.action("eye", "Left", 2)
		gesture = dandelion.action("frame", "None")
	`)
	if err != nil {
		t.Fatalf("script error = %v", err)
	}

	tests := []struct {
		global string
		want   glua.LValue
	}{
		{"before", glua.LString("ROTATE")},
		{"wheel", glua.LString("TRANSLATE_Z")},
		{"click", glua.LString("ALIGN_FRAME")},
		{"after", glua.LNil},
		{"afterClick", glua.LNil},
		{"gesture", glua.LNil},
	}

	for _, tt := range tests {
		if got := state.GetGlobal(tt.global); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.global, got, tt.want)
		}
	}
}

func TestModuleBindings(t *testing.T) {
	state, a := newModuleState(t, agent.Scene3D)
	a.SetButtonBinding(action.Frame, 0, shortcut.LeftID, action.DOF2Rotate)
	a.SetClickBinding(action.Frame, 0, shortcut.LeftID, 2, action.ClickAlignFrame)

	err := state.DoString(`
		list = dandelion.bindings("frame")
		n = #list
		first = list[1].action
		kind = list[2].kind
		clicks = list[2].clicks
	`)
	if err != nil {
		t.Fatalf("script error = %v", err)
	}

	checks := map[string]glua.LValue{
		"n":      glua.LNumber(2),
		"first":  glua.LString("ROTATE"),
		"kind":   glua.LString("click"),
		"clicks": glua.LNumber(2),
	}
	for name, want := range checks {
		if got := state.GetGlobal(name); got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestModuleClear(t *testing.T) {
	state, a := newModuleState(t, agent.Scene3D)
	a.DragToArcball()

	if err := state.DoString(`dandelion.clear("eye")`); err != nil {
		t.Fatalf("clear(eye) error = %v", err)
	}
	if n := len(a.Bindings(action.Eye)); n != 0 {
		t.Errorf("eye has %d bindings after clear(eye)", n)
	}
	if n := len(a.Bindings(action.Frame)); n == 0 {
		t.Error("clear(eye) removed frame bindings")
	}

	if err := state.DoString(`dandelion.clear()`); err != nil {
		t.Fatalf("clear() error = %v", err)
	}
	if n := len(a.Bindings(action.Frame)); n != 0 {
		t.Errorf("frame has %d bindings after clear()", n)
	}
}

func TestModuleSensitivity(t *testing.T) {
	state, a := newModuleState(t, agent.Scene3D)

	err := state.DoString(`
		x0, y0 = dandelion.sensitivity()
		x1, y1 = dandelion.sensitivity(2)
		x2, y2 = dandelion.sensitivity(nil, -0.5)
	`)
	if err != nil {
		t.Fatalf("script error = %v", err)
	}

	checks := map[string]float64{
		"x0": 1, "y0": 1,
		"x1": 2, "y1": 1,
		"x2": 2, "y2": -0.5,
	}
	for name, want := range checks {
		if got := state.GetGlobal(name); got != glua.LNumber(want) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	if a.XSensitivity() != 2 || a.YSensitivity() != -0.5 {
		t.Errorf("sensitivities = (%v, %v), want (2, -0.5)", a.XSensitivity(), a.YSensitivity())
	}
}

func TestModuleIs3D(t *testing.T) {
	tests := []struct {
		scene agent.Scene
		want  glua.LValue
	}{
		{agent.Scene3D, glua.LTrue},
		{agent.Scene2D, glua.LFalse},
	}

	for _, tt := range tests {
		state, _ := newModuleState(t, tt.scene)
		if err := state.DoString(`r = dandelion.is3d()`); err != nil {
			t.Fatalf("is3d error = %v", err)
		}
		if got := state.GetGlobal("r"); got != tt.want {
			t.Errorf("is3d() = %v, want %v", got, tt.want)
		}
	}
}
