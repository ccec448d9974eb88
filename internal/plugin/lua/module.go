package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/remixlab/dandelion/internal/config"
	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/agent"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

// ModuleName is the global table the binding functions are installed under.
const ModuleName = "dandelion"

// Install registers the binding module for a in s.
func Install(s *State, a *agent.Agent) error {
	m := &module{agent: a}
	return s.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"preset":      m.preset,
		"presets":     m.presets,
		"bind":        m.bind,
		"unbind":      m.unbind,
		"action":      m.action,
		"bindings":    m.bindings,
		"clear":       m.clear,
		"sensitivity": m.sensitivity,
		"is3d":        m.is3d,
	})
}

type module struct {
	agent *agent.Agent
}

// preset(name)
func (m *module) preset(L *lua.LState) int {
	p, err := agent.ParsePreset(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	if err := m.agent.ApplyPreset(p); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// presets() -> {name, ...}
func (m *module) presets(L *lua.LState) int {
	t := L.CreateTable(len(agent.Presets), 0)
	for _, p := range agent.Presets {
		t.Append(lua.LString(p.String()))
	}
	L.Push(t)
	return 1
}

// bind(target, shortcut, action [, clicks])
func (m *module) bind(L *lua.LState) int {
	b := config.Binding{
		Target:   L.CheckString(1),
		Shortcut: L.CheckString(2),
		Action:   L.CheckString(3),
		Clicks:   L.OptInt(4, 0),
	}
	if err := b.Apply(m.agent); err != nil {
		L.RaiseError("bind: %v", err)
	}
	return 0
}

// unbind(target, shortcut [, clicks])
func (m *module) unbind(L *lua.LState) int {
	b := config.Binding{
		Target:   L.CheckString(1),
		Shortcut: L.CheckString(2),
		Clicks:   L.OptInt(3, 0),
		Remove:   true,
	}
	if err := b.Apply(m.agent); err != nil {
		L.RaiseError("unbind: %v", err)
	}
	return 0
}

// action(target, shortcut [, clicks]) -> name or nil
func (m *module) action(L *lua.LState) int {
	target, sc, clicks := m.checkKey(L)

	var (
		act action.Action
		ok  bool
	)
	switch {
	case clicks > 0:
		act, ok = m.agent.ClickAction(target, sc.Mask, sc.ID, clicks)
	case sc.IsWheel():
		act, ok = m.agent.WheelAction(target, sc.Mask)
	case sc.IsGesture():
		act, ok = m.agent.GestureAction(target, sc.Mask)
	default:
		act, ok = m.agent.ButtonAction(target, sc.Mask, sc.ID)
	}

	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(act.String()))
	return 1
}

func (m *module) checkKey(L *lua.LState) (action.Target, shortcut.Shortcut, int) {
	target, err := action.ParseTarget(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	sc, err := shortcut.Parse(L.CheckString(2))
	if err != nil {
		L.ArgError(2, err.Error())
	}
	clicks := L.OptInt(3, 0)
	if clicks < 0 {
		L.ArgError(3, "negative click count")
	}
	return target, sc, clicks
}

// bindings(target) -> {{kind=, shortcut=, clicks=, action=}, ...}
func (m *module) bindings(L *lua.LState) int {
	target, err := action.ParseTarget(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	list := m.agent.Bindings(target)
	t := L.CreateTable(len(list), 0)
	for _, b := range list {
		row := L.CreateTable(0, 4)
		row.RawSetString("kind", lua.LString(b.Kind.String()))
		row.RawSetString("shortcut", lua.LString(b.Shortcut.String()))
		row.RawSetString("action", lua.LString(b.Action.String()))
		if b.Kind == agent.KindClick {
			row.RawSetString("clicks", lua.LNumber(b.Clicks))
		}
		t.Append(row)
	}
	L.Push(t)
	return 1
}

// clear([target])
func (m *module) clear(L *lua.LState) int {
	if L.GetTop() == 0 {
		m.agent.RemoveBindings()
		return 0
	}
	target, err := action.ParseTarget(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	m.agent.RemoveTargetBindings(target)
	return 0
}

// sensitivity([x, y]) -> x, y
func (m *module) sensitivity(L *lua.LState) int {
	if L.GetTop() >= 1 && L.Get(1) != lua.LNil {
		m.agent.SetXSensitivity(float64(L.CheckNumber(1)))
	}
	if L.GetTop() >= 2 && L.Get(2) != lua.LNil {
		m.agent.SetYSensitivity(float64(L.CheckNumber(2)))
	}
	L.Push(lua.LNumber(m.agent.XSensitivity()))
	L.Push(lua.LNumber(m.agent.YSensitivity()))
	return 2
}

// is3d() -> bool
func (m *module) is3d(L *lua.LState) int {
	L.Push(lua.LBool(m.agent.Scene().Is3D()))
	return 1
}
