package shortcut

import "testing"

func TestModifierValues(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want uint8
	}{
		{ModNone, 0},
		{ModShift, 1},
		{ModCtrl, 2},
		{ModMeta, 4},
		{ModAlt, 8},
		{ModAltGraph, 16},
	}

	for _, tt := range tests {
		if uint8(tt.mod) != tt.want {
			t.Errorf("%s = %d, want %d", tt.mod, tt.mod, tt.want)
		}
	}
}

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModShift | ModMeta, ModMeta, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	mod := ModNone.With(ModCtrl).With(ModShift)
	if !mod.Has(ModCtrl) || !mod.Has(ModShift) {
		t.Errorf("With() = %v, want Ctrl+Shift", mod)
	}

	mod = mod.Without(ModCtrl)
	if mod != ModShift {
		t.Errorf("Without(ModCtrl) = %v, want Shift", mod)
	}
	if mod.IsEmpty() {
		t.Error("IsEmpty() = true for Shift")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModShift | ModCtrl, "Ctrl+Shift"},
		{ModAlt | ModMeta, "Alt+Meta"},
		{ModAltGraph, "AltGr"},
		{Modifier(0x20), "Mod32"},
		{ModCtrl | Modifier(0x80), "Ctrl+Mod128"},
		{Modifier(0x60), "Mod32+Mod64"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  Modifier
	}{
		{"", ModNone},
		{"ctrl", ModCtrl},
		{"Ctrl+Shift", ModCtrl | ModShift},
		{"cmd+option", ModMeta | ModAlt},
		{"shift+bogus", ModShift},
		{"Mod32", Modifier(0x20)},
		{"Ctrl+mod128", ModCtrl | Modifier(0x80)},
		{"Mod1", ModShift},
		{"Mod3", ModNone},
		{"Mod256", ModNone},
	}

	for _, tt := range tests {
		if got := ParseModifiers(tt.input); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
