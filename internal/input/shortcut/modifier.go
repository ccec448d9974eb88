package shortcut

import (
	"strconv"
	"strings"
)

// Modifier is a bitset of keyboard modifiers held during an input event.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModAltGraph indicates the AltGr key.
	ModAltGraph

	// modNamed covers every modifier with a name of its own.
	modNamed = ModShift | ModCtrl | ModMeta | ModAlt | ModAltGraph
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Shift".
// Bits without a name are written as "Mod<bit value>", e.g. "Mod32".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModAltGraph) {
		parts = append(parts, "AltGr")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	for bit := modNamed + 1; bit != 0; bit <<= 1 {
		if m.Has(bit) {
			parts = append(parts, "Mod"+strconv.Itoa(int(bit)))
		}
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":     ModCtrl,
	"control":  ModCtrl,
	"alt":      ModAlt,
	"option":   ModAlt,
	"opt":      ModAlt,
	"altgr":    ModAltGraph,
	"altgraph": ModAltGraph,
	"shift":    ModShift,
	"meta":     ModMeta,
	"cmd":      ModMeta,
	"command":  ModMeta,
	"win":      ModMeta,
	"super":    ModMeta,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// "Mod<n>" names the single bit n. Returns ModNone if the name is not
// recognized.
func ModifierFromName(name string) Modifier {
	name = strings.ToLower(strings.TrimSpace(name))
	if m, ok := modifierNameMap[name]; ok {
		return m
	}
	if n, ok := strings.CutPrefix(name, "mod"); ok {
		v, err := strconv.ParseUint(n, 10, 8)
		if err == nil && v != 0 && v&(v-1) == 0 {
			return Modifier(v)
		}
	}
	return ModNone
}

// ParseModifiers parses a modifier string like "Ctrl+Alt".
// Unknown names are ignored.
func ParseModifiers(s string) Modifier {
	var result Modifier
	for _, part := range strings.Split(s, "+") {
		result = result.With(ModifierFromName(part))
	}
	return result
}
