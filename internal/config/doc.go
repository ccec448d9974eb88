// Package config loads, validates and applies binding configuration.
//
// A configuration names an optional preset, optional sensitivities and an
// ordered list of binding edits:
//
//	preset = "drag-arcball"
//
//	[sensitivity]
//	x = 1.5
//	y = -1.0
//
//	[[bindings]]
//	target = "eye"
//	shortcut = "Shift+Left"
//	action = "ZOOM_ON_REGION"
//
//	[[bindings]]
//	target = "frame"
//	shortcut = "Left"
//	clicks = 3
//	action = "CENTER_SCENE"
//
//	[[bindings]]
//	target = "eye"
//	shortcut = "Alt"
//	remove = true
//
// TOML, YAML and JSON files are accepted; the format is chosen by file
// extension. The kind of each binding is inferred from its shortcut: a
// positive click count makes a click binding, the wheel makes a wheel
// binding with a one-axis action, a modifier-only shortcut makes a gesture
// binding and anything else a button binding. The action "NULL" binds the
// null action, which shadows a shortcut without dispatching anything.
//
// # Basic Usage
//
//	cfg, err := config.Load("bindings.toml", config.WithEnv(loader.DefaultEnvPrefix))
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Apply(agent); err != nil {
//	    return err
//	}
//
// Apply validates the whole configuration before changing the agent, so a
// failing configuration leaves the agent untouched.
//
// Export writes the current profiles of an agent as JSON that Load accepts
// back.
package config
