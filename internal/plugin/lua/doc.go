// Package lua runs binding scripts in a restricted gopher-lua state.
//
// A State opens only the base, table, string and math libraries and strips
// the loaders that reach the file system. Scripts drive an agent through
// the "dandelion" module installed by Install:
//
//	dandelion.preset("move-arcball")
//	dandelion.bind("eye", "Ctrl+Right", "DRIVE")
//	dandelion.bind("frame", "Left", "ALIGN_FRAME", 2)
//	dandelion.unbind("eye", "Wheel")
//	local x, y = dandelion.sensitivity(2, 1)
//
// Execution is bounded by a timeout enforced through the state's context.
package lua
