// Package shortcut defines the input gestures that bindings are keyed by.
//
// A Shortcut combines a modifier mask with a device id (a mouse button,
// the wheel, or NoID for a button-less gesture). A ClickShortcut adds a
// click count. Both are plain comparable values, so they can be used
// directly as map keys; two shortcuts match only when every field is
// equal. There is no prefix or wildcard matching: a gesture shortcut
// (NoID) never matches an event that carries a button.
//
// # Text Form
//
// Shortcuts can be written as "+"-separated tokens, modifiers first and
// at most one device last:
//
//	"Left"             - left button, no modifiers
//	"Shift+Right"      - Shift held while dragging with the right button
//	"Ctrl+Shift+Wheel" - wheel with Ctrl and Shift
//	"Alt"              - button-less gesture with Alt held
//	"None"             - bare button-less gesture
//
// Parse and String round-trip.
package shortcut
