// Package term is the tcell front end of the binding inspector.
//
// Input translates *tcell.EventMouse values, which report the full button
// state on every event, into the press, release, move, drag and scroll
// events the mouse normalizer expects. View keeps a short history of the
// resolved dispatches and draws it together with a status header. App ties
// a screen, an agent and both of these into an event loop.
package term
