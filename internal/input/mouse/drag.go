package mouse

// dragTracker remembers the held button and the last pointer position, so
// every motion can be turned into a relative delta.
type dragTracker struct {
	active bool
	button Button
	origin Position
	last   Position
	// known is false until a first position has been seen.
	known bool
}

func (t *dragTracker) start(pos Position, button Button) {
	t.active, t.button, t.origin = true, button, pos
	t.moveTo(pos)
}

// moveTo records pos and returns the delta from the previous position.
// ok is false when there is no previous position.
func (t *dragTracker) moveTo(pos Position) (delta Position, ok bool) {
	delta, ok = pos.Sub(t.last), t.known
	t.last, t.known = pos, true
	return delta, ok
}

func (t *dragTracker) end() {
	t.active, t.button, t.origin = false, ButtonNone, Position{}
}

func (t *dragTracker) reset() {
	*t = dragTracker{}
}

// DragState is a snapshot of the held button.
type DragState struct {
	Active bool
	Button Button
	// Origin is where the button went down.
	Origin Position
	// Current is the last pointer position, held or not.
	Current Position
}

func (t *dragTracker) state() DragState {
	return DragState{Active: t.active, Button: t.button, Origin: t.origin, Current: t.last}
}
