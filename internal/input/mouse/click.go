package mouse

import "time"

// clickTracker counts presses of the same button into click sequences.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance int
	maxClicks   int

	lastButton Button
	lastPos    Position
	lastTime   time.Time
	lastCount  int
}

func newClickTracker(maxTime time.Duration, maxDistance, maxClicks int) *clickTracker {
	return &clickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
		maxClicks:   max(maxClicks, 1),
	}
}

// recordClick records a press and returns its click count, wrapping back
// to 1 after maxClicks. A zero timestamp is replaced by time.Now().
func (t *clickTracker) recordClick(button Button, pos Position, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.continues(button, pos, timestamp) {
		t.lastCount++
		if t.lastCount > t.maxClicks {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastButton = button
	t.lastPos = pos
	t.lastTime = timestamp

	return t.lastCount
}

// continues reports whether a press extends the current sequence.
func (t *clickTracker) continues(button Button, pos Position, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() || button != t.lastButton {
		return false
	}

	// Negative elapsed time means clock skew: start over
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	return pos.Distance(t.lastPos) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastButton = ButtonNone
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = Position{}
}
