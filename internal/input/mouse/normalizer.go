package mouse

import (
	"sync"

	"github.com/remixlab/dandelion/internal/input/agent"
	"github.com/remixlab/dandelion/internal/input/shortcut"
)

// Normalizer turns raw mouse events into agent events.
type Normalizer struct {
	mu     sync.Mutex
	config Config

	click *clickTracker
	drag  dragTracker
}

// NewNormalizer creates a new normalizer with the given configuration.
func NewNormalizer(config Config) *Normalizer {
	return &Normalizer{
		config: config,
		click:  newClickTracker(config.DoubleClickTime, config.DoubleClickDistance, config.MaxClicks),
	}
}

// Normalize processes a raw event. ok is false when the event produces no
// agent event: releases, horizontal scrolls, and the first motion before
// any position is known.
func (n *Normalizer) Normalize(event Event) (agent.Event, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch event.Action {
	case ActionPress:
		if event.Button.IsScroll() {
			return n.scroll(event)
		}
		return n.press(event)
	case ActionRelease:
		n.drag.end()
		n.drag.moveTo(event.Position)
	case ActionMove:
		return n.motion(event, shortcut.NoID)
	case ActionDrag:
		button := event.Button
		if button == ButtonNone {
			button = n.drag.button
		}
		return n.motion(event, button.ID())
	}

	return agent.Event{}, false
}

func (n *Normalizer) press(event Event) (agent.Event, bool) {
	id := event.Button.ID()
	if id == shortcut.NoID {
		return agent.Event{}, false
	}

	clicks := n.click.recordClick(event.Button, event.Position, event.Timestamp)
	n.drag.start(event.Position, event.Button)

	return agent.Event{
		Kind:      agent.KindClick,
		ID:        id,
		Modifiers: event.Modifiers,
		Clicks:    clicks,
	}, true
}

func (n *Normalizer) motion(event Event, id shortcut.ID) (agent.Event, bool) {
	delta, ok := n.drag.moveTo(event.Position)
	if !ok {
		return agent.Event{}, false
	}

	return agent.Event{
		Kind:      agent.KindMotion,
		ID:        id,
		Modifiers: event.Modifiers,
		Delta:     []float64{float64(delta.X), float64(delta.Y)},
	}, true
}

func (n *Normalizer) scroll(event Event) (agent.Event, bool) {
	delta, ok := wheelDelta(event.Button, n.config)
	if !ok {
		return agent.Event{}, false
	}

	return agent.Event{
		Kind:      agent.KindWheel,
		ID:        shortcut.WheelID,
		Modifiers: event.Modifiers,
		Delta:     []float64{delta},
	}, true
}

// Reset clears all normalizer state.
func (n *Normalizer) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.click.reset()
	n.drag.reset()
}

// IsDragging returns true if a button is held.
func (n *Normalizer) IsDragging() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.drag.active
}

// DragState returns the current drag state.
func (n *Normalizer) DragState() DragState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.drag.state()
}
