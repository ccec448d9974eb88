package term

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/remixlab/dandelion/internal/input/action"
	"github.com/remixlab/dandelion/internal/input/agent"
)

// DefaultHistory is the number of dispatch lines a View keeps.
const DefaultHistory = 200

var (
	styleHeader = tcell.StyleDefault.Bold(true).Reverse(true)
	styleEye    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleFrame  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleMiss   = tcell.StyleDefault.Dim(true)
	styleHelp   = tcell.StyleDefault.Dim(true).Italic(true)
)

// Line is one entry of the view history.
type Line struct {
	Text   string
	Target action.Target
	// Miss is set when no target received an action.
	Miss bool
}

// View renders the dispatch history below a status header.
type View struct {
	mu      sync.Mutex
	screen  tcell.Screen
	max     int
	lines   []Line
	status  string
	message string
}

// NewView creates a view drawing to screen, keeping up to history lines.
// A non-positive history selects DefaultHistory.
func NewView(screen tcell.Screen, history int) *View {
	if history <= 0 {
		history = DefaultHistory
	}
	return &View{screen: screen, max: history}
}

// Record adds a line per dispatch of ev, or a single miss line when ds is
// empty.
func (v *View) Record(ev agent.Event, ds []agent.Dispatch) {
	v.mu.Lock()
	defer v.mu.Unlock()

	in := describe(ev)
	if len(ds) == 0 {
		v.push(Line{Text: in + " -> unbound", Miss: true})
		return
	}
	for _, d := range ds {
		text := fmt.Sprintf("%s -> %s %s", in, d.Target, d.Action)
		if len(d.Delta) > 0 {
			text += " " + formatDelta(d.Delta)
		}
		v.push(Line{Text: text, Target: d.Target})
	}
}

func (v *View) push(l Line) {
	v.lines = append(v.lines, l)
	if over := len(v.lines) - v.max; over > 0 {
		v.lines = append(v.lines[:0], v.lines[over:]...)
	}
}

// SetStatus sets the header text.
func (v *View) SetStatus(s string) {
	v.mu.Lock()
	v.status = s
	v.mu.Unlock()
}

// SetMessage sets the one-line message shown under the header, e.g. a
// reload error. An empty message hides it.
func (v *View) SetMessage(s string) {
	v.mu.Lock()
	v.message = s
	v.mu.Unlock()
}

// Clear drops the history.
func (v *View) Clear() {
	v.mu.Lock()
	v.lines = v.lines[:0]
	v.mu.Unlock()
}

// Lines returns a copy of the history, oldest first.
func (v *View) Lines() []Line {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Line(nil), v.lines...)
}

// Draw renders the header and as many recent lines as fit, newest at the
// bottom, then shows the screen.
func (v *View) Draw() {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	drawLine(s, 0, padRight(v.status, w), styleHeader, w)
	top := 1
	if v.message != "" {
		drawLine(s, top, v.message, tcell.StyleDefault.Foreground(tcell.ColorRed), w)
		top++
	}
	drawLine(s, h-1, "q quit  1-6 preset  c clear  r reset", styleHelp, w)

	rows := h - 1 - top
	start := max(len(v.lines)-rows, 0)
	for i, l := range v.lines[start:] {
		drawLine(s, top+i, l.Text, lineStyle(l), w)
	}

	s.Show()
}

func lineStyle(l Line) tcell.Style {
	switch {
	case l.Miss:
		return styleMiss
	case l.Target == action.Frame:
		return styleFrame
	default:
		return styleEye
	}
}

func drawLine(s tcell.Screen, y int, text string, style tcell.Style, width int) {
	x := 0
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func padRight(s string, w int) string {
	if n := w - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// describe formats the input side of a history line.
func describe(ev agent.Event) string {
	switch ev.Kind {
	case agent.KindClick:
		return fmt.Sprintf("click %s x%d", ev.ClickShortcut().Shortcut(), ev.Clicks)
	case agent.KindWheel:
		return fmt.Sprintf("wheel %s %s", ev.Shortcut(), formatDelta(ev.Delta))
	default:
		return fmt.Sprintf("motion %s %s", ev.Shortcut(), formatDelta(ev.Delta))
	}
}

func formatDelta(d []float64) string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
