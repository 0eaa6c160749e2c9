package paint

import "gridpaint/internal/core"

// Source delivers input events one at a time. PollEvent blocks until the
// host has an event to hand over or wants the loop to stop.
type Source interface {
	PollEvent() core.Event
}

// Loop classifies input events and applies them to the input state and
// canvas. It is single-threaded: one event is fully handled before the next
// is looked at, and nothing here is safe for concurrent use.
type Loop struct {
	palette *Palette
	canvas  *Canvas
	state   *InputState
}

// NewLoop wires a dispatcher over the given palette and canvas, starting
// with entry 0 selected.
func NewLoop(p *Palette, c *Canvas) *Loop {
	return &Loop{palette: p, canvas: c, state: NewInputState(p)}
}

// State exposes the input state, for hosts that select colors out of band.
func (l *Loop) State() *InputState { return l.state }

// Dispatch handles a single event and reports whether the loop should halt.
// Invalid input never raises an error: key releases, non-digit key codes,
// and unknown button ids are all silently discarded.
func (l *Loop) Dispatch(ev core.Event) bool {
	switch ev := ev.(type) {
	case core.Terminate:
		return true
	case core.Key:
		if !ev.Down {
			return false
		}
		// Both bounds checked: the subtraction goes negative for codes
		// below '0'.
		digit := int(ev.Code) - '0'
		if digit < 0 || digit > Entries-1 {
			return false
		}
		l.state.SelectDigit(digit)
	case core.PointerButton:
		if ev.Button != 0 && ev.Button != 1 {
			return false
		}
		l.state.SetBrush(ev.Button, ev.Down)
	case core.PointerMove:
		switch l.state.Brush() {
		case BrushPaint:
			l.canvas.PaintCell(ev.X, ev.Y, l.state.Selected())
		case BrushErase:
			l.canvas.PaintCell(ev.X, ev.Y, l.palette.EraseEntry())
		}
	}
	return false
}

// Run polls and dispatches events until a Terminate event arrives.
func (l *Loop) Run(src Source) {
	for {
		if l.Dispatch(src.PollEvent()) {
			return
		}
	}
}
