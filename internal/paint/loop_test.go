package paint

import (
	"testing"

	"gridpaint/internal/core"
	"gridpaint/pkg/memblock"
)

// sliceSource replays a fixed event sequence, then terminates.
type sliceSource struct {
	events []core.Event
	next   int
}

func (s *sliceSource) PollEvent() core.Event {
	if s.next >= len(s.events) {
		return core.Terminate{}
	}
	ev := s.events[s.next]
	s.next++
	return ev
}

func newTestLoop(t *testing.T, w, h int) (*Loop, *Palette, *Canvas) {
	t.Helper()
	p, ok := Lookup("classic")
	if !ok {
		t.Fatal("classic palette missing")
	}
	c := NewCanvas(w, h)
	return NewLoop(p, c), p, c
}

func cellBytes(c *Canvas, x, y int) []byte {
	off := (y*c.Size().W + x) * EntrySize
	return c.Pixels()[off : off+EntrySize]
}

func TestDigitKeySelection(t *testing.T) {
	l, p, _ := newTestLoop(t, 8, 8)

	l.Dispatch(core.Key{Code: '3', Down: true})
	if &l.State().Selected()[0] != &p.Entry(3)[0] {
		t.Fatal("pressing '3' did not select entry 3")
	}

	// Key release is discarded.
	l.Dispatch(core.Key{Code: '7', Down: false})
	if l.State().SelectedIndex() != 3 {
		t.Fatalf("key release changed selection to %d", l.State().SelectedIndex())
	}

	// Codes on either side of the digit range are discarded; '/' is one
	// below '0' and would map to -1 without the lower-bound check.
	for _, code := range []rune{'/', ':', 'a', 'Z', ' ', '\n', 0} {
		l.Dispatch(core.Key{Code: code, Down: true})
		if l.State().SelectedIndex() != 3 {
			t.Fatalf("key %q changed selection to %d", code, l.State().SelectedIndex())
		}
	}
}

func TestPrimaryDragPaintsSelection(t *testing.T) {
	l, p, c := newTestLoop(t, 8, 8)
	redraws := 0
	c.SetRedraw(func() { redraws++ })

	l.Dispatch(core.Key{Code: '3', Down: true})
	l.Dispatch(core.PointerButton{Button: 0, Down: true})
	l.Dispatch(core.PointerMove{X: 2, Y: 5})

	if !memblock.Equal(cellBytes(c, 2, 5), p.Entry(3), EntrySize) {
		t.Fatalf("cell (2,5) = %v, want entry 3 %v", cellBytes(c, 2, 5), p.Entry(3))
	}
	if redraws != 1 {
		t.Fatalf("redraw requests = %d, want 1", redraws)
	}
}

func TestSecondaryDragErases(t *testing.T) {
	l, p, c := newTestLoop(t, 8, 8)

	l.Dispatch(core.Key{Code: '3', Down: true})
	l.Dispatch(core.PointerButton{Button: 1, Down: true})
	l.Dispatch(core.PointerMove{X: 1, Y: 1})

	if !memblock.Equal(cellBytes(c, 1, 1), p.EraseEntry(), EntrySize) {
		t.Fatalf("cell (1,1) = %v, want erase entry %v", cellBytes(c, 1, 1), p.EraseEntry())
	}
}

func TestHoverDoesNotPaint(t *testing.T) {
	l, _, c := newTestLoop(t, 8, 8)
	redraws := 0
	c.SetRedraw(func() { redraws++ })

	l.Dispatch(core.PointerMove{X: 4, Y: 4})

	for i, b := range c.Pixels() {
		if b != 0xFF {
			t.Fatalf("hover modified byte %d", i)
		}
	}
	if redraws != 0 {
		t.Fatalf("hover requested %d redraws", redraws)
	}
}

func TestDragPaintsEveryVisitedCell(t *testing.T) {
	l, p, c := newTestLoop(t, 8, 8)

	l.Dispatch(core.Key{Code: '5', Down: true})
	l.Dispatch(core.PointerButton{Button: 0, Down: true})
	path := [][2]int{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}
	for _, pt := range path {
		l.Dispatch(core.PointerMove{X: pt[0], Y: pt[1]})
	}
	l.Dispatch(core.PointerButton{Button: 0, Down: false})
	l.Dispatch(core.PointerMove{X: 7, Y: 7})

	for _, pt := range path {
		if !memblock.Equal(cellBytes(c, pt[0], pt[1]), p.Entry(5), EntrySize) {
			t.Fatalf("cell (%d,%d) not painted during drag", pt[0], pt[1])
		}
	}
	if !memblock.Equal(cellBytes(c, 7, 7), []byte{0xFF, 0xFF, 0xFF, 0xFF}, EntrySize) {
		t.Fatal("move after button release still painted")
	}
}

func TestUnknownButtonDiscarded(t *testing.T) {
	l, p, c := newTestLoop(t, 8, 8)

	l.Dispatch(core.Key{Code: '6', Down: true})
	l.Dispatch(core.PointerButton{Button: 0, Down: true})
	l.Dispatch(core.PointerButton{Button: 2, Down: true})
	l.Dispatch(core.PointerMove{X: 3, Y: 3})

	// Button 2 must not disturb the paint mode set by button 0.
	if l.State().Brush() != BrushPaint {
		t.Fatalf("brush = %v after middle button, want BrushPaint", l.State().Brush())
	}
	if !memblock.Equal(cellBytes(c, 3, 3), p.Entry(6), EntrySize) {
		t.Fatal("move after middle button did not paint with the selection")
	}
}

func TestRunHaltsOnTerminate(t *testing.T) {
	l, p, c := newTestLoop(t, 8, 8)
	src := &sliceSource{events: []core.Event{
		core.Key{Code: '2', Down: true},
		core.PointerButton{Button: 0, Down: true},
		core.PointerMove{X: 0, Y: 0},
		core.Terminate{},
		// Never reached.
		core.PointerMove{X: 5, Y: 5},
	}}

	l.Run(src)

	if src.next != 4 {
		t.Fatalf("loop consumed %d events, want 4", src.next)
	}
	if !memblock.Equal(cellBytes(c, 0, 0), p.Entry(2), EntrySize) {
		t.Fatal("events before Terminate were not applied")
	}
}
