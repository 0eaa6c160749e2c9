package core

// Size describes the dimensions of the paint grid.
type Size struct {
	W int
	H int
}

// Event is a single input notification delivered by the host. Coordinates on
// pointer events are cell coordinates, already mapped from window pixels by
// the host side.
type Event interface {
	isEvent()
}

// Terminate asks the loop to stop. It is the only way to end event handling.
type Terminate struct{}

// PointerMove reports the cursor entering cell (X, Y).
type PointerMove struct {
	X int
	Y int
}

// PointerButton reports a pointer button transition. Button 0 is the primary
// (paint) button, button 1 the secondary (erase) button.
type PointerButton struct {
	Button int
	Down   bool
}

// Key reports a keyboard transition. Code is the character produced by the
// key, so digit keys carry '0' through '9'.
type Key struct {
	Code rune
	Down bool
}

func (Terminate) isEvent()     {}
func (PointerMove) isEvent()   {}
func (PointerButton) isEvent() {}
func (Key) isEvent()           {}
