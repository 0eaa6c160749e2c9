package paint

// BrushMode says what a pointer move should write, derived from the last
// pointer-button event.
type BrushMode int

const (
	// BrushNone means moves paint nothing.
	BrushNone BrushMode = iota
	// BrushPaint means moves write the selected color.
	BrushPaint
	// BrushErase means moves write the erase color.
	BrushErase
)

// InputState tracks the current color selection and brush mode across
// events. The brush mode is ordinary state: it is updated on every
// pointer-button event and read, not consumed, on every move, so a drag
// keeps painting until the button is released.
type InputState struct {
	palette  *Palette
	selected []byte
	index    int
	brush    BrushMode
}

// NewInputState starts with palette entry 0 selected and no brush active.
func NewInputState(p *Palette) *InputState {
	return &InputState{palette: p, selected: p.Entry(0)}
}

// SelectDigit switches the selection to the given palette index. Values
// outside [0, 9] leave the selection unchanged.
func (s *InputState) SelectDigit(digit int) {
	if digit < 0 || digit > Entries-1 {
		return
	}
	s.selected = s.palette.Entry(digit)
	s.index = digit
}

// Selected returns the currently selected color entry.
func (s *InputState) Selected() []byte { return s.selected }

// SelectedIndex returns the palette index of the current selection.
func (s *InputState) SelectedIndex() int { return s.index }

// SetBrush derives the brush mode from a button transition and stores it.
// Only the primary button down yields BrushPaint and only the secondary
// button down yields BrushErase; every other combination, including any
// release, yields BrushNone.
func (s *InputState) SetBrush(button int, down bool) BrushMode {
	mode := BrushNone
	if down {
		switch button {
		case 0:
			mode = BrushPaint
		case 1:
			mode = BrushErase
		}
	}
	s.brush = mode
	return mode
}

// Brush returns the current brush mode.
func (s *InputState) Brush() BrushMode { return s.brush }
