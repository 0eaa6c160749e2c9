package paint

import (
	"gridpaint/internal/core"
	"gridpaint/pkg/memblock"
)

// Canvas is a fixed-size grid of color cells backed by a raw RGBA byte
// buffer in row-major order. Each cell is one EntrySize-byte color entry at
// offset (y*width + x) * EntrySize.
type Canvas struct {
	w, h        int
	pix         []byte
	checkBounds bool
	redraw      func()
}

// NewCanvas allocates a w*h canvas cleared to opaque white. Bounds checking
// on paint coordinates is enabled by default.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	c := &Canvas{w: w, h: h, pix: make([]byte, w*h*EntrySize), checkBounds: true}
	memblock.Fill(c.pix, len(c.pix), 0xFF)
	return c
}

// Size returns the grid dimensions.
func (c *Canvas) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// Pixels exposes the backing RGBA buffer for presentation.
func (c *Canvas) Pixels() []byte { return c.pix }

// SetRedraw installs the host's redraw request. It is invoked after every
// successful cell write; a nil fn disables the requests.
func (c *Canvas) SetRedraw(fn func()) { c.redraw = fn }

// SetBoundsCheck toggles coordinate validation on PaintCell. The original
// program trusted the host to deliver in-range coordinates and performed no
// check of its own; disabling the check restores that contract, and an
// out-of-range write then panics on the slice bounds instead of being
// dropped.
func (c *Canvas) SetBoundsCheck(on bool) { c.checkBounds = on }

func (c *Canvas) cellOffset(x, y int) int { return (y*c.w + x) * EntrySize }

// PaintCell copies the four-byte entry into cell (x, y) and requests a
// redraw. It reports false, leaving the buffer untouched, when bounds
// checking is enabled and (x, y) falls outside the grid.
func (c *Canvas) PaintCell(x, y int, entry []byte) bool {
	if c.checkBounds && (x < 0 || x >= c.w || y < 0 || y >= c.h) {
		return false
	}
	off := c.cellOffset(x, y)
	memblock.Copy(c.pix[off:off+EntrySize], entry, EntrySize)
	if c.redraw != nil {
		c.redraw()
	}
	return true
}

// Clear resets every cell to opaque white and requests a redraw.
func (c *Canvas) Clear() {
	memblock.Fill(c.pix, len(c.pix), 0xFF)
	if c.redraw != nil {
		c.redraw()
	}
}
