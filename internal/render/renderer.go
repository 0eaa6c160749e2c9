//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CanvasPainter presents the canvas RGBA buffer through a single ebiten
// image. The buffer is re-uploaded only after Invalidate, so untouched
// frames reuse the previous texture.
type CanvasPainter struct {
	w, h  int
	img   *ebiten.Image
	dirty bool
}

// NewCanvasPainter allocates a painter for a canvas of size w*h cells.
func NewCanvasPainter(w, h int) *CanvasPainter {
	cp := &CanvasPainter{w: w, h: h, dirty: true}
	cp.img = ebiten.NewImage(w, h)
	return cp
}

// Invalidate marks the buffer as changed; the next Blit re-uploads it.
// It is the redraw request issued by canvas writes.
func (cp *CanvasPainter) Invalidate() { cp.dirty = true }

// Blit uploads the buffer when dirty and draws it scaled onto dst.
func (cp *CanvasPainter) Blit(dst *ebiten.Image, pix []byte, scale int) {
	if len(pix) != 4*cp.w*cp.h {
		return
	}
	if cp.dirty {
		cp.img.ReplacePixels(pix)
		cp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the underlying image.
func (cp *CanvasPainter) Size() (int, int) { return cp.w, cp.h }
