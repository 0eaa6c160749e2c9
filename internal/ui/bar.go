//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"gridpaint/internal/paint"
	"gridpaint/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// BarHeight is the height of the palette bar in screen pixels.
const BarHeight = 28

const (
	swatchPad = 4
	highlight = 2
)

// PaletteBar renders the ten palette swatches below the canvas, keeps the
// current selection framed, and lets the user pick a color by clicking a
// swatch.
type PaletteBar struct {
	palette *paint.Palette
	state   *paint.InputState
	width   int
	offsetY int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewPaletteBar constructs a bar spanning width screen pixels.
func NewPaletteBar(p *paint.Palette, s *paint.InputState, width int) *PaletteBar {
	b := &PaletteBar{palette: p, state: s, width: width}
	b.pixel = ebiten.NewImage(1, 1)
	b.pixel.Fill(color.White)
	return b
}

// Update handles swatch clicks. offsetY is the bar's top edge in screen
// coordinates.
func (b *PaletteBar) Update(offsetY int) {
	if b == nil {
		return
	}
	b.offsetY = offsetY
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || mx >= b.width || my < offsetY || my >= offsetY+BarHeight {
		return
	}
	sw := b.width / paint.Entries
	if sw <= 0 {
		return
	}
	idx := mx / sw
	if idx > paint.Entries-1 {
		idx = paint.Entries - 1
	}
	b.state.SelectDigit(idx)
}

// Draw paints the bar anchored at its offset.
func (b *PaletteBar) Draw(screen *ebiten.Image) {
	if b == nil || b.width <= 0 {
		return
	}
	if b.panel == nil || b.panel.Bounds().Dx() != b.width {
		b.panel = ebiten.NewImage(b.width, BarHeight)
	}
	b.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	sw := b.width / paint.Entries
	for i := 0; i < paint.Entries; i++ {
		rect := image.Rect(i*sw+swatchPad, swatchPad, (i+1)*sw-swatchPad, BarHeight-swatchPad)
		if i == b.state.SelectedIndex() {
			frame := rect.Inset(-highlight)
			b.fillRect(frame, color.RGBA{R: 230, G: 230, B: 240, A: 255})
		}
		col := render.EntryColor(b.palette.Entry(i))
		b.fillRect(rect, col)
		b.drawLabel(rect, strconv.Itoa(i), col)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(b.offsetY))
	screen.DrawImage(b.panel, op)
}

func (b *PaletteBar) fillRect(rect image.Rectangle, col color.RGBA) {
	if b.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	b.panel.DrawImage(b.pixel, op)
}

func (b *PaletteBar) drawLabel(rect image.Rectangle, label string, swatch color.RGBA) {
	face := basicfont.Face7x13
	fg := color.RGBA{R: 20, G: 20, B: 24, A: 255}
	if luminance(swatch) < 128 {
		fg = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	}
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(b.panel, label, face, x, y, fg)
}

func luminance(c color.RGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
