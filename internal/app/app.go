//go:build ebiten

package app

import (
	"gridpaint/internal/core"
	"gridpaint/internal/paint"
	"gridpaint/internal/render"
	"gridpaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0,
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
	ebiten.KeyDigit7,
	ebiten.KeyDigit8,
	ebiten.KeyDigit9,
}

// Game adapts the paint loop to the ebiten.Game interface. Each frame it
// translates the host's input state into events and hands them to the
// dispatcher one at a time, preserving delivery order.
type Game struct {
	loop    *paint.Loop
	canvas  *paint.Canvas
	painter *render.CanvasPainter
	bar     *ui.PaletteBar

	scale int

	lastX, lastY int
	haveCell     bool
}

// New constructs a Game over the provided palette and canvas.
func New(p *paint.Palette, c *paint.Canvas, scale int) *Game {
	size := c.Size()
	painter := render.NewCanvasPainter(size.W, size.H)
	c.SetRedraw(painter.Invalidate)
	loop := paint.NewLoop(p, c)
	return &Game{
		loop:    loop,
		canvas:  c,
		painter: painter,
		bar:     ui.NewPaletteBar(p, loop.State(), size.W*scale),
		scale:   scale,
	}
}

// Update gathers input transitions and dispatches them as events.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.canvas.Clear()
	}

	halt := false
	dispatch := func(ev core.Event) {
		if g.loop.Dispatch(ev) {
			halt = true
		}
	}

	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			dispatch(core.Key{Code: rune('0' + i), Down: true})
		}
		if inpututil.IsKeyJustReleased(key) {
			dispatch(core.Key{Code: rune('0' + i), Down: false})
		}
	}

	clicked := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		dispatch(core.PointerButton{Button: 0, Down: true})
		clicked = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		dispatch(core.PointerButton{Button: 0, Down: false})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		dispatch(core.PointerButton{Button: 1, Down: true})
		clicked = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		dispatch(core.PointerButton{Button: 1, Down: false})
	}

	if x, y, ok := g.cursorCell(); ok {
		// A click paints its own cell even without movement.
		if clicked || !g.haveCell || x != g.lastX || y != g.lastY {
			dispatch(core.PointerMove{X: x, Y: y})
		}
		g.lastX, g.lastY, g.haveCell = x, y, true
	} else {
		g.haveCell = false
	}

	g.bar.Update(g.canvas.Size().H * g.scale)

	if halt {
		return ebiten.Termination
	}
	return nil
}

// cursorCell maps the cursor position to cell coordinates the way the host
// event source does: divide by scale, clamp to the last cell. The bool is
// false when the cursor is outside the canvas area (over the palette bar
// or off-window).
func (g *Game) cursorCell() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	size := g.canvas.Size()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		return 0, 0, false
	}
	x := mx / g.scale
	if x > size.W-1 {
		x = size.W - 1
	}
	y := my / g.scale
	if y > size.H-1 {
		y = size.H - 1
	}
	return x, y, true
}

// Draw presents the canvas and the palette bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.canvas.Pixels(), g.scale)
	g.bar.Draw(screen)
}

// Layout returns the logical screen size: the scaled canvas plus the bar.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.canvas.Size()
	return size.W * g.scale, size.H*g.scale + ui.BarHeight
}
