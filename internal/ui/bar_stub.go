//go:build !ebiten

package ui

import "gridpaint/internal/paint"

// BarHeight is the height of the palette bar in screen pixels.
const BarHeight = 28

// PaletteBar is a no-op placeholder for headless builds.
type PaletteBar struct{}

// NewPaletteBar returns nil in the headless build.
func NewPaletteBar(*paint.Palette, *paint.InputState, int) *PaletteBar { return nil }

// Update is a no-op in the headless build.
func (b *PaletteBar) Update(int) {}

// Draw is a no-op in the headless build.
func (b *PaletteBar) Draw(any) {}
