package paint

import "image/color"

// Built-in palettes. Every set keeps black at index 9 so the erase brush
// behaves the same regardless of the selected palette.

func init() {
	Register("classic", [Entries]color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 230, G: 40, B: 55, A: 255},
		{R: 255, G: 160, B: 30, A: 255},
		{R: 250, G: 230, B: 50, A: 255},
		{R: 40, G: 180, B: 60, A: 255},
		{R: 60, G: 210, B: 220, A: 255},
		{R: 40, G: 80, B: 230, A: 255},
		{R: 160, G: 60, B: 220, A: 255},
		{R: 130, G: 130, B: 130, A: 255},
		{A: 255},
	})
	Register("gameboy", [Entries]color.RGBA{
		{R: 224, G: 248, B: 208, A: 255},
		{R: 200, G: 228, B: 180, A: 255},
		{R: 172, G: 208, B: 148, A: 255},
		{R: 136, G: 192, B: 112, A: 255},
		{R: 104, G: 168, B: 96, A: 255},
		{R: 72, G: 136, B: 80, A: 255},
		{R: 52, G: 104, B: 86, A: 255},
		{R: 34, G: 72, B: 62, A: 255},
		{R: 22, G: 48, B: 40, A: 255},
		{A: 255},
	})
	Register("grayscale", [Entries]color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 227, G: 227, B: 227, A: 255},
		{R: 199, G: 199, B: 199, A: 255},
		{R: 170, G: 170, B: 170, A: 255},
		{R: 142, G: 142, B: 142, A: 255},
		{R: 113, G: 113, B: 113, A: 255},
		{R: 85, G: 85, B: 85, A: 255},
		{R: 57, G: 57, B: 57, A: 255},
		{R: 28, G: 28, B: 28, A: 255},
		{A: 255},
	})
}
