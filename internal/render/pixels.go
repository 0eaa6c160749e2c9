package render

import "image/color"

// EntryColor converts a four-byte RGBA palette entry into a color value.
// Short slices yield transparent black.
func EntryColor(entry []byte) color.RGBA {
	if len(entry) < 4 {
		return color.RGBA{}
	}
	return color.RGBA{R: entry[0], G: entry[1], B: entry[2], A: entry[3]}
}
