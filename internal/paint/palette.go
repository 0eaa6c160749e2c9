package paint

import (
	"image/color"
	"sort"
)

const (
	// Entries is the fixed number of selectable colors.
	Entries = 10
	// EntrySize is the width of one color entry in bytes (RGBA).
	EntrySize = 4
	// EraseIndex is the palette slot used by the erase brush.
	EraseIndex = Entries - 1
)

// Palette holds ten four-byte RGBA entries in one backing array. Entries are
// addressed by index 0-9; index 9 is the erase color. The backing array is
// fixed at construction and never resized, so entry slices stay valid for
// the process lifetime.
type Palette struct {
	name string
	data [Entries * EntrySize]byte
}

// NewPalette builds a palette from ten RGBA colors.
func NewPalette(name string, colors [Entries]color.RGBA) *Palette {
	p := &Palette{name: name}
	for i, c := range colors {
		off := i * EntrySize
		p.data[off+0] = c.R
		p.data[off+1] = c.G
		p.data[off+2] = c.B
		p.data[off+3] = c.A
	}
	return p
}

// Name returns the palette identifier.
func (p *Palette) Name() string { return p.name }

// Entry returns the four-byte slice for the given index. Out-of-range
// indices are clamped to the nearest valid entry rather than rejected; the
// returned slice aliases the palette's backing array and stays valid for
// the process lifetime.
func (p *Palette) Entry(i int) []byte {
	if i < 0 {
		i = 0
	}
	if i > Entries-1 {
		i = Entries - 1
	}
	off := i * EntrySize
	return p.data[off : off+EntrySize : off+EntrySize]
}

// EraseEntry returns the fixed erase color at index 9.
func (p *Palette) EraseEntry() []byte { return p.Entry(EraseIndex) }

var palettes = map[string][Entries]color.RGBA{}

// Register adds a named set of ten colors to the palette registry.
func Register(name string, colors [Entries]color.RGBA) {
	if name == "" {
		return
	}
	palettes[name] = colors
}

// Lookup builds the named palette, reporting whether the name is known.
func Lookup(name string) (*Palette, bool) {
	colors, ok := palettes[name]
	if !ok {
		return nil, false
	}
	return NewPalette(name, colors), true
}

// Names returns the registered palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
