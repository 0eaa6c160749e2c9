package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width         int
	Height        int
	Scale         int
	TPS           int
	Palette       string
	NoBoundsCheck bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 64, Height: 40, Scale: 12, TPS: 60, Palette: "classic"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Palette, "palette", c.Palette, "color palette to use")
	fs.BoolVar(&c.NoBoundsCheck, "no-bounds-check", c.NoBoundsCheck,
		"skip cell coordinate validation and trust the event source")
}
