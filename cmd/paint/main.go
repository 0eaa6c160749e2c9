//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gridpaint/internal/app"
	"gridpaint/internal/paint"
	"gridpaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Scale <= 0 {
		log.Fatalf("width, height, and scale must be positive (got %dx%d @%d)",
			cfg.Width, cfg.Height, cfg.Scale)
	}
	palette, ok := paint.Lookup(cfg.Palette)
	if !ok {
		log.Fatalf("unknown palette %q (available: %s)",
			cfg.Palette, strings.Join(paint.Names(), ", "))
	}

	canvas := paint.NewCanvas(cfg.Width, cfg.Height)
	if cfg.NoBoundsCheck {
		canvas.SetBoundsCheck(false)
	}
	game := app.New(palette, canvas, cfg.Scale)

	writeStartupBanner(os.Stderr)

	ebiten.SetWindowTitle("gridpaint — " + palette.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale+ui.BarHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func writeStartupBanner(w io.Writer) {
	fmt.Fprintln(w, "gridpaint: 0-9 select color, left drag paints, right drag erases, C clears, Q quits")
}
