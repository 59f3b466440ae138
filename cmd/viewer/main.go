// viewer is the desktop Mandelbrot viewer. It opens a window showing the
// current render, zooms on mouse clicks and runs a command loop on stdin
// alongside the window for precise control (type "help" in the terminal).
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/marben/mandelview"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	width := flag.Int("width", 800, "window width in pixels")
	height := flag.Int("height", 800, "window height in pixels")
	iter := flag.Int("iter", 1000, "initial iteration cap")
	zoomBoost := flag.Int("zoomboost", 32, "raise the iteration cap by this much after every zoom-in (0 disables)")
	gray := flag.Bool("gray", false, "start in grayscale mode")
	flag.Parse()

	engine := mandelview.NewEngine(*width, *height, *iter)
	if *gray {
		engine.SetColorMode(mandelview.ModeGrayscale)
	}

	g := newGame(engine, *zoomBoost)
	go runConsole(g)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Mandelbrot Viewer")
	return ebiten.RunGame(g)
}
