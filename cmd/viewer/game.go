package main

import (
	"fmt"
	"image"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/marben/mandelview"
)

// Zoom factor applied on a left click; a right click applies the inverse.
const zoomInFactor = 0.2

const iterStep = 100

// Game wires the engine into ebiten's update/draw loop. Both the input
// handlers here and the console goroutine mutate the engine and then mark
// the frame dirty; Draw re-renders only when something changed.
type Game struct {
	engine    *mandelview.Engine
	zoomBoost int

	dirty atomic.Bool
	quit  atomic.Bool
	frame *image.RGBA
}

func newGame(engine *mandelview.Engine, zoomBoost int) *Game {
	g := &Game{engine: engine, zoomBoost: zoomBoost}
	g.dirty.Store(true)
	return g
}

func (g *Game) markDirty() { g.dirty.Store(true) }

func (g *Game) requestQuit() { g.quit.Store(true) }

func (g *Game) Update() error {
	if g.quit.Load() {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		if g.engine.ZoomAtPixel(px, py, zoomInFactor) {
			if g.zoomBoost > 0 {
				g.engine.SetMaxIter(g.engine.MaxIter() + g.zoomBoost)
			}
			g.markDirty()
		} else {
			log.Printf("zoom rejected: viewport at precision floor (width %.3g)", g.engine.Viewport().Width())
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		px, py := ebiten.CursorPosition()
		if g.engine.ZoomAtPixel(px, py, 1/zoomInFactor) {
			g.markDirty()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		g.markDirty()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if g.engine.ColorMode() == mandelview.ModeGrayscale {
			g.engine.SetColorMode(mandelview.ModeContinuous)
		} else {
			g.engine.SetColorMode(mandelview.ModeGrayscale)
		}
		g.markDirty()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.engine.SetMaxIter(g.engine.MaxIter() + iterStep)
		g.markDirty()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.engine.SetMaxIter(g.engine.MaxIter() - iterStep)
		g.markDirty()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty.Swap(false) || g.frame == nil {
		frame, err := g.engine.RenderFrame()
		if err != nil {
			log.Printf("render: %v", err)
			return
		}
		g.frame = frame
	}
	screen.WritePixels(g.frame.Pix)

	cx, cy := g.engine.Viewport().Center()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("center (%.6g, %.6g)  width %.3g  iter %d  %s",
		cx, cy, g.engine.Viewport().Width(), g.engine.MaxIter(), g.engine.ColorMode()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.engine.Size()
}
