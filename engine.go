package mandelview

import (
	"image"
	"runtime"
	"sync"
	"sync/atomic"
)

// MaxIterCap is the hard upper bound on the iteration cap. Caps above it
// are clamped so a stray command cannot trigger runaway computation.
const MaxIterCap = 1 << 16

// Engine owns the shared render state: the viewport, the iteration cap and
// the color mode. Input collaborators mutate it through the setters below,
// display collaborators pull frames through RenderFrame. All methods are
// safe for concurrent use: the four viewport bounds change under a mutex
// as one unit, the two scalar parameters are atomics, and renders are
// serialized so a superseding request waits for the in-flight one.
type Engine struct {
	width, height int
	workers       int

	mu sync.Mutex // guards vp
	vp Viewport

	maxIter atomic.Int64
	mode    atomic.Uint32

	renderMu sync.Mutex
}

// NewEngine creates an engine for a fixed width x height pixel grid,
// starting at the default whole-set viewport. The worker count is taken
// from the available hardware parallelism once, here.
func NewEngine(width, height, maxIter int) *Engine {
	e := &Engine{
		width:   width,
		height:  height,
		workers: max(runtime.NumCPU(), 1),
		vp:      DefaultViewport,
	}
	e.SetMaxIter(maxIter)
	return e
}

// Size returns the fixed pixel dimensions of the render surface.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}

// Viewport returns a consistent copy of the current viewport.
func (e *Engine) Viewport() Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vp
}

// ZoomTo recenters and scales the viewport in plane coordinates. It
// reports false when the zoom was rejected at the precision floor.
func (e *Engine) ZoomTo(centerX, centerY, factor float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vp.ZoomTo(centerX, centerY, factor)
}

// ZoomAtPixel maps a pixel position to the plane and zooms there, which is
// what a mouse click on the rendered image means.
func (e *Engine) ZoomAtPixel(px, py int, factor float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.vp.PixelToPlane(px, py, e.width, e.height)
	return e.vp.ZoomTo(real(c), imag(c), factor)
}

// Reset restores the default viewport.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vp.Reset()
}

// GoTo jumps to a named landmark region. It reports false for an unknown
// name and leaves the viewport unchanged.
func (e *Engine) GoTo(name string) bool {
	vp, ok := Regions[name]
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vp = vp
	return true
}

// MaxIter returns the current iteration cap.
func (e *Engine) MaxIter() int {
	return int(e.maxIter.Load())
}

// SetMaxIter sets the iteration cap, clamped to [1, MaxIterCap], and
// returns the value actually stored. Takes effect on the next render.
func (e *Engine) SetMaxIter(n int) int {
	if n < 1 {
		n = 1
	}
	if n > MaxIterCap {
		n = MaxIterCap
	}
	e.maxIter.Store(int64(n))
	return n
}

// ColorMode returns the current color mode.
func (e *Engine) ColorMode() Mode {
	return Mode(e.mode.Load())
}

// SetColorMode switches the palette. Takes effect on the next render.
func (e *Engine) SetColorMode(m Mode) {
	e.mode.Store(uint32(m))
}

// RenderFrame rasterizes the current state into a fresh buffer and blocks
// until every band has completed. The viewport, cap and mode are read once
// before dispatch, so the frame never mixes two parameter snapshots.
func (e *Engine) RenderFrame() (*image.RGBA, error) {
	e.renderMu.Lock()
	defer e.renderMu.Unlock()

	vp := e.Viewport()
	maxIter := e.MaxIter()
	mode := e.ColorMode()

	img := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	renderInto(img, vp, maxIter, mode, e.workers)
	return img, nil
}
