// Package mandelview renders the Mandelbrot set: a viewport over the
// complex plane is rasterized into a pixel grid, escape-time iteration
// colors each pixel, and the work is split into row bands rendered by
// parallel workers. The Engine ties viewport, iteration cap and color
// mode together behind concurrency-safe mutators for interactive use.
package mandelview

import (
	"image"
)

// FrameProvider is what display collaborators depend on: a single blocking
// call that returns a fully rendered frame for one consistent parameter
// snapshot. Implemented by Engine.
type FrameProvider interface {
	RenderFrame() (*image.RGBA, error)
}

var _ FrameProvider = (*Engine)(nil)
