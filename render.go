package mandelview

import (
	"image"
	"runtime"
	"sync"
)

// Band is a contiguous range of pixel rows [Y0, Y1) rendered by one worker.
type Band struct {
	Y0, Y1 int
}

// SplitRows partitions the row range [0, height) into at most n contiguous,
// non-overlapping bands. Every band except the last holds height/n rows;
// the last absorbs the remainder. When height < n the band count drops to
// height so no worker gets an empty range.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}
	rows := height / n
	bands := make([]Band, n)
	y := 0
	for i := range bands {
		y1 := y + rows
		if i == n-1 {
			y1 = height
		}
		bands[i] = Band{Y0: y, Y1: y1}
		y = y1
	}
	return bands
}

// Render rasterizes the viewport into a fresh width x height RGBA buffer,
// one worker goroutine per available CPU. The call blocks until every band
// has completed, so the returned buffer always reflects a single
// consistent (viewport, cap, mode) snapshot.
func Render(vp Viewport, maxIter int, mode Mode, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	renderInto(img, vp, maxIter, mode, runtime.NumCPU())
	return img
}

// renderInto fills img band by band with the given number of workers.
// Bands never overlap, so the buffer needs no locking; the WaitGroup is
// the completion barrier.
func renderInto(img *image.RGBA, vp Viewport, maxIter int, mode Mode, workers int) {
	if maxIter < 1 {
		maxIter = 1
	}
	pal := NewPalette(maxIter, mode)
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	var wg sync.WaitGroup
	for _, b := range SplitRows(h, workers) {
		wg.Add(1)
		go func(b Band) {
			defer wg.Done()
			for py := b.Y0; py < b.Y1; py++ {
				for px := 0; px < w; px++ {
					c := vp.PixelToPlane(px, py, w, h)
					img.SetRGBA(px, py, pal.At(Evaluate(c, maxIter)))
				}
			}
		}(b)
	}
	wg.Wait()
}
