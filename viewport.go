package mandelview

// Viewport is the rectangle of the complex plane currently mapped onto the
// pixel grid. The bounds always satisfy Xmin < Xmax and Ymin < Ymax.
type Viewport struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// DefaultViewport frames the whole set.
var DefaultViewport = Viewport{Xmin: -2.0, Xmax: 1.0, Ymin: -1.5, Ymax: 1.5}

// MinPlaneWidth is the narrowest viewport ZoomTo will produce. At 800
// pixels across this leaves ~1.25e-15 per pixel, close to float64
// resolution for coordinates of magnitude 2; one more 0.2x zoom and
// neighbouring pixel centers start to collide.
const MinPlaneWidth = 1e-12

func (v Viewport) Width() float64 { return v.Xmax - v.Xmin }

func (v Viewport) Height() float64 { return v.Ymax - v.Ymin }

// Center returns the midpoint of the viewport in plane coordinates.
func (v Viewport) Center() (x, y float64) {
	return (v.Xmin + v.Xmax) / 2, (v.Ymin + v.Ymax) / 2
}

// ZoomTo recenters the viewport on (centerX, centerY) and scales both
// half-widths by factor. Factors in (0,1) zoom in; factors >= 1 widen the
// view. The request is rejected and the viewport left untouched when the
// resulting width would drop below MinPlaneWidth.
func (v *Viewport) ZoomTo(centerX, centerY, factor float64) bool {
	halfW := v.Width() / 2 * factor
	halfH := v.Height() / 2 * factor
	if 2*halfW < MinPlaneWidth {
		return false
	}
	v.Xmin = centerX - halfW
	v.Xmax = centerX + halfW
	v.Ymin = centerY - halfH
	v.Ymax = centerY + halfH
	return true
}

// Reset restores the default whole-set view. Always succeeds.
func (v *Viewport) Reset() {
	*v = DefaultViewport
}

// PixelToPlane maps a pixel position on a pixelW x pixelH grid to its
// point in the complex plane by linear interpolation over the bounds.
func (v Viewport) PixelToPlane(px, py, pixelW, pixelH int) complex128 {
	x := v.Xmin + (v.Xmax-v.Xmin)*float64(px)/float64(pixelW)
	y := v.Ymin + (v.Ymax-v.Ymin)*float64(py)/float64(pixelH)
	return complex(x, y)
}
