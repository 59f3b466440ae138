package mandelview

import "image/color"

// Mode selects how escape counts are mapped to colors.
type Mode uint32

const (
	// ModeContinuous is a smooth polynomial palette keyed by the
	// normalized escape fraction.
	ModeContinuous Mode = iota
	// ModeGrayscale maps the escape fraction to a gray ramp.
	ModeGrayscale
)

func (m Mode) String() string {
	switch m {
	case ModeContinuous:
		return "continuous"
	case ModeGrayscale:
		return "grayscale"
	}
	return "unknown"
}

// ColorFor maps an escape count to a color. Points that reached maxIter
// are inside the set and painted black; everything else is colored by the
// escape fraction t = iter/maxIter. maxIter must be >= 1.
func ColorFor(iter, maxIter int, mode Mode) color.RGBA {
	if iter >= maxIter {
		return color.RGBA{A: 255}
	}
	t := float64(iter) / float64(maxIter)
	if mode == ModeGrayscale {
		g := uint8(255 * t)
		return color.RGBA{R: g, G: g, B: g, A: 255}
	}
	r := clamp255(9 * (1 - t) * t * t * t * 255)
	g := clamp255(15 * (1 - t) * (1 - t) * t * t * 255)
	b := clamp255(8.5 * (1 - t) * (1 - t) * (1 - t) * t * 255)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Palette precomputes ColorFor for every escape count of one render pass,
// so the per-pixel cost is a table lookup instead of three polynomial
// evaluations.
type Palette struct {
	table []color.RGBA
}

// NewPalette builds the color table for a given cap and mode. Caps below 1
// are clamped to 1.
func NewPalette(maxIter int, mode Mode) *Palette {
	if maxIter < 1 {
		maxIter = 1
	}
	table := make([]color.RGBA, maxIter+1)
	for i := range table {
		table[i] = ColorFor(i, maxIter, mode)
	}
	return &Palette{table: table}
}

// At returns the color for an escape count in [0, maxIter].
func (p *Palette) At(iter int) color.RGBA {
	if iter < 0 {
		iter = 0
	}
	if iter >= len(p.table) {
		iter = len(p.table) - 1
	}
	return p.table[iter]
}
