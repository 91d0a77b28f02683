package chartsvg

import (
	"github.com/neutron-modules/graphs/chartdata"
)

// minSpan is substituted for a collapsed axis range, so that a
// data set sharing one coordinate still maps to finite canvas
// positions instead of dividing by zero.
const minSpan = 1.0

// Bounds is the data space extent of a chart, after expansion.
// MaxX > MinX and MaxY > MinY always hold.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// PointBounds returns the extent of points expanded by a 5%
// margin on each side. A degenerate axis is widened to minSpan,
// centered on the shared value. points must not be empty.
func PointBounds(points []chartdata.Point) Bounds {
	b := Bounds{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	b.MinX, b.MaxX = expand(b.MinX, b.MaxX)
	b.MinY, b.MaxY = expand(b.MinY, b.MaxY)
	return b
}

// BarBounds fixes the Y domain at [0, 1.1*max] and the X domain
// at the slot index range [0, len(points)]. points must not be
// empty.
func BarBounds(points []chartdata.Point) Bounds {
	b := Bounds{MinX: 0, MaxX: float64(len(points)), MinY: 0, MaxY: points[0].Y}
	for _, p := range points {
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	b.MaxY *= 1.1
	if b.MaxY <= b.MinY {
		// all-zero (or negative) bars
		b.MaxY = b.MinY + minSpan
	}
	return b
}

func expand(min, max float64) (float64, float64) {
	if span := max - min; span > 0 {
		return min - span*0.05, max + span*0.05
	}
	return min - minSpan/2, max + minSpan/2
}

// scale is the affine mapping from a Bounds onto the interior
// rectangle of the canvas (the area inside the padding). The Y
// axis is inverted for the top-left SVG origin.
type scale struct {
	b   Bounds
	cfg Config
}

func (s scale) x(v float64) float64 {
	interior := float64(s.cfg.Width - 2*s.cfg.Padding)
	return float64(s.cfg.Padding) + (v-s.b.MinX)/(s.b.MaxX-s.b.MinX)*interior
}

func (s scale) y(v float64) float64 {
	interior := float64(s.cfg.Height - 2*s.cfg.Padding)
	return float64(s.cfg.Height-s.cfg.Padding) - (v-s.b.MinY)/(s.b.MaxY-s.b.MinY)*interior
}
