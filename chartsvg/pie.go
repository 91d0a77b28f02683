package chartsvg

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// Pie charts draw on a fixed canvas and bypass the grid and
// axis stages entirely.
const (
	pieWidth  = 800
	pieHeight = 600

	pieCx     = 400.0
	pieCy     = 320.0
	pieRadius = 180.0

	// labels sit at the angular midpoint of their wedge,
	// at 70% of the radius
	pieLabelRadius = pieRadius * 0.7
)

// wedge is one angular slice of a pie chart. Angles are in
// degrees on the SVG canvas, where -90 points up and sweeps
// run clockwise.
type wedge struct {
	start, sweep float64
	largeArc     bool // sweep covers half the circle or more
}

// pieWedges splits the full circle into one wedge per value,
// proportional to each value's share of total, starting at
// twelve o'clock. Sweeps sum to exactly 360 degrees.
func pieWedges(values []float64, total float64) []wedge {
	wedges := make([]wedge, len(values))
	start := -90.0
	for i, v := range values {
		sweep := v / total * 360
		wedges[i] = wedge{start: start, sweep: sweep, largeArc: sweep >= 180}
		start += sweep
	}
	return wedges
}

// PieChart writes a pie chart document for values. Wedge
// colors cycle through Palette and each wedge is labeled with
// its truncated integer percentage. Only the Title and BgColor
// of cfg apply; the canvas size is fixed.
func PieChart(out io.Writer, cfg Config, values []float64) error {
	if len(values) == 0 {
		return ErrNoData
	}
	var total float64
	for _, v := range values {
		total += v
	}
	if total == 0 {
		return ErrZeroTotal
	}

	cfg.Width, cfg.Height = pieWidth, pieHeight
	canvas := startCanvas(out, cfg, modePlain)
	for i, w := range pieWedges(values, total) {
		largeArc := 0
		if w.largeArc {
			largeArc = 1
		}
		x1, y1 := arcPoint(pieRadius, w.start)
		x2, y2 := arcPoint(pieRadius, w.start+w.sweep)
		canvas.Path(
			fmt.Sprintf("M %g %g L %g %g A %g %g 0 %d 1 %g %g Z",
				pieCx, pieCy, x1, y1, pieRadius, pieRadius, largeArc, x2, y2),
			fill(Palette[i%len(Palette)]), `stroke="white"`, `stroke-width="2"`)

		lx, ly := arcPoint(pieLabelRadius, w.start+w.sweep/2)
		percent := int(values[i] / total * 100)
		canvas.Text(lx, ly, strconv.Itoa(percent)+"%",
			`text-anchor="middle"`, `font-size="14"`, `fill="white"`, `font-weight="bold"`)
	}
	canvas.End()
	return nil
}

// arcPoint is the canvas position at deg degrees on a circle of
// radius r around the pie center.
func arcPoint(r, deg float64) (x, y float64) {
	rad := deg * math.Pi / 180
	return pieCx + r*math.Cos(rad), pieCy + r*math.Sin(rad)
}
