package chartsvg

import (
	"fmt"
	"io"

	"github.com/neutron-modules/graphs/chartdata"
)

const markerRadius = 4

// LineChart writes a line chart document for points: one
// polyline through all points in input order, with a marker
// circle at each point.
func LineChart(out io.Writer, cfg Config, points []chartdata.Point) error {
	if len(points) == 0 {
		return ErrNoData
	}
	sc := scale{b: PointBounds(points), cfg: cfg}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = sc.x(p.X), sc.y(p.Y)
	}

	canvas := startCanvas(out, cfg, modeFramed)
	canvas.Polyline(xs, ys,
		`fill="none"`, fmt.Sprintf(`stroke="%s"`, cfg.Color), `stroke-width="2"`)
	for i := range xs {
		canvas.Circle(xs[i], ys[i], markerRadius, fill(cfg.Color))
	}
	canvas.End()
	return nil
}
