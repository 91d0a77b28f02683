package chartsvg

import (
	"io"

	"github.com/neutron-modules/graphs/chartdata"
)

const scatterRadius = 5

// ScatterPlot writes a scatter plot document for points:
// the same bounds policy as LineChart but markers only,
// slightly larger and semi-transparent.
func ScatterPlot(out io.Writer, cfg Config, points []chartdata.Point) error {
	if len(points) == 0 {
		return ErrNoData
	}
	sc := scale{b: PointBounds(points), cfg: cfg}

	canvas := startCanvas(out, cfg, modeFramed)
	for _, p := range points {
		canvas.Circle(sc.x(p.X), sc.y(p.Y), scatterRadius, fill(cfg.Color), `opacity="0.7"`)
	}
	canvas.End()
	return nil
}
