package chartsvg

import (
	"io"
	"strconv"

	"github.com/neutron-modules/graphs/chartdata"
)

// BarChart writes a bar chart document for points, one bar per
// point. Bars occupy slots in input order: the X coordinate of
// a point is ignored and its index determines the slot. Each
// bar carries its value, truncated to an integer, as a label.
func BarChart(out io.Writer, cfg Config, points []chartdata.Point) error {
	if len(points) == 0 {
		return ErrNoData
	}
	b := BarBounds(points)
	interiorW := float64(cfg.Width - 2*cfg.Padding)
	interiorH := float64(cfg.Height - 2*cfg.Padding)
	barWidth := interiorW / (float64(len(points)) * 1.5)

	canvas := startCanvas(out, cfg, modeFramed)
	for i, p := range points {
		x := float64(cfg.Padding) + interiorW*(float64(i)+0.5)/float64(len(points))
		barH := (p.Y - b.MinY) / (b.MaxY - b.MinY) * interiorH
		y := float64(cfg.Height-cfg.Padding) - barH
		canvas.Rect(x-barWidth/2, y, barWidth, barH, fill(cfg.Color), `opacity="0.8"`)
		canvas.Text(x, y-5, strconv.Itoa(int(p.Y)),
			`text-anchor="middle"`, `font-size="12"`, `fill="#1f2937"`)
	}
	canvas.End()
	return nil
}
