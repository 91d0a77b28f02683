package graphs

import (
	"bytes"

	"github.com/neutron-modules/graphs/chartdata"
	"github.com/neutron-modules/graphs/chartio"
	"github.com/neutron-modules/graphs/chartsvg"
)

// The Render variants are the Go-facing counterparts of the
// boolean entry points: the caller picks the output path and
// the Config, and failures come back as errors. No viewer is
// launched.

// RenderLine writes a line chart for points to path.
func RenderLine(path string, cfg chartsvg.Config, points []chartdata.Point) error {
	var buf bytes.Buffer
	if err := chartsvg.LineChart(&buf, cfg, points); err != nil {
		return err
	}
	return chartio.WriteFile(path, buf.Bytes())
}

// RenderBar writes a bar chart for points to path.
func RenderBar(path string, cfg chartsvg.Config, points []chartdata.Point) error {
	var buf bytes.Buffer
	if err := chartsvg.BarChart(&buf, cfg, points); err != nil {
		return err
	}
	return chartio.WriteFile(path, buf.Bytes())
}

// RenderScatter writes a scatter plot for points to path.
func RenderScatter(path string, cfg chartsvg.Config, points []chartdata.Point) error {
	var buf bytes.Buffer
	if err := chartsvg.ScatterPlot(&buf, cfg, points); err != nil {
		return err
	}
	return chartio.WriteFile(path, buf.Bytes())
}

// RenderPie writes a pie chart for values to path.
func RenderPie(path string, cfg chartsvg.Config, values []float64) error {
	var buf bytes.Buffer
	if err := chartsvg.PieChart(&buf, cfg, values); err != nil {
		return err
	}
	return chartio.WriteFile(path, buf.Bytes())
}
