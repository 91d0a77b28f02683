// Package graphs renders simple charts (line, bar, scatter,
// pie) from delimited text input into SVG files.
//
// The Line, Bar, Scatter and Pie entry points mirror the host
// scripting environment: each parses its data string, writes a
// fixed per-chart-type file in the working directory, opens it
// in a viewer on success and reports the outcome as a plain
// boolean. Go callers wanting configuration and error detail
// should use the Render variants instead.
package graphs

import (
	"bytes"

	"github.com/neutron-modules/graphs/chartdata"
	"github.com/neutron-modules/graphs/chartio"
	"github.com/neutron-modules/graphs/chartsvg"
)

// Line renders coordinate pairs ("x1:y1,x2:y2,...") as a line
// chart in graph_line.svg. An optional second argument sets
// the chart title.
func Line(data string, title ...string) bool {
	points := chartdata.ParsePoints(data)
	var buf bytes.Buffer
	if chartsvg.LineChart(&buf, config(title), points) != nil {
		return false
	}
	return emit(chartio.LineFile, buf.Bytes())
}

// Bar renders plain values ("v1,v2,...") or coordinate pairs
// as a bar chart in graph_bar.svg. Plain values take their
// position in the list as their slot.
func Bar(data string, title ...string) bool {
	var points []chartdata.Point
	if chartdata.HasPairs(data) {
		points = chartdata.ParsePoints(data)
	} else {
		points = chartdata.IndexPoints(chartdata.ParseValues(data))
	}
	var buf bytes.Buffer
	if chartsvg.BarChart(&buf, config(title), points) != nil {
		return false
	}
	return emit(chartio.BarFile, buf.Bytes())
}

// Scatter renders coordinate pairs as a scatter plot in
// graph_scatter.svg.
func Scatter(data string, title ...string) bool {
	points := chartdata.ParsePoints(data)
	var buf bytes.Buffer
	if chartsvg.ScatterPlot(&buf, config(title), points) != nil {
		return false
	}
	return emit(chartio.ScatterFile, buf.Bytes())
}

// Pie renders plain values as a pie chart in graph_pie.svg.
// Values summing to zero are a failure, as no wedge
// proportions exist.
func Pie(data string, title ...string) bool {
	values := chartdata.ParseValues(data)
	var buf bytes.Buffer
	if chartsvg.PieChart(&buf, config(title), values) != nil {
		return false
	}
	return emit(chartio.PieFile, buf.Bytes())
}

func config(title []string) chartsvg.Config {
	cfg := chartsvg.DefaultConfig()
	if len(title) > 0 && title[0] != "" {
		cfg.Title = title[0]
	}
	return cfg
}

// emit writes the document and, only then, hands it to the
// viewer. A failed write is an overall failure; a failed
// viewer launch is not.
func emit(path string, doc []byte) bool {
	if chartio.WriteFile(path, doc) != nil {
		return false
	}
	_ = chartio.OpenViewer(path)
	return true
}
