// Renders numeric data sets as SVG chart documents.
// Each renderer writes one complete document to an io.Writer,
// which can then be consumed by an output sink or rasterized.
// See for example graphs/chartio or graphs/chartraster .
package chartsvg

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when a renderer is invoked with an
// empty data set.
var ErrNoData = errors.New("chartsvg: no data points")

// ErrZeroTotal is returned by PieChart when the values sum
// to zero and no wedge proportions exist.
var ErrZeroTotal = errors.New("chartsvg: pie total is zero")

// Config holds the appearance settings of one render call.
// Use DefaultConfig as a starting point. A Config is never
// modified by a renderer.
type Config struct {
	Width, Height int
	Padding       int

	Title  string
	XLabel string
	YLabel string

	Color   string // primary data color
	BgColor string

	ShowGrid   bool
	ShowLegend bool // reserved, no renderer draws a legend yet
}

// DefaultConfig sets the default Config to an 800x600 canvas
// with a 60 pixel padding, a blue data color on white, and
// the grid visible.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Padding:    60,
		Title:      "Graph",
		XLabel:     "X",
		YLabel:     "Y",
		Color:      "#2563eb",
		BgColor:    "#ffffff",
		ShowGrid:   true,
		ShowLegend: true,
	}
}

// Palette is cycled by wedge index in pie charts.
var Palette = [...]string{"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6", "#ec4899"}

func fill(color string) string {
	return fmt.Sprintf(`fill="%s"`, color)
}
