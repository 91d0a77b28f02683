package chartsvg

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// This file implements the shared document pipeline: header,
// background, grid, axes and text labels. The data primitives
// of each chart are appended by the renderers between
// startCanvas and canvas.End.

// renderMode selects how the pipeline frames a chart.
type renderMode uint8

const (
	// modeFramed draws the grid (when configured), the axes and
	// the axis labels. Used by line, bar and scatter charts.
	modeFramed renderMode = iota
	// modePlain draws only the background and the title. Used by
	// pie charts, which have no axes.
	modePlain
)

const gridDivisions = 10

// startCanvas emits everything up to the chart primitives and
// returns the canvas for the renderer to draw on. The renderer
// must call End on it to close the document.
func startCanvas(out io.Writer, cfg Config, mode renderMode) *svg.SVG {
	w, h := float64(cfg.Width), float64(cfg.Height)
	canvas := svg.New(out)
	canvas.Startview(w, h, 0, 0, w, h)
	canvas.Rect(0, 0, w, h, fill(cfg.BgColor))
	if mode == modeFramed {
		drawGrid(canvas, cfg)
		drawAxes(canvas, cfg)
	}
	canvas.Text(w/2, 30, cfg.Title,
		`text-anchor="middle"`, `font-size="20"`, `font-weight="bold"`, `fill="#1f2937"`)
	if mode == modeFramed {
		drawAxisLabels(canvas, cfg)
	}
	return canvas
}

func drawGrid(canvas *svg.SVG, cfg Config) {
	if !cfg.ShowGrid {
		return
	}
	w, h, p := float64(cfg.Width), float64(cfg.Height), float64(cfg.Padding)
	canvas.Group(`id="grid"`, `stroke="#e5e7eb"`, `stroke-width="1"`)
	for i := 0; i <= gridDivisions; i++ {
		x := p + (w-2*p)*float64(i)/gridDivisions
		canvas.Line(x, p, x, h-p)
	}
	for i := 0; i <= gridDivisions; i++ {
		y := p + (h-2*p)*float64(i)/gridDivisions
		canvas.Line(p, y, w-p, y)
	}
	canvas.Gend()
}

func drawAxes(canvas *svg.SVG, cfg Config) {
	w, h, p := float64(cfg.Width), float64(cfg.Height), float64(cfg.Padding)
	canvas.Group(`id="axes"`, `stroke="#1f2937"`, `stroke-width="2"`)
	canvas.Line(p, h-p, w-p, h-p)
	canvas.Line(p, p, p, h-p)
	canvas.Gend()
}

func drawAxisLabels(canvas *svg.SVG, cfg Config) {
	w, h := float64(cfg.Width), float64(cfg.Height)
	canvas.Text(w/2, h-10, cfg.XLabel,
		`text-anchor="middle"`, `font-size="14"`, `fill="#4b5563"`)
	canvas.Text(20, h/2, cfg.YLabel,
		`text-anchor="middle"`, `font-size="14"`, `fill="#4b5563"`,
		fmt.Sprintf(`transform="rotate(-90 20 %g)"`, h/2))
}
