// Writes finished chart documents to disk and hands them to
// the system viewer.
package chartio

import (
	"os"

	"github.com/pkg/browser"
)

// Default output file names, one per chart type, relative to
// the working directory. Rendering the same chart type twice
// overwrites the previous document.
const (
	LineFile    = "graph_line.svg"
	BarFile     = "graph_bar.svg"
	ScatterFile = "graph_scatter.svg"
	PieFile     = "graph_pie.svg"
)

// WriteFile writes a finished document to path.
func WriteFile(path string, content []byte) error {
	return os.WriteFile(path, content, 0o644)
}

// OpenViewer opens path in the default browser. Viewing is
// best effort: launch failures are reported but callers are
// free to ignore them.
func OpenViewer(path string) error {
	return browser.OpenFile(path)
}
