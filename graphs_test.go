package graphs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neutron-modules/graphs/chartdata"
	"github.com/neutron-modules/graphs/chartsvg"
)

// The boolean entry points write fixed file names in the
// working directory and open a viewer, so their success paths
// are exercised through the Render variants; here we check the
// failure semantics only.
func TestEntryPointFailures(t *testing.T) {
	for name, got := range map[string]bool{
		"line empty":     Line(""),
		"line invalid":   Line("x:y,a:b"),
		"bar empty":      Bar(""),
		"bar invalid":    Bar("a,b,c"),
		"scatter empty":  Scatter(""),
		"pie empty":      Pie(""),
		"pie zero total": Pie("0,0,0"),
	} {
		if got {
			t.Errorf("%s: reported success", name)
		}
	}
}

func TestRenderLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph_line.svg")
	cfg := chartsvg.DefaultConfig()
	cfg.Title = "Squares"
	err := RenderLine(path, cfg, chartdata.ParsePoints("1:1,2:4,3:9"))
	if err != nil {
		t.Fatalf("can't render: %s", err)
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(doc)
	if got := strings.Count(out, "<circle"); got != 3 {
		t.Errorf("marker count = %d, want 3", got)
	}
	if !strings.Contains(out, "Squares") {
		t.Error("title missing from document")
	}
}

func TestRenderBarValueForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph_bar.svg")
	points := chartdata.IndexPoints(chartdata.ParseValues("10,20,15"))
	if err := RenderBar(path, chartsvg.DefaultConfig(), points); err != nil {
		t.Fatalf("can't render: %s", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("document not written: %s", err)
	}
}

func TestRenderFailureWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph_scatter.svg")
	if err := RenderScatter(path, chartsvg.DefaultConfig(), nil); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed render left a file behind")
	}
}

func TestRenderPie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph_pie.svg")
	if err := RenderPie(path, chartsvg.DefaultConfig(), []float64{25, 25, 50}); err != nil {
		t.Fatalf("can't render: %s", err)
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(doc), "<path"); got != 3 {
		t.Errorf("wedge count = %d, want 3", got)
	}
}
