package chartsvg

import (
	"bytes"
	"strings"
	"testing"
)

func TestPieWedges(t *testing.T) {
	wedges := pieWedges([]float64{25, 25, 50}, 100)
	wantSweeps := []float64{90, 90, 180}
	var sum float64
	for i, w := range wedges {
		if !almostEqual(w.sweep, wantSweeps[i]) {
			t.Errorf("wedge %d sweep = %g, want %g", i, w.sweep, wantSweeps[i])
		}
		sum += w.sweep
	}
	if !almostEqual(sum, 360) {
		t.Errorf("sweep sum = %g, want 360", sum)
	}
	if wedges[0].start != -90 {
		t.Errorf("first wedge starts at %g, want -90", wedges[0].start)
	}
	if wedges[0].largeArc || wedges[1].largeArc {
		t.Error("quarter wedges must not set the large-arc flag")
	}
	if !wedges[2].largeArc {
		t.Error("a half-circle wedge must set the large-arc flag")
	}

	wedges = pieWedges([]float64{10, 90}, 100)
	if !wedges[1].largeArc {
		t.Error("a wedge sweeping past 180 degrees must set the large-arc flag")
	}
}

func TestPieChart(t *testing.T) {
	var buf bytes.Buffer
	err := PieChart(&buf, DefaultConfig(), []float64{10, 90})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if got := strings.Count(out, "<path"); got != 2 {
		t.Errorf("wedge count = %d, want 2", got)
	}
	if got := strings.Count(out, " 0 1 1 "); got != 1 {
		t.Errorf("large-arc wedge count = %d, want 1", got)
	}
	for _, label := range []string{">10%<", ">90%<"} {
		if !strings.Contains(out, label) {
			t.Errorf("percentage label %s missing", label)
		}
	}
	if strings.Contains(out, `id="grid"`) || strings.Contains(out, `id="axes"`) {
		t.Error("pie chart must bypass the grid and axis stages")
	}
}

func TestPieChartZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	if err := PieChart(&buf, DefaultConfig(), []float64{0, 0, 0}); err != ErrZeroTotal {
		t.Fatalf("err = %v, want ErrZeroTotal", err)
	}
	if buf.Len() != 0 {
		t.Errorf("failed render wrote %d bytes", buf.Len())
	}
}

func TestPaletteCycles(t *testing.T) {
	var buf bytes.Buffer
	values := []float64{1, 1, 1, 1, 1, 1, 1} // one more wedge than palette entries
	if err := PieChart(&buf, DefaultConfig(), values); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if got := strings.Count(out, Palette[0]); got != 2 {
		t.Errorf("first palette color used %d times, want 2", got)
	}
}
