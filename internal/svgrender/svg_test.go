package svgrender

import (
	"strings"
	"testing"

	"github.com/janekbaraniewski/barview/internal/chart"
)

func layoutWeek(t *testing.T) *chart.Node {
	t.Helper()
	points := []chart.DataPoint{
		{Value: 10, Label: "Mon"},
		{Value: 20, Label: "Tue"},
		{Value: 5, Label: "Wed", Legend: &chart.Legend{Color: "#94E2D5", Label: "low"}},
	}
	return chart.New(points).LayoutStyled(chart.Rect{W: 80, H: 120}, chart.DefaultBarStyle())
}

func TestRender_WellFormedDocument(t *testing.T) {
	out := Render(layoutWeek(t), Options{})
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("missing svg root element: %q", out[:40])
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Fatal("document not closed")
	}
	if got := strings.Count(out, "<rect"); got < 3 {
		t.Fatalf("expected at least 3 rects (bars), got %d", got)
	}
	for _, label := range []string{"Mon", "Tue", "Wed"} {
		if !strings.Contains(out, label) {
			t.Fatalf("missing label %q", label)
		}
	}
}

func TestRender_ScaleMultipliesViewBox(t *testing.T) {
	out := Render(layoutWeek(t), Options{Scale: 10})
	if !strings.Contains(out, `width="800"`) {
		t.Fatalf("scaled width missing: %s", out[:120])
	}
}

func TestRender_GridLinesDashedAndHidden(t *testing.T) {
	out := Render(layoutWeek(t), Options{})
	if !strings.Contains(out, `stroke-dasharray="4 4"`) {
		t.Fatal("grid lines should be dashed")
	}
	if !strings.Contains(out, `aria-hidden="true"`) {
		t.Fatal("decorative nodes should carry aria-hidden")
	}
}

func TestRender_CornerRadiusOnlyWhenMasked(t *testing.T) {
	points := []chart.DataPoint{{Value: 5, Label: "a"}}
	style := chart.DefaultBarStyle()

	plain := Render(chart.New(points).LayoutStyled(chart.Rect{W: 40, H: 110}, style), Options{})
	if strings.Contains(plain, "rx=") {
		t.Fatal("no corner mask should mean no rx attribute")
	}

	style.Corners = chart.CornersTop
	rounded := Render(chart.New(points).LayoutStyled(chart.Rect{W: 40, H: 110}, style), Options{})
	if !strings.Contains(rounded, `rx="5"`) {
		t.Fatal("masked corners should emit the configured radius")
	}
}

func TestRender_EscapesText(t *testing.T) {
	points := []chart.DataPoint{{Value: 1, Label: "a<b&c"}}
	out := Render(chart.New(points).LayoutStyled(chart.Rect{W: 40, H: 110}, chart.DefaultBarStyle()), Options{})
	if strings.Contains(out, "a<b&c") {
		t.Fatal("label text must be escaped")
	}
	if !strings.Contains(out, "a&lt;b&amp;c") {
		t.Fatal("expected escaped label text")
	}
}

func TestRender_Deterministic(t *testing.T) {
	root := layoutWeek(t)
	if Render(root, Options{Scale: 2}) != Render(root, Options{Scale: 2}) {
		t.Fatal("same tree and options should serialize identically")
	}
}

func TestRender_NilTree(t *testing.T) {
	if out := Render(nil, Options{}); out != "" {
		t.Fatalf("nil tree should render empty, got %q", out)
	}
}
