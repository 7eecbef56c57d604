package chart

import "testing"

func TestAxisView_ThreeMarkers(t *testing.T) {
	points := []DataPoint{{Value: 100, Label: "a"}, {Value: 40, Label: "b"}}
	bounds := Rect{X: 50, Y: 0, W: 6, H: 100}
	root := axisView(points, nil, bounds, DefaultBarStyle())

	texts := root.FindAll(NodeText)
	if len(texts) != 3 {
		t.Fatalf("expected 3 axis markers, got %d", len(texts))
	}
	want := []string{"100", "50", "0"}
	for i, n := range texts {
		if n.Text != want[i] {
			t.Fatalf("marker %d = %q, want %q", i, n.Text, want[i])
		}
		if !n.Decorative {
			t.Fatalf("marker %d should be decorative", i)
		}
	}
	if !almostEqual(texts[0].Frame.Y, 0) || !almostEqual(texts[1].Frame.Y, 50) {
		t.Fatalf("marker positions off: top %v, middle %v", texts[0].Frame.Y, texts[1].Frame.Y)
	}
}

func TestFormatAxisValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{2.5, "2.5"},
		{1500, "1.5K"},
		{2_000_000, "2.0M"},
	}
	for _, tc := range cases {
		if got := formatAxisValue(tc.in); got != tc.want {
			t.Fatalf("formatAxisValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGridView_EvenSpacing(t *testing.T) {
	bounds := Rect{W: 40, H: 101}
	root := gridView(bounds, DefaultBarStyle())
	lines := root.FindAll(NodeGridLine)
	if len(lines) != gridLineCount {
		t.Fatalf("expected %d grid lines, got %d", gridLineCount, len(lines))
	}
	step := lines[1].Frame.Y - lines[0].Frame.Y
	for i := 1; i < len(lines)-1; i++ {
		if !almostEqual(lines[i].Frame.Y-lines[i-1].Frame.Y, step) {
			t.Fatalf("grid spacing uneven at line %d", i)
		}
	}
	for i, ln := range lines {
		if !ln.Dashed || !ln.Decorative {
			t.Fatalf("grid line %d should be dashed and decorative", i)
		}
	}
}

func TestGridView_HiddenKeepsFrame(t *testing.T) {
	bounds := Rect{W: 40, H: 100}
	style := DefaultBarStyle()
	style.ShowGrid = false
	root := gridView(bounds, style)
	if len(root.Children) != 0 {
		t.Fatalf("hidden grid should draw nothing, got %d children", len(root.Children))
	}
	if root.Frame != bounds {
		t.Fatalf("hidden grid frame = %+v, want %+v (layout must not shift)", root.Frame, bounds)
	}
}
