package chart

import (
	"context"
	"reflect"
	"testing"
)

func weekPoints() []DataPoint {
	return []DataPoint{
		{Value: 10, Label: "Mon"},
		{Value: 20, Label: "Tue"},
		{Value: 5, Label: "Wed"},
	}
}

func TestBarChart_ScenarioProportions(t *testing.T) {
	style := DefaultBarStyle()
	style.BarMinHeight = 0
	root := New(weekPoints()).LayoutStyled(Rect{W: 60, H: 100}, style)

	bars := root.FindAll(NodeBar)
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	trackH := bars[1].Frame.H // Tue holds the max value
	wantRatios := []float64{0.5, 1.0, 0.25}
	for i, b := range bars {
		if !almostEqual(b.Frame.H/trackH, wantRatios[i]) {
			t.Fatalf("bar %d ratio = %v, want %v", i, b.Frame.H/trackH, wantRatios[i])
		}
	}
}

func TestBarChart_Idempotent(t *testing.T) {
	chart := NewWithLimit(weekPoints(), DataPoint{Value: 25, Label: "cap", Legend: &Legend{Color: "#F38BA8", Label: "cap"}})
	bounds := Rect{W: 80, H: 120}
	ctx := WithStyle(context.Background(), DefaultBarStyle())

	first := chart.Layout(ctx, bounds)
	second := chart.Layout(ctx, bounds)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two layouts with identical inputs should be structurally identical")
	}
}

func TestBarChart_AxisPositionPlacement(t *testing.T) {
	points := weekPoints()
	bounds := Rect{W: 60, H: 110}

	style := DefaultBarStyle()
	style.AxisPosition = AxisTrailing
	trailing := New(points).LayoutStyled(bounds, style)

	style.AxisPosition = AxisLeading
	leading := New(points).LayoutStyled(bounds, style)

	style.AxisPosition = AxisHidden
	hidden := New(points).LayoutStyled(bounds, style)

	trailingBar := trailing.FindAll(NodeBar)[0]
	leadingBar := leading.FindAll(NodeBar)[0]
	if leadingBar.Frame.X <= trailingBar.Frame.X {
		t.Fatal("leading axis should push bars right of the trailing layout")
	}

	// Hidden axis: no marker text beside the track, wider track.
	hiddenBar := hidden.FindAll(NodeBar)[0]
	if hiddenBar.Frame.W <= trailingBar.Frame.W {
		t.Fatal("hiding the axis should widen the bar slots")
	}
}

func TestBarChart_AxisSharesScaleWithBars(t *testing.T) {
	limit := DataPoint{Value: 40, Label: "cap"}
	style := DefaultBarStyle()
	root := NewWithLimit(weekPoints(), limit).LayoutStyled(Rect{W: 60, H: 110}, style)

	// The top axis marker must read the shared reference: the limit's 40,
	// not the data maximum 20.
	var topMarker *Node
	root.Walk(func(n *Node) {
		if n.Kind == NodeText && n.Text == "40" {
			topMarker = n
		}
	})
	if topMarker == nil {
		t.Fatal("axis should carry a marker for the shared scale reference 40")
	}
}

func TestBarChart_GridToggleKeepsFrame(t *testing.T) {
	bounds := Rect{W: 60, H: 110}
	on := DefaultBarStyle()
	off := DefaultBarStyle()
	off.ShowGrid = false

	withGrid := New(weekPoints()).LayoutStyled(bounds, on)
	withoutGrid := New(weekPoints()).LayoutStyled(bounds, off)

	if len(withGrid.FindAll(NodeGridLine)) == 0 {
		t.Fatal("grid on should produce grid lines")
	}
	if len(withoutGrid.FindAll(NodeGridLine)) != 0 {
		t.Fatal("grid off should produce no grid lines")
	}
	// Bars must not shift when the grid is toggled.
	onBar := withGrid.FindAll(NodeBar)[0].Frame
	offBar := withoutGrid.FindAll(NodeBar)[0].Frame
	if onBar != offBar {
		t.Fatalf("grid toggle moved bars: %+v vs %+v", onBar, offBar)
	}
}

func TestBarChart_LimitLegendPrepended(t *testing.T) {
	used := Legend{Color: "#A6E3A1", Label: "used"}
	budget := Legend{Color: "#F38BA8", Label: "budget"}
	points := []DataPoint{
		{Value: 10, Label: "Mon", Legend: &used},
		{Value: 12, Label: "Tue", Legend: &used},
	}
	root := NewWithLimit(points, DataPoint{Value: 20, Label: "cap", Legend: &budget}).
		LayoutStyled(Rect{W: 60, H: 110}, DefaultBarStyle())

	var captions []string
	root.Walk(func(n *Node) {
		if n.Kind == NodeText && (n.Text == "used" || n.Text == "budget") {
			captions = append(captions, n.Text)
		}
	})
	if len(captions) != 2 {
		t.Fatalf("expected legend captions for budget and used, got %v", captions)
	}
	if captions[0] != "budget" {
		t.Fatalf("limit legend should come first, got %v", captions)
	}
}

func TestBarChart_MinTrackHeightHonored(t *testing.T) {
	style := DefaultBarStyle()
	style.BarMinHeight = 100
	root := New(weekPoints()).LayoutStyled(Rect{W: 60, H: 10}, style)

	bars := root.FindAll(NodeBar)
	if bars[1].Frame.H < 100 { // max-value bar fills the track
		t.Fatalf("track below BarMinHeight: max bar height %v", bars[1].Frame.H)
	}
}

func TestBarChart_EmptyDataRendersEmpty(t *testing.T) {
	root := New(nil).LayoutStyled(Rect{W: 60, H: 110}, DefaultBarStyle())
	if len(root.FindAll(NodeBar)) != 0 {
		t.Fatal("empty data should render no bars")
	}
	if len(root.FindAll(NodeText)) == 0 {
		// The axis still renders its scale markers against reference 1.
		t.Fatal("axis markers should render even with no data")
	}
}

func TestBarChart_BarsAreDiscoverableRestDecorative(t *testing.T) {
	root := New(weekPoints()).LayoutStyled(Rect{W: 60, H: 110}, DefaultBarStyle())
	root.Walk(func(n *Node) {
		switch n.Kind {
		case NodeBar:
			if n.Decorative {
				t.Fatal("bars must stay discoverable")
			}
		case NodeGridLine, NodeText, NodeSwatch:
			if !n.Decorative {
				t.Fatalf("%v node should be decorative", n.Kind)
			}
		}
	})
}
