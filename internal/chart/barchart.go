package chart

import "context"

// axisGutterWidth is the width reserved for axis markers, before padding.
const axisGutterWidth = 6

// BarChart composes bars, axis, grid, labels and legend for one data set.
// The zero value renders an empty chart. Construction captures the inputs;
// layout is deferred so the same chart can be laid out repeatedly at
// different sizes.
type BarChart struct {
	points []DataPoint
	limit  *DataPoint
}

// New returns a bar chart over the given data points.
func New(points []DataPoint) BarChart {
	return BarChart{points: points}
}

// NewWithLimit returns a bar chart with a threshold line drawn at the
// limit's value across all bars. The limit does not occupy a bar slot, but
// its legend participates in the legend row.
func NewWithLimit(points []DataPoint, limit DataPoint) BarChart {
	return BarChart{points: points, limit: &limit}
}

// Layout resolves the ambient style from ctx and lays the chart out inside
// bounds. See LayoutStyled.
func (c BarChart) Layout(ctx context.Context, bounds Rect) *Node {
	return c.LayoutStyled(bounds, StyleFrom(ctx))
}

// LayoutStyled builds the chart's layout tree: [leading axis] → grid under
// bars with labels below → [trailing axis], then the legend row. The track
// height honors style.BarMinHeight even when bounds are shorter, so the
// returned tree may extend past bounds; backends clip.
//
// The function is pure and idempotent: identical inputs yield structurally
// identical trees.
func (c BarChart) LayoutStyled(bounds Rect, style BarStyle) *Node {
	legendInput := c.points
	if c.limit != nil {
		legendInput = append([]DataPoint{*c.limit}, c.points...)
	}

	legendRowH := 0.0
	if style.ShowLegends && len(legendEntries(legendInput)) > 0 {
		legendRowH = 2 // one row plus a gap above it
	}
	labelStripH := 0.0
	if style.ShowLabels && len(c.points) > 0 {
		labelStripH = 1
	}
	axisW := 0.0
	if style.AxisPosition != AxisHidden {
		axisW = axisGutterWidth + style.AxisPadding
	}

	trackH := bounds.H - labelStripH - legendRowH
	if trackH < style.BarMinHeight {
		trackH = style.BarMinHeight
	}
	trackW := bounds.W - axisW
	if trackW < 0 {
		trackW = 0
	}

	trackX := bounds.X
	axisX := bounds.X + trackW + style.AxisPadding
	if style.AxisPosition == AxisLeading {
		trackX = bounds.X + axisW
		axisX = bounds.X
	}

	track := Rect{X: trackX, Y: bounds.Y, W: trackW, H: trackH}

	// Grid first so bars draw over it.
	children := []*Node{
		gridView(track, style),
		barsView(c.points, c.limit, track, style),
	}
	if style.AxisPosition != AxisHidden {
		axis := Rect{X: axisX, Y: bounds.Y, W: axisGutterWidth, H: trackH}
		children = append(children, axisView(c.points, c.limit, axis, style))
	}
	if labelStripH > 0 {
		strip := Rect{X: trackX, Y: track.Bottom(), W: trackW, H: labelStripH}
		children = append(children, labelsView(c.points, strip, style))
	}
	if legendRowH > 0 {
		row := Rect{X: trackX, Y: track.Bottom() + labelStripH + 1, W: trackW, H: 1}
		children = append(children, legendView(legendInput, row, style))
	}

	frame := Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: trackH + labelStripH + legendRowH}
	return group(frame, false, children...)
}
