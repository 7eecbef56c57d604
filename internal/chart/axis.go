package chart

import "fmt"

// axisView renders the value scale beside the bar track: three evenly
// spaced markers (reference, half, zero) formatted as text. It derives the
// reference through the same scaleReference as barsView, otherwise the
// markers would not line up with the bar heights. The whole axis is
// decorative.
func axisView(points []DataPoint, limit *DataPoint, bounds Rect, style BarStyle) *Node {
	root := group(bounds, true)
	if bounds.W <= 0 || bounds.H <= 0 {
		return root
	}

	ref := scaleReference(points, limit)
	markers := []struct {
		value float64
		y     float64
	}{
		{ref, bounds.Y},
		{ref / 2, bounds.Y + bounds.H/2},
		{0, bounds.Bottom() - 1},
	}

	for _, m := range markers {
		root.Children = append(root.Children, &Node{
			Kind:       NodeText,
			Frame:      Rect{X: bounds.X, Y: m.y, W: bounds.W, H: 1},
			Color:      style.AxisColor,
			Text:       formatAxisValue(m.value),
			Font:       FontCaption,
			Decorative: true,
		})
	}
	return root
}

// formatAxisValue keeps scale markers short: thousands and millions get a
// suffix, whole numbers lose the fraction.
func formatAxisValue(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	case v == float64(int64(v)):
		return fmt.Sprintf("%d", int64(v))
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
