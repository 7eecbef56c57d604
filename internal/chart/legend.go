package chart

import "github.com/samber/lo"

// legendEntries collects the distinct legends referenced by the data points,
// preserving first-seen order. Points without a legend contribute nothing.
func legendEntries(points []DataPoint) []Legend {
	collected := lo.FilterMap(points, func(dp DataPoint, _ int) (Legend, bool) {
		if dp.Legend == nil {
			return Legend{}, false
		}
		return *dp.Legend, true
	})
	return lo.Uniq(collected)
}

// legendView renders one swatch+caption entry per distinct legend in a
// single row. With no legends at all the group stays empty.
func legendView(points []DataPoint, bounds Rect, style BarStyle) *Node {
	root := group(bounds, true)

	x := bounds.X
	for _, lg := range legendEntries(points) {
		swatch := &Node{
			Kind:       NodeSwatch,
			Frame:      Rect{X: x, Y: bounds.Y, W: 1, H: 1},
			Color:      lg.Color,
			Decorative: true,
		}
		caption := &Node{
			Kind:       NodeText,
			Frame:      Rect{X: x + 2, Y: bounds.Y, W: float64(len([]rune(lg.Label))), H: 1},
			Color:      lg.Color,
			Text:       lg.Label,
			Font:       FontCaption,
			Decorative: true,
		}
		root.Children = append(root.Children, swatch, caption)
		x = caption.Frame.Right() + 2
	}
	return root
}
