package chart

// gridLineCount is how many dashed horizontal lines the background grid
// draws, independent of the data.
const gridLineCount = 5

// gridView renders the decorative background grid. With ShowGrid off it
// still returns a group covering the same frame, so toggling the grid never
// shifts the layout of anything drawn over it.
func gridView(bounds Rect, style BarStyle) *Node {
	root := group(bounds, true)
	if !style.ShowGrid || bounds.H <= 0 || bounds.W <= 0 {
		return root
	}

	step := bounds.H / float64(gridLineCount-1)
	for i := 0; i < gridLineCount; i++ {
		y := bounds.Y + float64(i)*step
		if i == gridLineCount-1 {
			y = bounds.Bottom() - 1
		}
		root.Children = append(root.Children, &Node{
			Kind:       NodeGridLine,
			Frame:      Rect{X: bounds.X, Y: y, W: bounds.W, H: 1},
			Color:      style.GridColor,
			Dashed:     true,
			Decorative: true,
		})
	}
	return root
}
