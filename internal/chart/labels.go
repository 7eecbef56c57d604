package chart

// labelIndices picks which data-point indices keep their labels. Asking for
// k >= n keeps all of them; 0 < k < n keeps an evenly strided subset of
// exactly k indices that always includes the first and the last; k <= 0
// keeps none. k == 1 keeps just the first index.
func labelIndices(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if k == 1 {
		return []int{0}
	}
	idx := make([]int, k)
	for i := 0; i < k; i++ {
		idx[i] = i * (n - 1) / (k - 1)
	}
	return idx
}

// labelsView lays the selected data-point labels out in the label strip
// under the bars. Each shown label occupies its source bar's slot, so it
// stays visually aligned with the bar above it even after down-sampling.
func labelsView(points []DataPoint, bounds Rect, style BarStyle) *Node {
	root := group(bounds, true)
	if len(points) == 0 || bounds.W <= 0 {
		return root
	}

	want := len(points)
	if style.LabelCount != nil {
		want = *style.LabelCount
	}

	slot := bounds.W / float64(len(points))
	for _, i := range labelIndices(len(points), want) {
		root.Children = append(root.Children, &Node{
			Kind:       NodeText,
			Frame:      Rect{X: bounds.X + float64(i)*slot, Y: bounds.Y, W: slot, H: bounds.H},
			Color:      style.LabelColor,
			Text:       points[i].Label,
			Font:       style.LabelFont,
			Decorative: true,
		})
	}
	return root
}
