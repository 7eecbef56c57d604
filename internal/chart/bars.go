package chart

// barGapFraction is the share of each bar slot left as spacing. The
// remainder is the bar itself, centered in its slot.
const barGapFraction = 0.2

// barsView lays the data points out as proportional bars inside track. The
// limit, when present, becomes a single rule node spanning the full track
// width at its scaled height; it is not a bar and takes no slot. Bar order
// always matches input order.
func barsView(points []DataPoint, limit *DataPoint, track Rect, style BarStyle) *Node {
	root := group(track, false)
	if len(points) == 0 && limit == nil {
		return root
	}

	ref := scaleReference(points, limit)
	fallback := style.BarColor
	if fallback == "" {
		fallback = DefaultBarColor
	}

	if n := len(points); n > 0 {
		slot := track.W / float64(n)
		barW := slot * (1 - barGapFraction)
		for i, dp := range points {
			h := scaledHeight(dp.Value, ref, track.H)
			color := fallback
			if dp.Legend != nil {
				color = dp.Legend.Color
			}
			root.Children = append(root.Children, &Node{
				Kind: NodeBar,
				Frame: Rect{
					X: track.X + float64(i)*slot + (slot-barW)/2,
					Y: track.Bottom() - h,
					W: barW,
					H: h,
				},
				Color:        color,
				Text:         dp.Label,
				CornerRadius: style.CornerRadius,
				Corners:      style.Corners,
			})
		}
	}

	if limit != nil {
		color := fallback
		if limit.Legend != nil {
			color = limit.Legend.Color
		}
		root.Children = append(root.Children, &Node{
			Kind: NodeRule,
			Frame: Rect{
				X: track.X,
				Y: track.Bottom() - scaledHeight(limit.Value, ref, track.H),
				W: track.W,
				H: 1,
			},
			Color: color,
			Text:  limit.Label,
		})
	}

	return root
}
