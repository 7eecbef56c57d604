package chart

// scaleReference returns the value every bar height is scaled against: the
// maximum across the data points and the limit, forced to 1 when nothing is
// positive so scaling never divides by zero. Bars and axis labels must share
// this reference or they drift apart.
func scaleReference(points []DataPoint, limit *DataPoint) float64 {
	ref := 0.0
	for _, dp := range points {
		if dp.Value > ref {
			ref = dp.Value
		}
	}
	if limit != nil && limit.Value > ref {
		ref = limit.Value
	}
	if ref <= 0 {
		return 1
	}
	return ref
}

// scaledHeight maps a value onto the track, clamped to a non-negative
// height. Zero and negative values collapse to zero-height bars.
func scaledHeight(value, reference, track float64) float64 {
	if value <= 0 || reference <= 0 || track <= 0 {
		return 0
	}
	h := value / reference * track
	if h < 0 {
		return 0
	}
	return h
}
