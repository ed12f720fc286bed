package risk

import "sort"

// Banding is an ordered set of half-open bands over a continuous
// measurement. Element i is the inclusive lower bound of band i; band i
// ends where band i+1 begins and the last band is unbounded above. Values
// below the first bound clamp to band 0, so every input resolves to
// exactly one band.
type Banding []float64

// Assign returns the highest band whose lower bound does not exceed v.
func (b Banding) Assign(v float64) int {
	i := sort.SearchFloat64s(b, v)
	if i < len(b) && b[i] == v {
		return i
	}
	if i == 0 {
		return 0
	}
	return i - 1
}

// PointBanding pairs a banding with the points awarded per band.
type PointBanding struct {
	Bounds Banding
	Points []int
}

// PointsFor returns the points of the band v falls in.
func (p PointBanding) PointsFor(v float64) int {
	return p.Points[p.Bounds.Assign(v)]
}
