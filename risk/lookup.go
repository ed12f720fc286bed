package risk

import "sort"

// PointTable is an ordered mapping from integer point totals to risk
// percentages for one stratum. Keys are strictly increasing. Totals beyond
// either end clamp to the extreme tabulated value: published charts cap
// their top bucket (for example ">=30%") and risks are never extrapolated.
type PointTable struct {
	Keys []int
	Risk []float64
}

// Lookup returns the tabulated risk for a point total. Totals between
// tabulated keys resolve to the highest key not exceeding the total.
func (t PointTable) Lookup(points int) float64 {
	last := len(t.Keys) - 1
	if points <= t.Keys[0] {
		return t.Risk[0]
	}
	if points >= t.Keys[last] {
		return t.Risk[last]
	}
	i := sort.SearchInts(t.Keys, points)
	if t.Keys[i] == points {
		return t.Risk[i]
	}
	return t.Risk[i-1]
}

// Monotonic reports whether risk never decreases as points grow. Clinical
// scores are monotonic by construction; the test suite verifies this for
// every shipped table.
func (t PointTable) Monotonic() bool {
	for i := 1; i < len(t.Risk); i++ {
		if t.Risk[i] < t.Risk[i-1] {
			return false
		}
	}
	return true
}

// BucketTable maps a score to one of an ordered set of categorical risk
// labels. Labels[0] is the floor bucket; Mins[i] is the lowest score
// classified as Labels[i+1], so len(Mins) == len(Labels)-1.
type BucketTable struct {
	Mins   []int
	Labels []string
}

// Lookup returns the bucket label for a score.
func (t BucketTable) Lookup(score int) string {
	label := t.Labels[0]
	for i, min := range t.Mins {
		if score >= min {
			label = t.Labels[i+1]
		}
	}
	return label
}
