package ranking

// NeutralOverlap is returned when the item side has no declared age bounds:
// unknown age data neither helps nor hurts.
const NeutralOverlap = 0.5

// AgeOverlap computes how well the item's age range [itemMin,itemMax] covers
// the query range [qMin,qMax]. The raw intersection width is normalized by
// the average of both range widths and clamped to [0,1]. A zero result means
// the ranges are disjoint, which the hard filter treats as exclusion.
func AgeOverlap(qMin, qMax int, itemMin, itemMax *int) float64 {
	if itemMin == nil || itemMax == nil {
		return NeutralOverlap
	}

	start := max(qMin, *itemMin)
	end := min(qMax, *itemMax)
	if start > end {
		return 0
	}

	overlap := float64(end - start)
	avgRange := (float64(qMax-qMin) + float64(*itemMax-*itemMin)) / 2
	if avgRange <= 0 {
		// Both ranges are single ages and they intersect
		return 1
	}

	ratio := overlap / avgRange
	if ratio > 1 {
		return 1
	}
	return ratio
}
