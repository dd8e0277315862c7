package engine

import "slices"

// Median returns the median of values, leaving the input unmodified.
// For an even count the two middle values are averaged with integer
// division; for an odd count the middle value is returned directly.
// An empty slice yields zero.
func Median(values []uint16) uint16 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]uint16, len(values))
	copy(sorted, values)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// MinWithIndex returns the minimum value and its index. Ties keep the first
// occurrence. Returns (0, -1) for an empty slice.
func MinWithIndex(values []uint16) (uint16, int) {
	if len(values) == 0 {
		return 0, -1
	}
	minVal, minIdx := values[0], 0
	for i, v := range values[1:] {
		if v < minVal {
			minVal = v
			minIdx = i + 1
		}
	}
	return minVal, minIdx
}

// MaxWithIndex returns the maximum value and its index. Ties keep the first
// occurrence, the same rule as MinWithIndex. Returns (0, -1) for an empty
// slice.
func MaxWithIndex(values []uint16) (uint16, int) {
	if len(values) == 0 {
		return 0, -1
	}
	maxVal, maxIdx := values[0], 0
	for i, v := range values[1:] {
		if v > maxVal {
			maxVal = v
			maxIdx = i + 1
		}
	}
	return maxVal, maxIdx
}
