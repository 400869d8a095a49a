package util

// MinIndex returns the index of the smallest value, the first one on ties,
// or -1 when values is empty.
func MinIndex(values []int) int {
	if len(values) == 0 {
		return -1
	}
	minIndex := 0
	for i, value := range values {
		if value < values[minIndex] {
			minIndex = i
		}
	}
	return minIndex
}
