package util

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// FloorDiv returns the quotient of a divided by b, rounded toward negative
// infinity. It differs from Go's native integer division, which truncates
// toward zero, for negative quotients with a non-zero remainder.
//
// FloorDiv panics when b is 0, matching the native operator.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
