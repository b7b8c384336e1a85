package planner

// Position math for entries inside one plan cell. The repository
// persists the results; everything here is pure so any caller (HTTP
// handler, test, future UI) gets identical ordering behavior.

// NextPosition returns the append position for a cell that currently
// holds the given positions: max+1, or 0 for an empty cell.
func NextPosition(existing []int) int {
	next := 0
	for _, p := range existing {
		if p >= next {
			next = p + 1
		}
	}
	return next
}

// ApplyMove reorders the items of one cell by moving the element at
// fromIndex to toIndex, returning a new slice. Indexes outside the
// slice leave the input untouched.
func ApplyMove[T any](items []T, fromIndex, toIndex int) []T {
	n := len(items)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return items
	}
	out := make([]T, 0, n)
	out = append(out, items[:fromIndex]...)
	out = append(out, items[fromIndex+1:]...)
	out = append(out[:toIndex], append([]T{items[fromIndex]}, out[toIndex:]...)...)
	return out
}

// DensePositions returns the contiguous 0..n-1 positions for a cell of
// n entries, the invariant every insert/reorder/move re-establishes.
func DensePositions(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// IsDense reports whether positions form exactly {0..n-1} in any order.
func IsDense(positions []int) bool {
	seen := make([]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(positions) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
