package view

// lastReversed returns the last n elements of items, newest first.
func lastReversed[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}

// Recent returns up to n of the most recently appended entries, newest first.
// Orders are cached newest-first already, so callers pass collections that
// append on insert (products, suppliers).
func Recent[T any](items []T, n int) []T {
	return lastReversed(items, n)
}

// Head returns up to n leading entries, used for the newest-first order cache.
func Head[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
