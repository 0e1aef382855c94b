package sorts

// MergeSortRecursive splits the list at its midpoint, sorts both halves
// recursively and merges them back into list.
func MergeSortRecursive(list []int) {
	mergeSortRecursive(list, less)
}

// MergeSortIterative merges runs of width 1, 2, 4, ... bottom up through a
// single buffer. A trailing run without a partner is left for a later pass.
func MergeSortIterative(list []int) {
	mergeSortIterative(list, less)
}

func mergeSortRecursive[E any](list []E, lt func(a, b E) bool) {
	if len(list) <= 1 {
		return
	}

	mid := len(list) / 2

	a := append([]E(nil), list[:mid]...)
	b := append([]E(nil), list[mid:]...)

	mergeSortRecursive(a, lt)
	mergeSortRecursive(b, lt)

	copy(list, merge(a, b, lt))
}

func mergeSortIterative[E any](list []E, lt func(a, b E) bool) {
	n := len(list)

	if n < 2 {
		return
	}

	buf := make([]E, n)

	for width := 1; width < n; width *= 2 {
		for lo := 0; lo+width < n; lo += 2 * width {
			mid := lo + width - 1
			hi := min(lo+2*width, n) - 1

			mergeBuffered(list, buf, lo, mid, hi, lt)
		}
	}
}
