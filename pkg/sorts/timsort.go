package sorts

// RunSize is the length of the blocks TimSort insertion sorts before merging.
const RunSize = 32

// TimSort insertion sorts fixed RunSize blocks, then merges neighbouring
// blocks with doubling width until one run covers the list.
func TimSort(list []int) {
	timSort(list, less)
}

func timSort[E any](list []E, lt func(a, b E) bool) {
	n := len(list)

	for i := 0; i < n-1; i += RunSize {
		insertionSort(list, i, min(i+RunSize-1, n-1), lt)
	}

	for size := RunSize; size < n; size *= 2 {
		for left := 0; left < n; left += 2 * size {
			mid := left + size - 1
			right := min(left+2*size-1, n-1)

			if mid < right {
				mergeRange(list, left, mid, right, lt)
			}
		}
	}
}
