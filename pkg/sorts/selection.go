package sorts

// SelectionSort moves the minimum of the unsorted suffix to its front on
// every pass. O(n^2) comparisons, at most n-1 exchanges, not stable.
func SelectionSort(list []int) {
	for i := 0; i < len(list)-1; i++ {
		m := i
		for j := i + 1; j < len(list); j++ {
			if list[j] < list[m] {
				m = j
			}
		}
		tmp := list[i]
		list[i] = list[m]
		list[m] = tmp
	}
}

// SelectionSortOptimized is SelectionSort with its temporaries declared once
// outside the loops.
func SelectionSortOptimized(list []int) {
	var m, j, tmp int

	n := len(list)

	for i := 0; i < n-1; i++ {
		m = i
		for j = i + 1; j < n; j++ {
			if list[j] < list[m] {
				m = j
			}
		}
		tmp = list[i]
		list[i] = list[m]
		list[m] = tmp
	}
}
