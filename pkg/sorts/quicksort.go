package sorts

// QuickSort sorts the whole list with QuickSortRange.
func QuickSort(list []int) {
	QuickSortRange(list, 0, len(list)-1)
}

// QuickSortRange sorts list[low:high+1] around the last element of the range
// (Lomuto partition). Already sorted input is the O(n^2) worst case.
func QuickSortRange(list []int, low, high int) {
	if low >= high {
		return
	}

	pivot := list[high]
	i := low

	for j := low; j <= high; j++ {
		if list[j] < pivot {
			list[i], list[j] = list[j], list[i]
			i++
		}
	}

	list[i], list[high] = list[high], list[i]

	QuickSortRange(list, low, i-1)
	QuickSortRange(list, i+1, high)
}
