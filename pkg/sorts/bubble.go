package sorts

// BubbleSort exchanges adjacent out of order pairs. Everything above the
// last exchange of a pass is in its final position, so the next pass stops
// there.
func BubbleSort(list []int) {
	bubbleSort(list, less)
}

// BubbleSortSwap is BubbleSort exchanging through tuple assignment instead
// of a temporary.
func BubbleSortSwap(list []int) {
	bubbleSortSwap(list, less)
}

func bubbleSort[E any](list []E, lt func(a, b E) bool) {
	n := len(list)

	for n > 1 {
		last := 0

		for i := 1; i < n; i++ {
			if lt(list[i], list[i-1]) {
				tmp := list[i-1]
				list[i-1] = list[i]
				list[i] = tmp
				last = i
			}
		}

		n = last
	}
}

func bubbleSortSwap[E any](list []E, lt func(a, b E) bool) {
	n := len(list)

	for n > 1 {
		last := 0

		for i := 1; i < n; i++ {
			if lt(list[i], list[i-1]) {
				list[i-1], list[i] = list[i], list[i-1]
				last = i
			}
		}

		n = last
	}
}
