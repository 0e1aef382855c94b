package sorts

// IsSorted reports whether every element is less than or equal to its
// successor.
func IsSorted(list []int) bool {
	for i := 1; i < len(list); i++ {
		if list[i-1] > list[i] {
			return false
		}
	}

	return true
}

// IsPermutation reports whether a and b hold the same values with the same
// multiplicities.
func IsPermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	counts := map[int]int{}

	for _, v := range a {
		counts[v]++
	}

	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}

	return true
}
