package sorts

// Merge returns a new sorted slice holding every element of the sorted
// slices a and b. Equal elements of a come before those of b.
func Merge(a, b []int) []int {
	return merge(a, b, less)
}

// MergeRange merges the sorted runs list[l:m+1] and list[m+1:r+1] in place.
// Callers guarantee l <= m < r.
func MergeRange(list []int, l, m, r int) {
	mergeRange(list, l, m, r, less)
}

func merge[E any](a, b []E, lt func(a, b E) bool) []E {
	merged := make([]E, 0, len(a)+len(b))

	i, j := 0, 0

	for i < len(a) && j < len(b) {
		if lt(b[j], a[i]) {
			merged = append(merged, b[j])
			j++
		} else {
			merged = append(merged, a[i])
			i++
		}
	}

	merged = append(merged, a[i:]...)

	return append(merged, b[j:]...)
}

func mergeRange[E any](list []E, l, m, r int, lt func(a, b E) bool) {
	left := make([]E, m-l+1)
	right := make([]E, r-m)

	copy(left, list[l:m+1])
	copy(right, list[m+1:r+1])

	mergeInto(list[l:r+1], left, right, lt)
}

// mergeBuffered merges like mergeRange but stages both runs in buf, which
// must be at least as long as list.
func mergeBuffered[E any](list, buf []E, l, m, r int, lt func(a, b E) bool) {
	copy(buf[l:r+1], list[l:r+1])

	mergeInto(list[l:r+1], buf[l:m+1], buf[m+1:r+1], lt)
}

func mergeInto[E any](dst, left, right []E, lt func(a, b E) bool) {
	i, j, k := 0, 0, 0

	for i < len(left) && j < len(right) {
		if lt(right[j], left[i]) {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}

	for ; i < len(left); i, k = i+1, k+1 {
		dst[k] = left[i]
	}

	for ; j < len(right); j, k = j+1, k+1 {
		dst[k] = right[j]
	}
}
