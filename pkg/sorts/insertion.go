package sorts

import (
	"github.com/pkg/errors"
)

// ErrInvalidRange is returned for a range outside the list or with low >= high.
var ErrInvalidRange = errors.New("invalid range")

// InsertionSort sorts the whole list. Lists shorter than two elements are
// already sorted.
func InsertionSort(list []int) {
	if len(list) < 2 {
		return
	}

	insertionSort(list, 0, len(list)-1, less)
}

// InsertionSortRange sorts list[low:high+1]. An invalid range is logged and
// returned as ErrInvalidRange; the list is left untouched.
func InsertionSortRange(list []int, low, high int) error {
	if err := checkRange(len(list), low, high); err != nil {
		log.At("insertion").Logf("state=error error=%q", err)
		return err
	}

	insertionSort(list, low, high, less)

	return nil
}

func checkRange(n, low, high int) error {
	switch {
	case low >= high:
		return errors.Wrapf(ErrInvalidRange, "low %d >= high %d", low, high)
	case low < 0:
		return errors.Wrapf(ErrInvalidRange, "low %d < 0", low)
	case high >= n:
		return errors.Wrapf(ErrInvalidRange, "high %d >= length %d", high, n)
	}

	return nil
}

func insertionSort[E any](list []E, low, high int, lt func(a, b E) bool) {
	for i := low + 1; i <= high; i++ {
		for j := i; j > low && lt(list[j], list[j-1]); j-- {
			list[j-1], list[j] = list[j], list[j-1]
		}
	}
}
