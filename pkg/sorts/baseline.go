package sorts

import (
	"sort"

	algosort "github.com/twmb/algoimpl/go/sort"
)

// BaselineSort is the standard library sort.
func BaselineSort(list []int) {
	sort.Ints(list)
}

// HeapSort is the algoimpl heap sort, a second library reference.
func HeapSort(list []int) {
	algosort.HeapSort(sort.IntSlice(list))
}
