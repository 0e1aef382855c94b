package sorts

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Algorithm is a named sort function the harness can measure.
type Algorithm struct {
	Name        string
	Description string
	Sort        Func
	Stable      bool
}

// Algorithms is an ordered set of algorithms.
type Algorithms []Algorithm

// All returns every algorithm in report order.
func All() Algorithms {
	return Algorithms{
		{Name: "selection", Description: "selection sort", Sort: SelectionSort},
		{Name: "selection-optimized", Description: "selection sort, hoisted temporaries", Sort: SelectionSortOptimized},
		{Name: "bubble", Description: "bubble sort", Sort: BubbleSort, Stable: true},
		{Name: "bubble-swap", Description: "bubble sort, tuple swap", Sort: BubbleSortSwap, Stable: true},
		{Name: "insertion", Description: "insertion sort", Sort: InsertionSort, Stable: true},
		{Name: "merge-recursive", Description: "top down merge sort", Sort: MergeSortRecursive, Stable: true},
		{Name: "merge-iterative", Description: "bottom up merge sort", Sort: MergeSortIterative, Stable: true},
		{Name: "quick", Description: "quicksort, last element pivot", Sort: QuickSort},
		{Name: "tim", Description: "simplified timsort", Sort: TimSort, Stable: true},
		{Name: "baseline", Description: "standard library sort.Ints", Sort: BaselineSort},
		{Name: "heap", Description: "algoimpl heap sort", Sort: HeapSort},
	}
}

// Find returns the algorithm called name.
func Find(name string) (*Algorithm, error) {
	for _, a := range All() {
		if a.Name == name {
			return &a, nil
		}
	}

	return nil, errors.Errorf("no such algorithm: %s", name)
}

// Match returns the algorithms whose names match any of the glob patterns,
// in report order. No patterns selects every algorithm.
func Match(patterns ...string) (Algorithms, error) {
	all := All()

	if len(patterns) == 0 {
		return all, nil
	}

	globs := make([]glob.Glob, len(patterns))
	hits := make([]bool, len(patterns))

	for i, p := range patterns {
		g, err := glob.Compile(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pattern: %s", p)
		}
		globs[i] = g
	}

	matched := Algorithms{}

	for _, a := range all {
		found := false

		for i, g := range globs {
			if g.Match(a.Name) {
				hits[i] = true
				found = true
			}
		}

		if found {
			matched = append(matched, a)
		}
	}

	for i, hit := range hits {
		if !hit {
			return nil, errors.Errorf("no algorithm matches: %s", patterns[i])
		}
	}

	return matched, nil
}
