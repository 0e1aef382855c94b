package bench

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/tjeromin/Sorting-Algorithms/pkg/sorts"
)

type scenario struct {
	name string
	in   []int
}

func scenarios() []scenario {
	return []scenario{
		{"five", []int{5, 3, 1, 4, 2}},
		{"empty", []int{}},
		{"single", []int{7}},
		{"duplicates", []int{2, 2, 1, 1}},
		{"negative", []int{21, -10, 54, 0, -1098309}},
		{"odd length", Workload(13, 1000, 13)},
		{"run boundary", Workload(2*sorts.RunSize+1, 10, 3)},
		{"workload", Workload(1000, DefaultMax, 0)},
	}
}

// Check sorts a fixed set of inputs with a and returns an error naming the
// first one that does not come out sorted, as a permutation of itself, and
// unchanged when sorted a second time.
func Check(a sorts.Algorithm) error {
	for _, sc := range scenarios() {
		list := append([]int{}, sc.in...)

		if err := safeSort(a.Sort, list); err != nil {
			return errors.Wrapf(err, "%s", sc.name)
		}

		if problem := verify(sc.in, list); problem != "" {
			return errors.Errorf("%s: %s", sc.name, problem)
		}

		again := append([]int{}, list...)

		if err := safeSort(a.Sort, again); err != nil {
			return errors.Wrapf(err, "%s", sc.name)
		}

		if !reflect.DeepEqual(list, again) {
			return errors.Errorf("%s: not idempotent", sc.name)
		}
	}

	return nil
}

func safeSort(fn sorts.Func, list []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	fn(list)

	return nil
}
