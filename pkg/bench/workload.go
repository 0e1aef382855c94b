package bench

import "math/rand"

// Workload returns size pseudo-random integers in [0, max). The same seed
// always yields the same workload.
func Workload(size, max int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))

	list := make([]int, size)

	for i := range list {
		list[i] = r.Intn(max)
	}

	return list
}
