// Package sorts implements the comparison sorts measured by sortbench.
//
// Every algorithm sorts a []int ascending in place and shares the Func
// signature, so the benchmark harness can drive them interchangeably.
package sorts

import (
	"os"

	"github.com/convox/logger"
)

var log = logger.NewWriter("ns=sorts", os.Stderr)

// Func sorts list ascending in place.
type Func func(list []int)

func less(a, b int) bool {
	return a < b
}
