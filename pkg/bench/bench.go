// Package bench measures the sort algorithms against a shared random
// workload and aggregates the timings into a report.
package bench

import (
	"os"
	"time"

	"github.com/convox/logger"
	uuid "github.com/satori/go.uuid"
	"github.com/tjeromin/Sorting-Algorithms/pkg/helpers"
	"github.com/tjeromin/Sorting-Algorithms/pkg/sorts"
	"github.com/tjeromin/Sorting-Algorithms/pkg/structs"
)

var log = logger.NewWriter("ns=bench", os.Stderr)

// Entry is one algorithm under measurement and every duration recorded
// for it so far.
type Entry struct {
	sorts.Algorithm

	Durations []time.Duration
	Failures  int
}

// Suite is the complete state of a benchmark: the configuration, the
// entries being measured and an optional progress callback that receives the
// number of finished and total runs.
type Suite struct {
	Config   Config
	Entries  []*Entry
	Progress func(current, total int)
}

// NewSuite creates a suite with an entry for every algorithm matching
// cfg.Algorithms.
func NewSuite(cfg Config) (*Suite, error) {
	aa, err := sorts.Match(cfg.Algorithms...)
	if err != nil {
		return nil, err
	}

	s := &Suite{Config: cfg}

	for _, a := range aa {
		s.Entries = append(s.Entries, &Entry{Algorithm: a})
	}

	return s, nil
}

// Measure returns the wall clock time fn takes to sort list.
func Measure(fn sorts.Func, list []int) time.Duration {
	start := time.Now()
	fn(list)
	return time.Since(start)
}

// Run measures every entry of s once per trial, discarding measurements left
// by an earlier run of the same suite. Each entry sorts its own copy
// of the trial's workload; output that is unsorted or not a permutation of
// the workload is logged and counted as a failure without stopping the run.
func Run(s *Suite) (*structs.Report, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}

	cfg := s.Config

	r := &structs.Report{
		Id:      uuid.NewV4().String(),
		Max:     cfg.Max,
		Seed:    cfg.Seed,
		Size:    cfg.Size,
		Trials:  cfg.Trials,
		Started: time.Now().UTC(),
	}

	for _, e := range s.Entries {
		e.Durations = e.Durations[:0]
		e.Failures = 0
	}

	l := log.At("run").Start()

	total := cfg.Trials * len(s.Entries)
	current := 0

	for t := 0; t < cfg.Trials; t++ {
		workload := Workload(cfg.Size, cfg.Max, cfg.Seed+int64(t))

		for _, e := range s.Entries {
			list := make([]int, len(workload))
			copy(list, workload)

			e.Durations = append(e.Durations, Measure(e.Sort, list))

			if problem := verify(workload, list); problem != "" {
				e.Failures++
				log.At("verify").Logf("state=error algorithm=%s trial=%d error=%q", e.Name, t, problem)
			}

			current++

			if s.Progress != nil {
				s.Progress(current, total)
			}
		}
	}

	for _, e := range s.Entries {
		r.Results = append(r.Results, e.Result())
	}

	r.Ended = time.Now().UTC()

	l.Successf("id=%s algorithms=%d trials=%d size=%d", r.Id, len(s.Entries), cfg.Trials, cfg.Size)

	return r, nil
}

// Result aggregates the recorded durations of e.
func (e *Entry) Result() structs.Result {
	res := structs.Result{
		Name:     e.Name,
		Stable:   e.Stable,
		Runs:     len(e.Durations),
		Failures: e.Failures,
	}

	if len(e.Durations) == 0 {
		return res
	}

	var sum time.Duration

	lo, hi := e.Durations[0], e.Durations[0]

	for _, d := range e.Durations {
		sum += d
		lo = min(lo, d)
		hi = max(hi, d)
	}

	res.Mean = helpers.Milliseconds(sum / time.Duration(len(e.Durations)))
	res.Min = helpers.Milliseconds(lo)
	res.Max = helpers.Milliseconds(hi)

	return res
}

func verify(workload, list []int) string {
	switch {
	case !sorts.IsSorted(list):
		return "not in order"
	case !sorts.IsPermutation(workload, list):
		return "not a permutation of the input"
	}

	return ""
}
