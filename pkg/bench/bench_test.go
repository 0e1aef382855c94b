package bench_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/convox/logger"
	"github.com/stretchr/testify/require"
	"github.com/tjeromin/Sorting-Algorithms/pkg/bench"
	"github.com/tjeromin/Sorting-Algorithms/pkg/sorts"
)

func init() {
	logger.Output = &bytes.Buffer{}
}

func TestWorkload(t *testing.T) {
	a := bench.Workload(500, 1000, 42)
	b := bench.Workload(500, 1000, 42)
	c := bench.Workload(500, 1000, 43)

	require.Len(t, a, 500)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)

	for _, v := range a {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 1000)
	}

	require.Empty(t, bench.Workload(0, 1000, 0))
}

func TestNewSuite(t *testing.T) {
	cfg := bench.DefaultConfig()

	s, err := bench.NewSuite(cfg)
	require.NoError(t, err)
	require.Len(t, s.Entries, len(sorts.All()))

	cfg.Algorithms = []string{"bubble*"}

	s, err = bench.NewSuite(cfg)
	require.NoError(t, err)
	require.Len(t, s.Entries, 2)
	require.Equal(t, "bubble", s.Entries[0].Name)
	require.Equal(t, "bubble-swap", s.Entries[1].Name)

	cfg.Algorithms = []string{"bogo"}

	_, err = bench.NewSuite(cfg)
	require.EqualError(t, err, "no algorithm matches: bogo")
}

func TestRun(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Algorithms = []string{"merge-*", "quick"}
	cfg.Size = 500
	cfg.Trials = 3
	cfg.Seed = 9

	s, err := bench.NewSuite(cfg)
	require.NoError(t, err)

	progress := [][2]int{}

	s.Progress = func(current, total int) {
		progress = append(progress, [2]int{current, total})
	}

	r, err := bench.Run(s)
	require.NoError(t, err)

	require.NotEmpty(t, r.Id)
	require.Equal(t, 500, r.Size)
	require.Equal(t, 1000, r.Max)
	require.Equal(t, 3, r.Trials)
	require.Equal(t, int64(9), r.Seed)
	require.False(t, r.Started.IsZero())
	require.False(t, r.Ended.Before(r.Started))
	require.Empty(t, r.Failed())

	require.Len(t, r.Results, 3)
	require.Equal(t, "merge-recursive", r.Results[0].Name)
	require.Equal(t, "merge-iterative", r.Results[1].Name)
	require.Equal(t, "quick", r.Results[2].Name)

	for i, res := range r.Results {
		require.Equal(t, 3, res.Runs)
		require.Equal(t, 0, res.Failures)
		require.LessOrEqual(t, res.Min, res.Mean)
		require.LessOrEqual(t, res.Mean, res.Max)
		require.Len(t, s.Entries[i].Durations, 3)
	}

	require.True(t, r.Results[0].Stable)
	require.False(t, r.Results[2].Stable)

	require.Len(t, progress, 9)
	require.Equal(t, [2]int{1, 9}, progress[0])
	require.Equal(t, [2]int{9, 9}, progress[8])
}

func TestRunVerificationFailure(t *testing.T) {
	out := &bytes.Buffer{}
	logger.Output = out
	defer func() { logger.Output = &bytes.Buffer{} }()

	s := &bench.Suite{
		Config: bench.Config{Max: 1000, Size: 100, Trials: 2},
		Entries: []*bench.Entry{
			{Algorithm: sorts.Algorithm{Name: "noop", Sort: func([]int) {}}},
			{Algorithm: sorts.Algorithm{Name: "zero", Sort: func(list []int) {
				for i := range list {
					list[i] = 0
				}
			}}},
			{Algorithm: sorts.Algorithm{Name: "baseline", Sort: sorts.BaselineSort}},
		},
	}

	r, err := bench.Run(s)
	require.NoError(t, err)

	require.Equal(t, []string{"noop", "zero"}, r.Failed())
	require.Equal(t, 2, r.Results[0].Failures)
	require.Equal(t, 2, r.Results[1].Failures)
	require.Equal(t, 0, r.Results[2].Failures)
	require.Equal(t, 2, r.Results[2].Runs)

	require.Contains(t, out.String(), `ns=bench at=verify state=error algorithm=noop trial=0 error="not in order"`)
	require.Contains(t, out.String(), `ns=bench at=verify state=error algorithm=noop trial=1 error="not in order"`)
	require.Contains(t, out.String(), `ns=bench at=verify state=error algorithm=zero trial=0 error="not a permutation of the input"`)
	require.NotContains(t, out.String(), "algorithm=baseline")
	require.Contains(t, out.String(), "ns=bench at=run state=success id="+r.Id)
}

func TestRunTwice(t *testing.T) {
	calls := 0

	s := &bench.Suite{
		Config: bench.Config{Max: 1000, Size: 100, Trials: 2},
		Entries: []*bench.Entry{
			{Algorithm: sorts.Algorithm{Name: "flaky", Sort: func(list []int) {
				if calls++; calls > 2 {
					sorts.QuickSort(list)
				}
			}}},
		},
	}

	r, err := bench.Run(s)
	require.NoError(t, err)
	require.Equal(t, []string{"flaky"}, r.Failed())
	require.Equal(t, 2, r.Results[0].Runs)
	require.Equal(t, 2, r.Results[0].Failures)

	r, err = bench.Run(s)
	require.NoError(t, err)
	require.Empty(t, r.Failed())
	require.Equal(t, s.Config.Trials, r.Results[0].Runs)
	require.Equal(t, 0, r.Results[0].Failures)
	require.Len(t, s.Entries[0].Durations, 2)
}

func TestRunWorkloadIsolation(t *testing.T) {
	seen := [][]int{}

	record := func(list []int) {
		seen = append(seen, append([]int{}, list...))
		sorts.BaselineSort(list)
	}

	s := &bench.Suite{
		Config: bench.Config{Max: 1000, Size: 50, Seed: 3, Trials: 1},
		Entries: []*bench.Entry{
			{Algorithm: sorts.Algorithm{Name: "first", Sort: record}},
			{Algorithm: sorts.Algorithm{Name: "second", Sort: record}},
		},
	}

	_, err := bench.Run(s)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	require.Equal(t, bench.Workload(50, 1000, 3), seen[0])
	require.Equal(t, seen[0], seen[1])
}

func TestRunInvalidConfig(t *testing.T) {
	_, err := bench.Run(&bench.Suite{Config: bench.Config{Max: 1000, Trials: 0}})
	require.EqualError(t, err, "trials must be positive: 0")
}

func TestEntryResult(t *testing.T) {
	e := &bench.Entry{
		Algorithm: sorts.Algorithm{Name: "tim", Stable: true},
		Durations: []time.Duration{1 * time.Millisecond, 3 * time.Millisecond, 2 * time.Millisecond},
		Failures:  1,
	}

	res := e.Result()

	require.Equal(t, "tim", res.Name)
	require.True(t, res.Stable)
	require.Equal(t, 3, res.Runs)
	require.Equal(t, 1, res.Failures)
	require.Equal(t, 2.0, res.Mean)
	require.Equal(t, 1.0, res.Min)
	require.Equal(t, 3.0, res.Max)

	empty := (&bench.Entry{Algorithm: sorts.Algorithm{Name: "quick"}}).Result()
	require.Equal(t, 0, empty.Runs)
	require.Equal(t, 0.0, empty.Mean)
}

func TestMeasure(t *testing.T) {
	list := []int{3, 2, 1}

	d := bench.Measure(func(l []int) {
		time.Sleep(2 * time.Millisecond)
		sorts.InsertionSort(l)
	}, list)

	require.GreaterOrEqual(t, d, 2*time.Millisecond)
	require.Equal(t, []int{1, 2, 3}, list)
}
