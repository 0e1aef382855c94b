package bench_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tjeromin/Sorting-Algorithms/pkg/bench"
	"github.com/tjeromin/Sorting-Algorithms/pkg/structs"
)

func fxReport() *structs.Report {
	started := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	return &structs.Report{
		Id:     "run1",
		Max:    1000,
		Size:   10000,
		Trials: 1,
		Results: structs.Results{
			{Name: "insertion", Stable: true, Runs: 1, Mean: 12.5, Min: 12.5, Max: 12.5},
			{Name: "quick", Runs: 1, Mean: 0.75, Min: 0.75, Max: 0.75},
			{Name: "a-name-that-is-longer-than-thirty", Runs: 1, Mean: 1},
		},
		Started: started,
		Ended:   started.Add(time.Second),
	}
}

func TestWriteReportText(t *testing.T) {
	buf := &bytes.Buffer{}

	err := bench.WriteReport(buf, fxReport(), "text")
	require.NoError(t, err)
	require.Equal(t, []string{
		"insertion ..................... 12.5000 ms",
		"quick ......................... 0.7500 ms",
		"a-name-that-is-longer-than-thirty  1.0000 ms",
		"",
	}, strings.Split(buf.String(), "\n"))
}

func TestTextLineWidth(t *testing.T) {
	line := bench.TextLine(structs.Result{Name: "merge-iterative", Mean: 3})

	require.Equal(t, bench.NameWidth+1, strings.Index(line, " 3.0000 ms"))
}

func TestWriteReportYAML(t *testing.T) {
	buf := &bytes.Buffer{}

	err := bench.WriteReport(buf, fxReport(), "yaml")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "id: run1\n")
	require.Contains(t, buf.String(), "- name: quick\n")
	require.Contains(t, buf.String(), "mean_ms: 0.75\n")
}

func TestWriteReportJSON(t *testing.T) {
	buf := &bytes.Buffer{}

	err := bench.WriteReport(buf, fxReport(), "json")
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"id": "run1"`)
	require.Contains(t, buf.String(), `"mean_ms": 12.5`)
	require.Contains(t, buf.String(), `"stable": true`)
}

func TestWriteReportUnknownFormat(t *testing.T) {
	err := bench.WriteReport(&bytes.Buffer{}, fxReport(), "csv")
	require.EqualError(t, err, "unknown output format: csv (expected one of text, yaml, json)")
	require.NoError(t, bench.ValidFormat("yaml"))
}
