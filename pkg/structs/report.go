package structs

import "time"

type Report struct {
	Id string `json:"id" yaml:"id"`

	Max    int   `json:"max" yaml:"max"`
	Seed   int64 `json:"seed" yaml:"seed"`
	Size   int   `json:"size" yaml:"size"`
	Trials int   `json:"trials" yaml:"trials"`

	Results Results `json:"results" yaml:"results"`

	Started time.Time `json:"started" yaml:"started"`
	Ended   time.Time `json:"ended" yaml:"ended"`
}

type Reports []Report

// Result is the aggregate of every timed run of one algorithm. Durations are
// in milliseconds.
type Result struct {
	Name     string  `json:"name" yaml:"name"`
	Stable   bool    `json:"stable" yaml:"stable"`
	Runs     int     `json:"runs" yaml:"runs"`
	Failures int     `json:"failures" yaml:"failures"`
	Mean     float64 `json:"mean_ms" yaml:"mean_ms"`
	Min      float64 `json:"min_ms" yaml:"min_ms"`
	Max      float64 `json:"max_ms" yaml:"max_ms"`
}

type Results []Result

// Failed returns the names of algorithms that left any run unsorted.
func (r *Report) Failed() []string {
	names := []string{}

	for _, res := range r.Results {
		if res.Failures > 0 {
			names = append(names, res.Name)
		}
	}

	return names
}
