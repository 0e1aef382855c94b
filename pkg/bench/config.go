package bench

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tjeromin/Sorting-Algorithms/pkg/helpers"
	"github.com/tjeromin/Sorting-Algorithms/pkg/structs"
	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultMax    = 1000
	DefaultSize   = 10000
	DefaultTrials = 1
)

// Config is a fully resolved benchmark configuration.
type Config struct {
	Algorithms []string
	Max        int
	Seed       int64
	Size       int
	Trials     int
}

// DefaultConfig sorts 10000 integers in [0, 1000) once with seed 0.
func DefaultConfig() Config {
	return Config{
		Max:    DefaultMax,
		Size:   DefaultSize,
		Trials: DefaultTrials,
	}
}

// Apply returns c with every non-nil field of opts applied.
func (c Config) Apply(opts structs.RunOptions) Config {
	if opts.Algorithms != nil {
		c.Algorithms = Patterns(*opts.Algorithms)
	}

	if opts.Seed != nil {
		c.Seed = int64(*opts.Seed)
	}

	c.Max = helpers.DefaultInt(opts.Max, c.Max)
	c.Size = helpers.DefaultInt(opts.Size, c.Size)
	c.Trials = helpers.DefaultInt(opts.Trials, c.Trials)

	return c
}

// Validate rejects negative sizes and non-positive max or trials.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return errors.Errorf("size must not be negative: %d", c.Size)
	case c.Max < 1:
		return errors.Errorf("max must be positive: %d", c.Max)
	case c.Trials < 1:
		return errors.Errorf("trials must be positive: %d", c.Trials)
	}

	return nil
}

// EnvOptions reads the SORTBENCH_* environment variables.
func EnvOptions() (structs.RunOptions, error) {
	var opts structs.RunOptions
	var err error

	opts.Algorithms = helpers.EnvString("SORTBENCH_ALGORITHMS")

	for name, v := range map[string]**int{
		"SORTBENCH_MAX":    &opts.Max,
		"SORTBENCH_SEED":   &opts.Seed,
		"SORTBENCH_SIZE":   &opts.Size,
		"SORTBENCH_TRIALS": &opts.Trials,
	} {
		if *v, err = helpers.EnvInt(name); err != nil {
			return structs.RunOptions{}, err
		}
	}

	return opts, nil
}

// LoadOptions parses a YAML config file. Unknown keys are an error.
func LoadOptions(data []byte) (structs.RunOptions, error) {
	var opts structs.RunOptions

	if err := yaml.UnmarshalStrict(data, &opts); err != nil {
		return structs.RunOptions{}, errors.Wrap(err, "invalid config")
	}

	return opts, nil
}

// Resolve layers the defaults, the environment, the config file at path (or
// SORTBENCH_CONFIG when path is empty) and flags, then validates the result.
func Resolve(path string, flags structs.RunOptions) (Config, error) {
	c := DefaultConfig()

	env, err := EnvOptions()
	if err != nil {
		return Config{}, err
	}

	c = c.Apply(env)

	if path = helpers.CoalesceString(path, os.Getenv("SORTBENCH_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.WithStack(err)
		}

		file, err := LoadOptions(data)
		if err != nil {
			return Config{}, errors.Wrap(err, path)
		}

		c = c.Apply(file)
	}

	c = c.Apply(flags)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Patterns splits a comma separated list of algorithm patterns.
func Patterns(s string) []string {
	patterns := []string{}

	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}

	return patterns
}
