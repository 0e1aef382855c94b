package structs

// RunOptions are the benchmark settings a caller may override. Nil fields
// keep the value from the next source in line: flags, config file,
// environment, defaults.
type RunOptions struct {
	Algorithms *string `flag:"algorithms,a" yaml:"algorithms"`
	Max        *int    `flag:"max" yaml:"max"`
	Seed       *int    `flag:"seed,s" yaml:"seed"`
	Size       *int    `flag:"size,n" yaml:"size"`
	Trials     *int    `flag:"trials,t" yaml:"trials"`
}

// ReportOptions control where and how a finished run is rendered.
type ReportOptions struct {
	File     *string `flag:"file,f" desc:"write the report to a file"`
	Output   *string `flag:"output,o" desc:"output format: text, yaml or json"`
	Progress *bool   `flag:"progress" desc:"show a progress bar on stderr"`
}
