package cli

import (
	"github.com/convox/stdcli"
)

var (
	flagAlgorithms = stdcli.StringFlag("algorithms", "a", "comma separated algorithm names or globs")
	flagHistory    = stdcli.StringFlag("history", "", "bolt file holding past runs")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}
