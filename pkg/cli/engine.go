package cli

import (
	"os"

	"github.com/convox/stdcli"
	"github.com/tjeromin/Sorting-Algorithms/pkg/helpers"
)

type Engine struct {
	*stdcli.Engine
}

// Execute runs the benchmark when no command is given.
func (e *Engine) Execute(args []string) int {
	if len(args) == 0 {
		args = []string{"run"}
	}

	return e.Engine.Execute(args)
}

func (e *Engine) RegisterCommands() {
	for _, c := range commands {
		e.Command(c.Command, c.Description, c.Handler, c.Opts)
	}
}

var commands = []command{}

type command struct {
	Command     string
	Description string
	Handler     stdcli.HandlerFunc
	Opts        stdcli.CommandOptions
}

func register(cmd, description string, fn stdcli.HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
	})
}

func historyPath(c *stdcli.Context) string {
	return helpers.CoalesceString(c.String("history"), os.Getenv("SORTBENCH_HISTORY"))
}
