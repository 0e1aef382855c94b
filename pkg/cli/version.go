package cli

import (
	"github.com/convox/stdcli"
)

func init() {
	register("version", "display version information", Version, stdcli.CommandOptions{
		Validate: stdcli.Args(0),
	})
}

func Version(c *stdcli.Context) error {
	c.Writef("version: <info>%s</info>\n", c.Version())
	return nil
}
