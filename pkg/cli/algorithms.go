package cli

import (
	"github.com/convox/stdcli"
	"github.com/tjeromin/Sorting-Algorithms/pkg/sorts"
)

func init() {
	register("algorithms", "list the available algorithms", Algorithms, stdcli.CommandOptions{
		Validate: stdcli.Args(0),
	})
}

func Algorithms(c *stdcli.Context) error {
	t := c.Table("NAME", "STABLE", "DESCRIPTION")

	for _, a := range sorts.All() {
		stable := "no"
		if a.Stable {
			stable = "yes"
		}

		t.AddRow(a.Name, stable, a.Description)
	}

	return t.Print()
}
