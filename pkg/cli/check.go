package cli

import (
	"github.com/convox/stdcli"
	"github.com/pkg/errors"
	"github.com/tjeromin/Sorting-Algorithms/pkg/bench"
	"github.com/tjeromin/Sorting-Algorithms/pkg/sorts"
)

func init() {
	register("check", "verify the algorithms against fixed scenarios", Check, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagAlgorithms},
		Validate: stdcli.Args(0),
	})
}

func Check(c *stdcli.Context) error {
	aa, err := sorts.Match(bench.Patterns(c.String("algorithms"))...)
	if err != nil {
		return err
	}

	failed := 0

	for _, a := range aa {
		c.Startf("Checking <info>%s</info>", a.Name)

		if err := bench.Check(a); err != nil {
			c.Writef("<error>%s</error>\n", err)
			failed++
			continue
		}

		c.OK()
	}

	if failed > 0 {
		return errors.Errorf("%d of %d algorithms failed", failed, len(aa))
	}

	return nil
}
