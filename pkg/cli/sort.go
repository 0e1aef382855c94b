package cli

import (
	"strconv"
	"strings"

	"github.com/convox/stdcli"
	"github.com/pkg/errors"
	"github.com/tjeromin/Sorting-Algorithms/pkg/helpers"
	"github.com/tjeromin/Sorting-Algorithms/pkg/sorts"
)

func init() {
	register("sort", "sort integers with one algorithm", Sort, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			stdcli.StringFlag("algorithm", "", "algorithm name (default baseline)"),
		},
		Usage:    "<n> [n...]",
		Validate: stdcli.ArgsMin(1),
	})
}

func Sort(c *stdcli.Context) error {
	a, err := sorts.Find(helpers.CoalesceString(c.String("algorithm"), "baseline"))
	if err != nil {
		return err
	}

	list := make([]int, len(c.Args))

	for i, arg := range c.Args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return errors.Errorf("not an integer: %s", arg)
		}
		list[i] = n
	}

	a.Sort(list)

	out := make([]string, len(list))

	for i, n := range list {
		out[i] = strconv.Itoa(n)
	}

	c.Writef("%s\n", strings.Join(out, " "))

	return nil
}
