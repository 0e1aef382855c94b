package cli

import (
	"strconv"

	"github.com/convox/stdcli"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/tjeromin/Sorting-Algorithms/pkg/bench"
	"github.com/tjeromin/Sorting-Algorithms/pkg/helpers"
	"github.com/tjeromin/Sorting-Algorithms/pkg/history"
)

func init() {
	register("history", "list past benchmark runs", History, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagHistory},
		Usage:    "[id]",
		Validate: stdcli.ArgsMax(1),
	})
}

func History(c *stdcli.Context) error {
	path := historyPath(c)

	if path == "" {
		return errors.Errorf("history file required: use --history or SORTBENCH_HISTORY")
	}

	if !helpers.FileExists(path) {
		return errors.Errorf("no such history file: %s", path)
	}

	s, err := history.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if id := c.Arg(0); id != "" {
		r, err := s.Get(id)
		if err != nil {
			return err
		}

		i := c.Info()

		i.Add("Id", r.Id)
		i.Add("Started", helpers.Ago(r.Started))
		i.Add("Size", humanize.Comma(int64(r.Size)))
		i.Add("Max", humanize.Comma(int64(r.Max)))
		i.Add("Seed", strconv.FormatInt(r.Seed, 10))
		i.Add("Trials", strconv.Itoa(r.Trials))

		if err := i.Print(); err != nil {
			return err
		}

		c.Writef("\n")

		return bench.WriteReport(c, r, "text")
	}

	rs, err := s.List()
	if err != nil {
		return err
	}

	t := c.Table("ID", "STARTED", "SIZE", "TRIALS", "FAILED")

	for _, r := range rs {
		t.AddRow(r.Id, helpers.Ago(r.Started), humanize.Comma(int64(r.Size)), strconv.Itoa(r.Trials), strconv.Itoa(len(r.Failed())))
	}

	return t.Print()
}
