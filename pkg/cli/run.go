package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/convox/stdcli"
	"github.com/pkg/errors"
	"github.com/tjeromin/Sorting-Algorithms/pkg/bench"
	"github.com/tjeromin/Sorting-Algorithms/pkg/helpers"
	"github.com/tjeromin/Sorting-Algorithms/pkg/history"
	"github.com/tjeromin/Sorting-Algorithms/pkg/metrics"
	"github.com/tjeromin/Sorting-Algorithms/pkg/structs"
	pb "gopkg.in/cheggaaa/pb.v1"
)

func init() {
	register("run", "benchmark the sorting algorithms", Run, stdcli.CommandOptions{
		Flags: append(append(stdcli.OptionFlags(structs.RunOptions{}), stdcli.OptionFlags(structs.ReportOptions{})...),
			stdcli.StringFlag("config", "c", "yaml config file"),
			flagHistory,
			stdcli.StringFlag("metrics", "", "post results to this collector url"),
		),
		Validate: stdcli.Args(0),
	})
}

func Run(c *stdcli.Context) error {
	var opts structs.RunOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	var ropts structs.ReportOptions

	if err := c.Options(&ropts); err != nil {
		return err
	}

	format := helpers.DefaultString(ropts.Output, "text")

	if err := bench.ValidFormat(format); err != nil {
		return err
	}

	cfg, err := bench.Resolve(c.String("config"), opts)
	if err != nil {
		return err
	}

	s, err := bench.NewSuite(cfg)
	if err != nil {
		return err
	}

	if helpers.DefaultBool(ropts.Progress, false) {
		s.Progress = progress(c.Writer().Stderr, "Sorting ")
	}

	r, err := bench.Run(s)
	if err != nil {
		return err
	}

	return publish(c, r, format, helpers.DefaultString(ropts.File, ""))
}

// publish writes r to stdout or file, reports failed algorithms, then stores
// and posts it.
func publish(c *stdcli.Context, r *structs.Report, format, file string) error {
	if file != "" {
		var buf bytes.Buffer

		if err := bench.WriteReport(&buf, r, format); err != nil {
			return err
		}

		if err := helpers.WriteFile(file, buf.Bytes(), 0644); err != nil {
			return err
		}

		c.Writef("Report written to <info>%s</info>\n", file)
	} else if err := bench.WriteReport(c, r, format); err != nil {
		return err
	}

	// verification failures are reported but never change the exit code
	for _, name := range r.Failed() {
		c.Errorf("not in order: %s", name)
	}

	if path := historyPath(c); path != "" {
		if err := saveHistory(path, r); err != nil {
			return err
		}
	}

	if url := helpers.CoalesceString(c.String("metrics"), os.Getenv("SORTBENCH_METRICS")); url != "" {
		if err := metrics.New(url).PostReport(r); err != nil {
			return err
		}
	}

	return nil
}

func saveHistory(path string, r *structs.Report) error {
	s, err := history.Open(path)
	if err != nil {
		return errors.Wrapf(err, "history %s", path)
	}
	defer s.Close()

	return s.Save(r)
}

func progress(w io.Writer, prefix string) func(current, total int) {
	var bar *pb.ProgressBar

	return func(current, total int) {
		if bar == nil {
			bar = pb.New(total)
			bar.Output = w
			bar.Prefix(prefix)
			bar.ShowTimeLeft = false
			bar.Start()
		}

		bar.Set(current)

		if current >= total {
			bar.Finish()
		}
	}
}
