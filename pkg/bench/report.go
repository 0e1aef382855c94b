package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/tjeromin/Sorting-Algorithms/pkg/structs"
	yaml "gopkg.in/yaml.v2"
)

// NameWidth is the column the dot padding of a text report ends at.
const NameWidth = 30

// Formats lists the report formats WriteReport accepts.
var Formats = []string{"text", "yaml", "json"}

// ValidFormat returns an error unless format is one of Formats.
func ValidFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}

	return errors.Errorf("unknown output format: %s (expected one of %s)", format, strings.Join(Formats, ", "))
}

// WriteReport renders r to w as text, yaml or json.
func WriteReport(w io.Writer, r *structs.Report, format string) error {
	switch format {
	case "text":
		return writeText(w, r)
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	return ValidFormat(format)
}

// writeText writes a TextLine per algorithm.
func writeText(w io.Writer, r *structs.Report) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintf(w, "%s\n", TextLine(res)); err != nil {
			return err
		}
	}

	return nil
}

// TextLine renders res as its name, dots up to NameWidth and its mean in ms.
func TextLine(res structs.Result) string {
	dots := strings.Repeat(".", max(NameWidth-len(res.Name), 0))

	return fmt.Sprintf("%s %s %.4f ms", res.Name, dots, res.Mean)
}
