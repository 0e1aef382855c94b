// Package metrics publishes benchmark results to an HTTP collector.
package metrics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/tjeromin/Sorting-Algorithms/pkg/helpers"
	"github.com/tjeromin/Sorting-Algorithms/pkg/structs"
)

type Metrics struct {
	Client  *http.Client
	Retries int
	url     string
}

func New(url string) *Metrics {
	return &Metrics{
		Client:  &http.Client{Timeout: 10 * time.Second},
		Retries: 2,
		url:     url,
	}
}

// Post sends attrs as a JSON object to <url>/<name>.
func (m *Metrics) Post(name string, attrs map[string]interface{}) error {
	data, err := json.Marshal(attrs)
	if err != nil {
		return errors.WithStack(err)
	}

	res, err := m.Client.Post(fmt.Sprintf("%s/%s", m.url, name), "application/json", bytes.NewReader(data))
	if err != nil {
		return errors.WithStack(err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return errors.Errorf("metrics: %s/%s returned %d", m.url, name, res.StatusCode)
	}

	return nil
}

// PostReport posts one "sort" metric per algorithm of r, retrying failed
// posts.
func (m *Metrics) PostReport(r *structs.Report) error {
	for _, res := range r.Results {
		attrs := map[string]interface{}{
			"id":        r.Id,
			"algorithm": res.Name,
			"size":      r.Size,
			"trials":    r.Trials,
			"runs":      res.Runs,
			"failures":  res.Failures,
			"mean_ms":   res.Mean,
			"min_ms":    res.Min,
			"max_ms":    res.Max,
		}

		err := helpers.Retry(m.Retries, 250*time.Millisecond, func() error {
			return m.Post("sort", attrs)
		})
		if err != nil {
			return err
		}
	}

	return nil
}
