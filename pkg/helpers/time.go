package helpers

import (
	"time"

	humanize "github.com/dustin/go-humanize"
)

// SortableTime formats times so that byte order matches time order.
var SortableTime = "20060102.150405.000000000"

func Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// Milliseconds returns d as fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
