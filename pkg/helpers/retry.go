package helpers

import (
	"math/rand"
	"time"
)

// Retry calls fn until it succeeds, at most times+1 calls, sleeping interval
// plus up to 5% jitter between attempts.
func Retry(times int, interval time.Duration, fn func() error) error {
	for i := 0; ; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		if i >= times {
			return err
		}

		jitter := time.Duration(0)

		if j := int64(interval / 20); j > 0 {
			jitter = time.Duration(rand.Int63n(j))
		}

		time.Sleep(interval + jitter)
	}
}
