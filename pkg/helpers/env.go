package helpers

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EnvInt returns the integer value of the environment variable name, or nil
// when it is unset or empty.
func EnvInt(name string) (*int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", name)
	}

	return &i, nil
}

// EnvString returns the value of the environment variable name, or nil when
// it is unset or empty.
func EnvString(name string) *string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}

	return &v
}
