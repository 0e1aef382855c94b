package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tjeromin/Sorting-Algorithms/pkg/cli"
)

func TestVersion(t *testing.T) {
	testEngine(t, func(e *cli.Engine) {
		res, err := testExecute(e, "version", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"version: test"})
	})
}
