package helpers

import (
	"fmt"
	"os"
)

// Testdata reads testdata/<name>.yml relative to the calling test's package.
func Testdata(name string) ([]byte, error) {
	return os.ReadFile(fmt.Sprintf("testdata/%s.yml", name))
}
