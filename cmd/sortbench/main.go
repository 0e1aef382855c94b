package main

import (
	"os"

	"github.com/tjeromin/Sorting-Algorithms/pkg/cli"
)

var version = "dev"

func main() {
	c := cli.New("sortbench", version)

	os.Exit(c.Execute(os.Args[1:]))
}
