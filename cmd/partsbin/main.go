package main

import (
	"os"

	"github.com/erazemk/partsbin/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
