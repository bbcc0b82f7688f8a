package main

import (
	"os"

	"github.com/haneul-labs/meritboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
