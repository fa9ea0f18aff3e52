package main

import (
	"os"

	"github.com/curados-dev/curados/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
