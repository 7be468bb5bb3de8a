package main

import (
	"os"

	"github.com/cyphera/cyphera-tax/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
