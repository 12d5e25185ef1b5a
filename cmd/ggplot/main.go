package main

import (
	"os"

	"github.com/relias08/ggplot2/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
