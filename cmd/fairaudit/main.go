package main

import (
	"os"

	"github.com/kyramichel/Quantitative-Finance-XAI/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
