package main

import (
	"os"

	"github.com/advisory-trading/market-analysis-agent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
