package main

import (
	"os"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
