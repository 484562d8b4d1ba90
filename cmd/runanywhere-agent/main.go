package main

import (
	"os"

	"github.com/runanywhereai/runanywhere-agent/cmd/runanywhere-agent/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
