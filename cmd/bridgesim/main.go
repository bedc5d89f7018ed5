package main

import (
	"os"

	"github.com/llxisdsh/bridge/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
