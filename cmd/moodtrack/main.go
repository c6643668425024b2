package main

import (
	"os"

	"github.com/amdox/moodtrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
