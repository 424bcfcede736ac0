package main

import (
	"os"

	"github.com/corvid-lang/corvid/cmd/corvid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
