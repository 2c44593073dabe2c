package main

import (
	"os"

	"github.com/pawview/pawview/cmd/pawview/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
