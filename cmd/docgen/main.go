package main

import (
	"os"

	"github.com/deppfellow/docgen/cmd/docgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
