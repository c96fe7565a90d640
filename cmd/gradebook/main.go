package main

import (
	"os"

	"gradebook/cmd/gradebook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
