package main

import (
	"os"

	"github.com/counted-dev/counted/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
