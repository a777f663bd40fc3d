package main

import (
	"os"

	"github.com/sankarpadhy/go-release-highlights/cmd/gofeatures/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
