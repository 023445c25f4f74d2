package main

import (
	"os"

	"github.com/catnip-embedded/netstack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
