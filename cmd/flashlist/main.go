// Package main is the entry point for the flashlist server.
package main

import (
	"os"

	"github.com/donaldgifford/flashlist/cmd/flashlist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
