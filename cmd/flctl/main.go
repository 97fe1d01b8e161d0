// Package main is the entry point for the flctl CLI client.
package main

import (
	"github.com/donaldgifford/flashlist/cmd/flctl/cmd"
)

func main() {
	cmd.Execute()
}
