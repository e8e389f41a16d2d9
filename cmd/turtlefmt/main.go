// Command turtlefmt reindents and highlights Turtle documents from the
// command line.
package main

import (
	"os"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
