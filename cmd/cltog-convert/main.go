// Command cltog-convert runs the volume/mass conversion from the command line.
package main

import (
	"os"

	"github.com/maruel/cltog/cmd/cltog-convert/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
