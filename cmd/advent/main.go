// Command advent runs the daily puzzle solutions.
package main

import (
	"os"

	"github.com/mesh-intelligence/advent/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
