// Command lvrand generates and validates pseudo-random samples.
package main

import (
	"os"

	"github.com/katalvlaran/lvrand/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
