// Command aroma computes community flavour profiles from cigar shop pages.
package main

import (
	"os"

	"github.com/custodia-labs/aroma-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
