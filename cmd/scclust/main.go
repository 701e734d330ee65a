// Command scclust runs the size-constrained clustering engine over a CSV
// of points from the command line.
package main

import (
	"os"

	"github.com/fsavje/scclust-go/cmd/scclust/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
