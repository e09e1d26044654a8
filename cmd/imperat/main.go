// Command imperat is an interactive server console built on the imperat dispatcher. It runs
// command lines given as arguments, reads them from a shell, and serves completions to the
// shell scripts it generates.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
