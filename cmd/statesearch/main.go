// Command statesearch runs the bundled search problems from the command line.
//
//	statesearch ladder train prawn --dict english.txt
//	statesearch cube --preset standard --strategy dfs
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errNoSolution) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
