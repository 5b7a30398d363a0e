// Command tourbnb solves small symmetric TSP instances from a catalog with a
// concurrent best-first Branch-and-Bound search.
//
// Usage:
//
//	tourbnb solve [--cities N] [--workers K] [--verbose] [--verify]
//	tourbnb list
//
// Without --cities the solve command asks for the instance on stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
