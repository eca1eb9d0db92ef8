// Command flattenast is a thin CLI wrapper: just enough surface to
// exercise the flattenast library from a shell (`read`, `languages`,
// `predicate`), not a query/SQL layer of its own.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
