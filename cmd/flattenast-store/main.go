// Command flattenast-store is a downstream persistence example: it
// streams ReadAST batches into a SQLite (or libSQL/Turso) table via
// gorm, demonstrating the row schema at its boundary without pulling
// persistence into the core flattenast package.
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
