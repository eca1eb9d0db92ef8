package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "flattenast",
	Short: "Flatten source files into a semantic-typed node stream",
	Long: `flattenast parses source files with tree-sitter, flattens the
	resulting tree into a DFS-ordered node sequence, and tags every node with
	an 8-bit semantic type shared across every supported language.`,
	SilenceErrors: true,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Best-effort: a missing .env is not an error, it just means
		// the process environment is used as it is.
		_ = godotenv.Load()
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
