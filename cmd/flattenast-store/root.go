package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "flattenast-store",
	Short: "Stream flattened AST rows into a SQLite/libSQL table",
	Long: `flattenast-store runs the flattenast driver over a set of file
	patterns and persists every flattened node as a row in an ast_nodes
	table, via gorm, demonstrating the boundary between the library and a
	downstream store without pulling persistence into flattenast itself.`,
	SilenceErrors: true,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
