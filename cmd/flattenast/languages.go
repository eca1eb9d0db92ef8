package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parsekit/flattenast"
)

func init() {
	var jsonOut bool

	cmd := &cobra.Command{
		Use: "languages",
		Short: "List every language this build can parse",
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := flattenast.AstSupportedLanguages()
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", " ")
				return enc.Encode(langs)
			}
			for _, l := range langs {
				fmt.Printf("%-14s %v\n", l.ID, l.Extensions)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON instead of a plain table")
	rootCmd.AddCommand(cmd)
}
