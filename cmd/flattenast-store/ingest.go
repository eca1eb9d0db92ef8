package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/parsekit/flattenast"
	"github.com/parsekit/flattenast/internal/store"
)

func init() {
	var (
		dsn string
		debug bool
		lang string
		ignoreErrors bool
	)

	cmd := &cobra.Command{
		Use: "ingest <pattern> [pattern...]",
		Short: "Flatten matched files and persist every node to the ast_nodes table",
		Example: ` flattenast-store ingest --dsn ./ast.db './internal/**/*.go'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.Connect(dsn, debug)
			if err != nil {
				return fmt.Errorf("connecting to %s: %w", dsn, err)
			}

			runID := uuid.NewString()
			opts := flattenast.Options{Language: lang, IgnoreErrors: ignoreErrors}

			batches, errs, err := flattenast.ReadAST(args, opts)
			if err != nil {
				return err
			}

			var totalNodes, totalFiles int
			seenFiles := map[string]bool{}
			for batches != nil || errs != nil {
				select {
				case b, ok := <-batches:
					if !ok {
						batches = nil
						continue
					}
					if err := store.Ingest(db, runID, b.Nodes); err != nil {
						return fmt.Errorf("persisting %s: %w", b.FilePath, err)
					}
					totalNodes += len(b.Nodes)
					if !seenFiles[b.FilePath] {
						seenFiles[b.FilePath] = true
						totalFiles++
					}
				case e, ok := <-errs:
					if !ok {
						errs = nil
						continue
					}
					fmt.Fprintf(os.Stderr, "warning: %v\n", e)
				}
			}

			fmt.Printf("run %s: persisted %d nodes from %d files into %s\n", runID, totalNodes, totalFiles, dsn)
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "./flattenast.db", "SQLite file path or libSQL/Turso URL")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable gorm query logging")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Force a language instead of detecting by extension")
	cmd.Flags().BoolVar(&ignoreErrors, "ignore-errors", false, "Skip unreadable files instead of aborting the run")

	rootCmd.AddCommand(cmd)
}
