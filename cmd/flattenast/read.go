package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parsekit/flattenast"
)

func init() {
	var (
		lang string
		ignoreErrors bool
		peek string
		peekBytes int
		context string
		batchSize int
		maxFileSize int64
		sampleRate float64
	)

	cmd := &cobra.Command{
		Use: "read <pattern> [pattern...]",
		Short: "Stream flattened AST rows as JSON Lines",
		Example: ` flattenast read './internal/**/*.go'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peekMode, err := resolvePeekMode(peek, peekBytes)
			if err != nil {
				return err
			}

			opts := flattenast.Options{
				Language: lang,
				IgnoreErrors: ignoreErrors,
				Peek: peekMode,
				Context: context,
				BatchSize: batchSize,
				MaxFileSize: maxFileSize,
				SampleRate: sampleRate,
			}

			batches, errs, err := flattenast.ReadAST(args, opts)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()
			enc := json.NewEncoder(w)

			for batches != nil || errs != nil {
				select {
				case b, ok := <-batches:
					if !ok {
						batches = nil
						continue
					}
					for _, n := range b.Nodes {
						if encErr := enc.Encode(n); encErr != nil {
							return encErr
						}
					}
				case e, ok := <-errs:
					if !ok {
						errs = nil
						continue
					}
					fmt.Fprintf(os.Stderr, "warning: %v\n", e)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Force a language instead of detecting by extension")
	cmd.Flags().BoolVar(&ignoreErrors, "ignore-errors", false, "Skip unreadable files instead of aborting the run")
	cmd.Flags().StringVar(&peek, "peek", "smart", "Peek policy: none, compact, smart, full, bytes")
	cmd.Flags().IntVar(&peekBytes, "peek-bytes", 120, "Byte cap used when --peek=bytes")
	cmd.Flags().StringVar(&context, "context", "native", "Native-context enrichment: none, node_types_only, normalized, native")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Rows streamed per batch (0 = library default)")
	cmd.Flags().Int64Var(&maxFileSize, "max-file-size", 0, "Skip files larger than this many bytes (0 = no limit)")
	cmd.Flags().Float64Var(&sampleRate, "sample-rate", 0, "Process only a pseudo-random subset of matched files, in (0, 1)")

	rootCmd.AddCommand(cmd)
}

func resolvePeekMode(name string, n int) (flattenast.PeekMode, error) {
	switch name {
	case "none":
		return flattenast.PeekNone, nil
	case "compact":
		return flattenast.PeekCompact, nil
	case "smart", "":
		return flattenast.PeekSmart, nil
	case "full":
		return flattenast.PeekFull, nil
	case "bytes":
		return flattenast.PeekMode{Kind: "bytes", N: n}, nil
	default:
		return flattenast.PeekMode{}, fmt.Errorf("invalid --peek value %q", name)
	}
}
