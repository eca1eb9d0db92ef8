package driver

import (
	"fmt"
	"math/rand"

	"github.com/parsekit/flattenast/internal/fileio"
	"github.com/parsekit/flattenast/internal/flatten"
	"github.com/parsekit/flattenast/internal/registry"
)

// RowBatch is one streamed chunk of flattened nodes from a single file.
// A file whose node count exceeds BatchSize spans multiple consecutive
// RowBatches with IsLast only set on the final one for that file.
type RowBatch struct {
	FilePath string
	Language string
	Nodes []flatten.Node
	IsLast bool
}

// FileError records an I/O error encountered while processing FilePath,
// surfaced when IgnoreErrors is true instead of aborting the run.
type FileError struct {
	FilePath string
	Err error
}

func (e FileError) Error() string { return fmt.Sprintf("%s: %v", e.FilePath, e.Err) }

// Run executes the multi-file driver: expand patterns, detect language per
// file, parse and flatten sequentially, and stream results to batches.
// Returned channels close once every file has been processed or the run
// aborts; the caller ranges over both until they close. Files are
// processed in sorted-path order; at most one file's node sequence is
// held in memory at a time.
func Run(patterns []string, reg *registry.Registry, opts Options) (<-chan RowBatch, <-chan FileError, error) {
	if reg == nil {
		reg = registry.DefaultRegistry
	}

	paths, err := ExpandPatterns(patterns)
	if err != nil {
		return nil, nil, err
	}
	paths = applySampleRate(paths, opts.SampleRate)

	batches := make(chan RowBatch, 4)
	errs := make(chan FileError, 4)
	batchSize := normalizeBatchSize(opts.BatchSize)

	go func() {
		defer close(batches)
		defer close(errs)

		for _, path := range paths {
			if err := runFile(path, reg, opts, batchSize, batches); err != nil {
				fe := FileError{FilePath: path, Err: err}
				if opts.IgnoreErrors {
					errs <- fe
					continue
				}
				errs <- fe
				return
			}
		}
	}()

	return batches, errs, nil
}

// runFile reads, parses, and flattens a single file, streaming its node
// sequence to batches in chunks of batchSize. I/O and language-detection
// errors are returned to the caller, which applies the error policy;
// parse errors never reach here as Go errors, since tree-sitter's
// error-recovery guarantee means a malformed file still produces a tree
// whose bad regions surface as ERROR/PARSER_SYNTAX rows.
func runFile(path string, reg *registry.Registry, opts Options, batchSize int, batches chan<- RowBatch) error {
	info, err := statSize(path)
	if err == nil && opts.MaxFileSize > 0 && info > opts.MaxFileSize {
		return nil
	}

	adapter, language, err := resolveAdapter(path, reg, opts.Language)
	if err != nil {
		return err
	}

	source, err := fileio.ReadFile(path)
	if err != nil {
		return err
	}

	tree, err := parseSource(source, adapter)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	result := flatten.Flatten(tree.RootNode(), source, adapter, path, language, opts.flattenOptions())

	if len(result.Nodes) == 0 {
		batches <- RowBatch{FilePath: path, Language: language, IsLast: true}
		return nil
	}

	for start := 0; start < len(result.Nodes); start += batchSize {
		end := start + batchSize
		if end > len(result.Nodes) {
			end = len(result.Nodes)
		}
		batches <- RowBatch{
			FilePath: path,
			Language: language,
			Nodes: result.Nodes[start:end],
			IsLast: end == len(result.Nodes),
		}
	}
	return nil
}

// applySampleRate returns a pseudo-random subset of paths sized to rate,
// or paths unchanged when rate is outside (0, 1). Sampling
// is applied after sort+dedup so the chosen subset is still deterministic
// given a fixed seed, but this module does not promise a fixed seed across
// runs: callers wanting reproducible sampling should pass rate 0 (the
// default) and subset upstream instead.
func applySampleRate(paths []string, rate float64) []string {
	if rate <= 0 || rate >= 1 {
		return paths
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rand.Float64() < rate {
			out = append(out, p)
		}
	}
	return out
}
