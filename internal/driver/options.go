// Package driver implements the multi-file driver: pattern expansion,
// deduplication, per-file language detection, sequential parse-and-
// flatten, batched streaming, and the two error policies. Files are
// processed in deterministic sorted order, one at a time, so output
// ordering never depends on scheduling even where internals use
// concurrency primitives for resource pooling.
package driver

import "github.com/parsekit/flattenast/internal/flatten"

// Options configures a Run call.
type Options struct {
	// Language forces every file to parse as this language; empty means
	// "auto" (detect per file by extension).
	Language string
	// IgnoreErrors controls the I/O error policy.
	IgnoreErrors bool
	// Peek selects the peek policy forwarded to the flattener.
	Peek flatten.PeekMode
	// Context selects native-context enrichment, forwarded to the flattener.
	Context string
	// BatchSize is the number of rows streamed per batch. Non-positive
	// values are normalized to DefaultBatchSize.
	BatchSize int
	// MaxFileSize skips files larger than this many bytes instead of
	// attempting to parse them, when positive.
	MaxFileSize int64
	// SampleRate, when in (0, 1), processes only a pseudo-random subset of
	// the matched files for quick large-tree exploration. 0 or >= 1
	// means "process every matched file".
	SampleRate float64
}

// DefaultBatchSize is used when Options.BatchSize is unset.
const DefaultBatchSize = 256

// normalizeBatchSize returns n if positive, else DefaultBatchSize.
func normalizeBatchSize(n int) int {
	if n <= 0 {
		return DefaultBatchSize
	}
	return n
}

// FlattenOptions derives the flatten.Options this run's files are parsed
// with.
func (o Options) flattenOptions() flatten.Options {
	ctx := o.Context
	if ctx == "" {
		ctx = "native"
	}
	peek := o.Peek
	if peek == (flatten.PeekMode{}) {
		peek = flatten.PeekSmart
	}
	return flatten.Options{Peek: peek, Context: ctx}
}
