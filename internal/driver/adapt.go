package driver

import (
	"context"
	"fmt"
	"os"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
)

// parserPools holds one sync.Pool per language, each pool recycling
// *sitter.Parser handles already bound to that language's grammar. The
// registry's adapters are immutable after init, so a pool keyed by
// language name is safe to share process-wide even though today's driver
// runs single-threaded: the pooling exists so a future parallel driver
// over per-file goroutines would not need to change this contract, only
// fan out callers of parseSource.
var parserPools sync.Map // map[string]*sync.Pool

func parserPoolFor(adapter langspec.Adapter) *sync.Pool {
	lang := adapter.Language()
	if p, ok := parserPools.Load(lang); ok {
		return p.(*sync.Pool)
	}
	pool := &sync.Pool{
		New: func() interface{} {
			parser := sitter.NewParser()
			parser.SetLanguage(adapter.SitterLanguage())
			return parser
		},
	}
	actual, _ := parserPools.LoadOrStore(lang, pool)
	return actual.(*sync.Pool)
}

// resolveAdapter picks the language adapter for path: explicitLang forces a
// specific adapter ("auto" or empty falls back to extension detection).
// An unresolvable language fails only the offending file, honored by the caller's error policy.
func resolveAdapter(path string, reg *registry.Registry, explicitLang string) (langspec.Adapter, string, error) {
	if explicitLang != "" && explicitLang != "auto" {
		a, err := reg.GetProvider(explicitLang)
		if err != nil {
			return nil, "", fmt.Errorf("unknown language %q: %w", explicitLang, err)
		}
		return a, a.Language(), nil
	}

	a, err := reg.GetProviderForFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("detecting language for %s: %w", path, err)
	}
	return a, a.Language(), nil
}

// statSize returns path's size in bytes.
func statSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// parseSource parses source with adapter's tree-sitter grammar. Tree-sitter
// always returns a tree even for malformed input; the only error path here is a parser-setup
// failure (nil grammar, context cancellation), not a syntax error.
func parseSource(source []byte, adapter langspec.Adapter) (*sitter.Tree, error) {
	lang := adapter.SitterLanguage()
	if lang == nil {
		return nil, fmt.Errorf("adapter %q has no tree-sitter grammar bound", adapter.Language())
	}
	pool := parserPoolFor(adapter)
	parser := pool.Get().(*sitter.Parser)
	defer pool.Put(parser)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, err
	}
	return tree, nil
}
