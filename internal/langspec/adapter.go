package langspec

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/parsekit/flattenast/core"
)

// CustomNameFunc is a per-raw-type override for name_strategy=CUSTOM,
// invoked with the classified node and the full source buffer it belongs
// to.
type CustomNameFunc func(node *sitter.Node, source []byte) string

// Adapter is the per-language capability set: classification plus the
// four extraction operations, resolved once per file rather than via a
// virtual-dispatch chain on the hot path.
type Adapter interface {
	// Language is the canonical identifier the registry keys on (e.g. "go").
	Language() string
	// Aliases are additional identifiers that resolve to this adapter.
	Aliases() []string
	// Extensions are the file extensions auto-detection matches.
	Extensions() []string
	// SitterLanguage returns the tree-sitter grammar handle for parsing.
	SitterLanguage() *sitter.Language

	// Classify resolves a raw grammar node-type string to its configuration,
	// defaulting to PARSER_CONSTRUCT with no name for unrecognized types.
	Classify(rawType string) TypeEntry
	// ExtractName derives the node's name per its name_strategy, dispatching
	// to a CustomNameFunc override when the strategy is NameCustom.
	ExtractName(node *sitter.Node, source []byte) string
	// ExtractSignatureType returns native-context type information for
	// nodes whose value_strategy calls for it; empty when not applicable.
	ExtractSignatureType(node *sitter.Node, source []byte, entry TypeEntry) string
	// ExtractParameters returns parameter names for function-like nodes.
	ExtractParameters(node *sitter.Node, source []byte, entry TypeEntry) []string
	// ExtractModifiers returns access/declaration modifiers (public,
	// static, async,...) for nodes that carry them.
	ExtractModifiers(node *sitter.Node, source []byte) []string
	// IncludeAnonymous reports whether the flattener should visit unnamed
	// (anonymous) grammar nodes of this raw type. Most languages skip them;
	// a handful of adapters opt specific punctuation/operator types back in
	// when they need them present as rows (e.g. to carry OPERATOR_* codes).
	IncludeAnonymous(rawType string) bool
}

// TableAdapter is the generic, table-driven Adapter every language package
// instantiates. Language packages that need more than the generic
// extraction strategies provide set CustomNames / CustomSignature /
// CustomParameters / CustomModifiers; everything else is pure data.
type TableAdapter struct {
	Lang string
	AliasList []string
	ExtList []string
	Sitter *sitter.Language
	Table TypeTable
	Anonymous map[string]bool
	CustomNames map[string]CustomNameFunc

	// CustomSignature/CustomParameters/CustomModifiers are optional
	// per-raw-type overrides for native-context extraction, keyed the same
	// way as CustomNames. When absent, generic extraction based on
	// ValueStrategy is used.
	CustomSignature map[string]func(node *sitter.Node, source []byte) string
	CustomParameters map[string]func(node *sitter.Node, source []byte) []string
	CustomModifiers map[string]func(node *sitter.Node, source []byte) []string
}

func (a *TableAdapter) Language() string { return a.Lang }
func (a *TableAdapter) Aliases() []string { return a.AliasList }
func (a *TableAdapter) Extensions() []string { return a.ExtList }
func (a *TableAdapter) SitterLanguage() *sitter.Language { return a.Sitter }

func (a *TableAdapter) Classify(rawType string) TypeEntry {
	if entry, ok := a.Table[rawType]; ok {
		if delimiterPairs[rawType] {
			entry.SemanticType = core.ParserDelimiter
		}
		return WithSyntaxOnlyImplied(entry)
	}
	return unknownEntry
}

func (a *TableAdapter) ExtractName(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	entry := a.Classify(node.Type())
	if entry.NameStrategy == NameCustom {
		if fn, ok := a.CustomNames[node.Type()]; ok {
			return fn(node, source)
		}
		return ""
	}
	return extractByStrategy(entry.NameStrategy, node, source)
}

func (a *TableAdapter) ExtractSignatureType(node *sitter.Node, source []byte, entry TypeEntry) string {
	if node == nil {
		return ""
	}
	if fn, ok := a.CustomSignature[node.Type()]; ok {
		return fn(node, source)
	}
	return genericSignatureType(entry.ValueStrategy, node, source)
}

func (a *TableAdapter) ExtractParameters(node *sitter.Node, source []byte, entry TypeEntry) []string {
	if node == nil {
		return nil
	}
	if fn, ok := a.CustomParameters[node.Type()]; ok {
		return fn(node, source)
	}
	return genericParameters(entry.ValueStrategy, node, source)
}

func (a *TableAdapter) ExtractModifiers(node *sitter.Node, source []byte) []string {
	if node == nil {
		return nil
	}
	if fn, ok := a.CustomModifiers[node.Type()]; ok {
		return fn(node, source)
	}
	return nil
}

func (a *TableAdapter) IncludeAnonymous(rawType string) bool {
	return a.Anonymous[rawType]
}
