package langspec

import "github.com/parsekit/flattenast/core"

// TypeEntry is the per-raw-type configuration 4-tuple: (semantic_type,
// name_strategy, value_strategy, flags). raw_type itself is the TypeTable
// key, not a field here.
type TypeEntry struct {
	SemanticType core.SemanticType
	NameStrategy NameStrategy
	ValueStrategy ValueStrategy
	Flags core.Flags
}

// TypeTable maps a grammar's raw node-type string to its configuration.
// Built once per language at package init and never mutated afterward.
type TypeTable map[string]TypeEntry

// unknownEntry is what Classify returns for a raw type absent from the
// table: PARSER_CONSTRUCT semantic type, no name.
var unknownEntry = TypeEntry{
	SemanticType: core.ParserConstruct,
	NameStrategy: NameNone,
}

// delimiterPairs are bracket/brace/paren raw types TableAdapter.Classify
// forces to PARSER_DELIMITER regardless of what a language table assigns
// them; every other raw type keeps the semantic type its table assigns.
// Centralizing this here means a table author can
// mislabel "(" as punctuation and Classify still corrects it.
var delimiterPairs = map[string]bool{
	"(": true, ")": true,
	"[": true, "]": true,
	"{": true, "}": true,
}

// WithSyntaxOnlyImplied returns entry with IS_SYNTAX_ONLY OR-ed into its
// flags whenever its semantic type is PARSER_PUNCTUATION or
// PARSER_DELIMITER, so individual tables never need to set the flag by
// hand for these two types.
func WithSyntaxOnlyImplied(entry TypeEntry) TypeEntry {
	if entry.SemanticType == core.ParserPunctuation || entry.SemanticType == core.ParserDelimiter {
		entry.Flags = entry.Flags.Set(core.FlagSyntaxOnly, true)
	}
	return entry
}
