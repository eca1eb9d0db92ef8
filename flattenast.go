// Package flattenast is the external interface: a single import that
// registers all bundled language adapters (see langs.go) and exposes the
// multi-file driver plus the taxonomy helpers a caller needs without
// reaching into internal/ packages.
package flattenast

import (
	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/driver"
	"github.com/parsekit/flattenast/internal/flatten"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

// Re-exported types so callers consume RowBatch/FileError/Options/Node
// without importing internal/driver or internal/flatten directly.
type (
	RowBatch = driver.RowBatch
	FileError = driver.FileError
	Options = driver.Options
	Node = flatten.Node
	PeekMode = flatten.PeekMode
)

// Peek-mode constants forwarded from internal/flatten.
var (
	PeekNone = flatten.PeekNone
	PeekCompact = flatten.PeekCompact
	PeekSmart = flatten.PeekSmart
	PeekFull = flatten.PeekFull
)

// SemanticType is the 8-bit taxonomy code attached to every Node.
type SemanticType = core.SemanticType

// ReadAST expands patterns (literal paths and globs), detects each file's
// language, parses and flattens it, and streams the result as RowBatches.
// It wraps internal/driver.Run against the process-wide default registry
// populated by this package's blank imports in langs.go.
//
// The returned channels close once every matched file has been processed
// or the run aborts on an unignored error; callers should range over both
// until they close, as Run does not block the caller itself.
func ReadAST(patterns []string, opts Options) (<-chan RowBatch, <-chan FileError, error) {
	return driver.Run(patterns, registry.DefaultRegistry, opts)
}

// AstSupportedLanguages returns the set of languages this build can parse,
// sorted by language ID.
func AstSupportedLanguages() []catalog.LanguageInfo {
	return catalog.Languages()
}

// SemanticTypeName returns the canonical string name for a semantic-type
// code, or UNKNOWN_SEMANTIC_TYPE if code is not one of the defined
// constants.
func SemanticTypeName(code SemanticType) string { return core.TypeName(code) }

// SemanticTypeCode returns the semantic-type code for a canonical name, or
// UnknownSemanticType (255) if name is unrecognized.
func SemanticTypeCode(name string) SemanticType { return core.TypeCode(name) }

// SearchableSemanticTypes returns the semantic-type codes a code-search
// tool would query by default: definitions, calls, and module boundaries.
func SearchableSemanticTypes() []SemanticType { return core.GetSearchableTypes() }

// SuperKind and Kind extract the top two 2-bit fields of a semantic-type
// code (bits 7-6 and 5-4), ignoring the super-type and
// refinement bits.
func SuperKind(code SemanticType) byte { return core.SuperKind(code) }
func Kind(code SemanticType) byte { return core.Kind(code) }

// The predicates below mirror core's Is* family at the root package level
// so callers never need to import internal taxonomy packages.
func IsDefinition(code SemanticType) bool { return core.IsDefinition(code) }
func IsFunctionDefinition(code SemanticType) bool { return core.IsFunctionDefinition(code) }
func IsClassDefinition(code SemanticType) bool { return core.IsClassDefinition(code) }
func IsVariableDefinition(code SemanticType) bool { return core.IsVariableDefinition(code) }

func IsCall(code SemanticType) bool { return core.IsCall(code) }
func IsFunctionCall(code SemanticType) bool { return core.IsFunctionCall(code) }
func IsMethodCall(code SemanticType) bool { return core.IsMethodCall(code) }

func IsOperator(code SemanticType) bool { return core.IsOperator(code) }
func IsArithmetic(code SemanticType) bool { return core.IsArithmetic(code) }
func IsComparison(code SemanticType) bool { return core.IsComparison(code) }
func IsLogical(code SemanticType) bool { return core.IsLogical(code) }

func IsAssignment(code SemanticType) bool { return core.IsAssignment(code) }
func IsMemberAccess(code SemanticType) bool { return core.IsMemberAccess(code) }

func IsControlFlow(code SemanticType) bool { return core.IsControlFlow(code) }
func IsConditional(code SemanticType) bool { return core.IsConditional(code) }
func IsLoop(code SemanticType) bool { return core.IsLoop(code) }
func IsJump(code SemanticType) bool { return core.IsJump(code) }

func IsErrorHandling(code SemanticType) bool { return core.IsErrorHandling(code) }

func IsLiteral(code SemanticType) bool { return core.IsLiteral(code) }
func IsStringLiteral(code SemanticType) bool { return core.IsStringLiteral(code) }
func IsNumberLiteral(code SemanticType) bool { return core.IsNumberLiteral(code) }
func IsBooleanLiteral(code SemanticType) bool { return core.IsBooleanLiteral(code) }

func IsIdentifier(code SemanticType) bool { return core.IsIdentifier(code) }

func IsImport(code SemanticType) bool { return core.IsImport(code) }
func IsExport(code SemanticType) bool { return core.IsExport(code) }

func IsComment(code SemanticType) bool { return core.IsComment(code) }
func IsAnnotation(code SemanticType) bool { return core.IsAnnotation(code) }

func IsParserConstruct(code SemanticType) bool { return core.IsParserConstruct(code) }
func IsSyntaxError(code SemanticType) bool { return core.IsSyntaxError(code) }
