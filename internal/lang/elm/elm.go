// Package elm is the Elm language adapter.
package elm

import (
	"github.com/smacker/go-tree-sitter/elm"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "elm",
		ExtList: []string{".elm"},
		Sitter: elm.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "elm", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"file": {SemanticType: core.OrganizationBlock},

	"value_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableImmutable), NameStrategy: langspec.NameFindIdentifier},
	"function_call_expr": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget},
	"type_declaration": {SemanticType: core.TypeAlias, NameStrategy: langspec.NameFindIdentifier},
	"import_clause": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameNodeText},

	"lower_case_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"upper_case_identifier": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},

	"string_constant_expr": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number_constant_expr": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},

	"line_comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
	"block_comment": {SemanticType: core.CommentBlock, NameStrategy: langspec.NameNone},
}
