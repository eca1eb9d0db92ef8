// Package sql is the SQL language adapter.
package sql

import (
	"github.com/smacker/go-tree-sitter/sql"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "sql",
		ExtList: []string{".sql"},
		Sitter: sql.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "sql", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"program": {SemanticType: core.OrganizationBlock},

	"statement": {SemanticType: core.OrganizationBlock},
	"select_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameNone},
	"create_table": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"create_function": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier},

	"column_definition": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableField), NameStrategy: langspec.NameFindIdentifier},

	"function_call": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
	"marginalia": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"=": {SemanticType: core.OperatorComparison},
	"<>": {SemanticType: core.OperatorComparison},
	"and": {SemanticType: core.OperatorLogical, Flags: core.FlagKeyword}, "or": {SemanticType: core.OperatorLogical, Flags: core.FlagKeyword},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},

	"select": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"from": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"where": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}
