// Package toml is the TOML language adapter.
package toml

import (
	"github.com/smacker/go-tree-sitter/toml"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "toml",
		ExtList: []string{".toml"},
		Sitter: toml.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "toml", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"document": {SemanticType: core.OrganizationBlock},

	"table": {SemanticType: core.StructureObject, NameStrategy: langspec.NameFindIdentifier},
	"table_array_element": {SemanticType: core.StructureArray, NameStrategy: langspec.NameFindIdentifier},
	"pair": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"bare_key": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"quoted_key": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"float": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"boolean": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},

	"array": {SemanticType: core.StructureArray},
	"inline_table": {SemanticType: core.StructureObject},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"=": {SemanticType: core.AccessAssignment},
	",": {SemanticType: core.ParserPunctuation},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},
}
