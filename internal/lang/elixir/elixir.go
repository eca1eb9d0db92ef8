// Package elixir is the Elixir language adapter.
package elixir

import (
	"github.com/smacker/go-tree-sitter/elixir"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "elixir",
		AliasList: []string{"ex", "exs"},
		ExtList: []string{".ex", ".exs"},
		Sitter: elixir.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "elixir", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"source": {SemanticType: core.OrganizationBlock},

	"call": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"alias": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"boolean": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"atom": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
}
