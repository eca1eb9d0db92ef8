// Package hcl is the HashiCorp Configuration Language adapter, covering
// Terraform-style block/attribute structure.
package hcl

import (
	"github.com/smacker/go-tree-sitter/hcl"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "hcl",
		ExtList: []string{".hcl", ".tf"},
		Sitter: hcl.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "hcl", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"config_file": {SemanticType: core.OrganizationBlock},

	"block": {SemanticType: core.StructureObject, NameStrategy: langspec.NameFindIdentifier},
	"body": {SemanticType: core.OrganizationBlock},

	"attribute": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"function_call": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string_lit": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"numeric_lit": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"bool_lit": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"=": {SemanticType: core.AccessAssignment},
	",": {SemanticType: core.ParserPunctuation},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
}
