// Package scala is the Scala language adapter.
package scala

import (
	"github.com/smacker/go-tree-sitter/scala"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "scala",
		ExtList: []string{".scala", ".sc"},
		Sitter: scala.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "scala", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"compilation_unit": {SemanticType: core.OrganizationBlock},

	"function_definition": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier},
	"class_definition": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"object_definition": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"trait_definition": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassInterface), NameStrategy: langspec.NameFindIdentifier},

	"val_definition": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableImmutable), NameStrategy: langspec.NameFindIdentifier},
	"var_definition": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
}
