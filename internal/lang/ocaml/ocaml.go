// Package ocaml is the OCaml language adapter.
package ocaml

import (
	"github.com/smacker/go-tree-sitter/ocaml"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "ocaml",
		ExtList: []string{".ml", ".mli"},
		Sitter: ocaml.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "ocaml", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"compilation_unit": {SemanticType: core.OrganizationBlock},

	"value_definition": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableImmutable), NameStrategy: langspec.NameFindIdentifier},
	"let_binding": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableImmutable), NameStrategy: langspec.NameFindIdentifier},
	"type_definition": {SemanticType: core.TypeAlias, NameStrategy: langspec.NameFindIdentifier},
	"module_definition": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameFindIdentifier},
	"fun_expression": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},

	"application_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget},

	"value_name": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentBlock, NameStrategy: langspec.NameNone},
}
