// Package groovy is the Groovy language adapter.
package groovy

import (
	"github.com/smacker/go-tree-sitter/groovy"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "groovy",
		ExtList: []string{".groovy", ".gradle"},
		Sitter: groovy.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "groovy", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"source_file": {SemanticType: core.OrganizationBlock},

	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier},
	"class_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"closure": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},

	"variable_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"method_call": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},

	"line_comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
	"block_comment": {SemanticType: core.CommentBlock, NameStrategy: langspec.NameNone},
}
