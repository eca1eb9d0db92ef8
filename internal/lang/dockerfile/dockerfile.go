// Package dockerfile is the Dockerfile language adapter.
package dockerfile

import (
	"github.com/smacker/go-tree-sitter/dockerfile"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "dockerfile",
		AliasList: []string{"docker"},
		ExtList: []string{".dockerfile"},
		Sitter: dockerfile.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "dockerfile", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"source_file": {SemanticType: core.OrganizationBlock},

	"from_instruction": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameNodeText},
	"run_instruction": {SemanticType: core.CallFunction, NameStrategy: langspec.NameNone},
	"env_instruction": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameNone},
	"arg_instruction": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameNone},

	"image_spec": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
}
