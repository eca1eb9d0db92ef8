// Package protobuf is the Protocol Buffers language adapter.
package protobuf

import (
	"github.com/smacker/go-tree-sitter/protobuf"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "protobuf",
		AliasList: []string{"proto"},
		ExtList: []string{".proto"},
		Sitter: protobuf.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "protobuf", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"source_file": {SemanticType: core.OrganizationBlock},

	"message": {SemanticType: core.StructureObject, NameStrategy: langspec.NameFindIdentifier},
	"enum": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassEnum), NameStrategy: langspec.NameFindIdentifier},
	"service": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"rpc": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier},

	"field": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableField), NameStrategy: langspec.NameFindIdentifier},
	"import": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameNodeText},
	"package": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameNodeText},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"int_lit": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
}
