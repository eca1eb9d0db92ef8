// Package cue is the CUE language adapter: a
// lighter type table with no custom overrides, relying entirely on the
// generic name/value extraction strategies.
package cue

import (
	"github.com/smacker/go-tree-sitter/cue"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "cue",
		ExtList: []string{".cue"},
		Sitter: cue.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "cue", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"source_file": {SemanticType: core.OrganizationBlock},

	"struct_lit": {SemanticType: core.StructureObject},
	"field": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"import_decl": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameNodeText},
	"package_clause": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameFindIdentifier},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string_lit": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number_lit": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"bool_lit": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	":": {SemanticType: core.ParserPunctuation}, ",": {SemanticType: core.ParserPunctuation},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},
}
