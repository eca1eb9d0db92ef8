// Package yaml is the YAML language adapter.
package yaml

import (
	"github.com/smacker/go-tree-sitter/yaml"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "yaml",
		AliasList: []string{"yml"},
		ExtList: []string{".yaml", ".yml"},
		Sitter: yaml.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "yaml", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"stream": {SemanticType: core.OrganizationBlock},
	"document": {SemanticType: core.OrganizationBlock},

	"block_mapping_pair": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},
	"block_mapping": {SemanticType: core.StructureObject},
	"block_sequence": {SemanticType: core.StructureArray},
	"block_sequence_item": {SemanticType: core.StructureArray},

	"flow_mapping": {SemanticType: core.StructureObject},
	"flow_sequence": {SemanticType: core.StructureArray},

	"anchor": {SemanticType: core.NameLabel, NameStrategy: langspec.NameNodeText},
	"alias": {SemanticType: core.NameLabel, NameStrategy: langspec.NameNodeText},

	"plain_scalar": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"double_quote_scalar": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"single_quote_scalar": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	",": {SemanticType: core.ParserPunctuation}, ":": {SemanticType: core.ParserPunctuation},
	"-": {SemanticType: core.ParserPunctuation},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},
}
