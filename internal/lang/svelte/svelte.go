// Package svelte is the Svelte language adapter: markup constructs layered with the embedded script's JS-ish
// vocabulary at the grammar's own node names.
package svelte

import (
	"github.com/smacker/go-tree-sitter/svelte"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "svelte",
		ExtList: []string{".svelte"},
		Sitter: svelte.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "svelte", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"document": {SemanticType: core.OrganizationBlock},

	"element": {SemanticType: core.StructureComposite, NameStrategy: langspec.NameFindIdentifier},
	"script_element": {SemanticType: core.StructureComposite, NameStrategy: langspec.NameNone},
	"style_element": {SemanticType: core.StructureComposite, NameStrategy: langspec.NameNone},

	"if_block": {SemanticType: core.FlowConditional},
	"each_block": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},

	"attribute": {SemanticType: core.MetadataAttributeList, NameStrategy: langspec.NameFindIdentifier},
	"tag_name": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"text": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
}
