// Package css is the CSS language adapter.
package css

import (
	"github.com/smacker/go-tree-sitter/css"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "css",
		ExtList: []string{".css"},
		Sitter: css.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "css", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"stylesheet": {SemanticType: core.OrganizationBlock},

	"rule_set": {SemanticType: core.StructureComposite},
	"selectors": {SemanticType: core.MetadataAttributeList},
	"class_selector": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"id_selector": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"tag_name": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},
	"property_name": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"at_rule": {SemanticType: core.AnnotationDirective, NameStrategy: langspec.NameNone},
	"media_statement": {SemanticType: core.AnnotationDirective, NameStrategy: langspec.NameNone},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget},

	"block": {SemanticType: core.OrganizationBlock},

	"string_value": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer_value": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"plain_value": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"color_value": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentBlock, NameStrategy: langspec.NameNone},

	":": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ",": {SemanticType: core.ParserPunctuation},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
}
