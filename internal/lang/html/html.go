// Package html is the HTML language adapter.
package html

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "html",
		ExtList: []string{".html", ".htm"},
		Sitter: html.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
		CustomNames: customNames,
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "html", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"document": {SemanticType: core.OrganizationBlock},
	"element": {SemanticType: core.StructureComposite, NameStrategy: langspec.NameCustom},
	"script_element": {SemanticType: core.StructureComposite, NameStrategy: langspec.NameNone},
	"style_element": {SemanticType: core.StructureComposite, NameStrategy: langspec.NameNone},

	"start_tag": {SemanticType: core.MetadataAttributeList, NameStrategy: langspec.NameFindIdentifier},
	"self_closing_tag": {SemanticType: core.MetadataAttributeList, NameStrategy: langspec.NameFindIdentifier},
	"attribute": {SemanticType: core.MetadataAttributeList, NameStrategy: langspec.NameFindIdentifier},

	"tag_name": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"text": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"=": {SemanticType: core.AccessAssignment},
	"<": {SemanticType: core.ParserDelimiter}, ">": {SemanticType: core.ParserDelimiter},
	"</": {SemanticType: core.ParserDelimiter},
}

var customNames = map[string]langspec.CustomNameFunc{
	"element": extractElementTagName,
}

// extractElementTagName returns the element's tag name from its opening
// start_tag (or self_closing_tag) child.
func extractElementTagName(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		c := node.Child(i)
		if c == nil {
			continue
		}
		if c.Type() == "start_tag" || c.Type() == "self_closing_tag" {
			for j := 0; j < int(c.ChildCount()); j++ {
				if tag := c.Child(j); tag != nil && tag.Type() == "tag_name" {
					return tag.Content(source)
				}
			}
		}
	}
	return ""
}
