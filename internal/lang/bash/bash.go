// Package bash is the Bash language adapter: identifier
// search widens to variable_name and word nodes, since bash's grammar
// spells names differently depending on context (function vs. variable
// assignment vs. bareword command).
package bash

import (
	"github.com/smacker/go-tree-sitter/bash"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "bash",
		AliasList: []string{"sh", "shell"},
		ExtList: []string{".sh", ".bash"},
		Sitter: bash.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "bash", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"program": {SemanticType: core.OrganizationBlock},

	"function_definition": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier},

	"variable_assignment": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"command": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionCall},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"c_style_for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopCounter)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"case_statement": {SemanticType: core.FlowConditional},

	"do_group": {SemanticType: core.OrganizationBlock},
	"compound_statement": {SemanticType: core.OrganizationBlock},

	"variable_name": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"word": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"=": {SemanticType: core.AccessAssignment},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},

	";": {SemanticType: core.ParserPunctuation}, "|": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"function": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"if": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"then": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"fi": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}
