// Package lua is the Lua language adapter.
package lua

import (
	"github.com/smacker/go-tree-sitter/lua"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "lua",
		ExtList: []string{".lua"},
		Sitter: lua.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "lua", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"chunk": {SemanticType: core.OrganizationBlock},

	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"function_definition": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},
	"local_function": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier},

	"variable_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},
	"local_variable_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"parameters": {SemanticType: core.MetadataParameters},

	"function_call": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopCounter)},
	"for_in_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},

	"return_statement": {SemanticType: core.FlowJump},
	"break_statement": {SemanticType: core.FlowJump},

	"block": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"true": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"false": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"nil": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "~=": {SemanticType: core.OperatorComparison},
	"and": {SemanticType: core.OperatorLogical, Flags: core.FlagKeyword}, "or": {SemanticType: core.OperatorLogical, Flags: core.FlagKeyword},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},

	"function": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"local": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"end": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}
