// Package ruby is the Ruby language adapter. require and
// require_relative are deliberately left classified as ordinary calls
// (CALL_FUNCTION), not reclassified to EXTERNAL_IMPORT, per the
// resolved open question: they share the `call` raw type with every other
// method invocation and the grammar gives no distinguishing node shape to
// key a reclassification on.
package ruby

import (
	"github.com/smacker/go-tree-sitter/ruby"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "ruby",
		AliasList: []string{"rb"},
		ExtList: []string{".rb"},
		Sitter: ruby.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "ruby", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"program": {SemanticType: core.OrganizationBlock},

	"method": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"singleton_method": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier},
	"lambda": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},
	"class": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"module": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameFindIdentifier},

	"assignment": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindAssignmentTarget},

	"method_parameters": {SemanticType: core.MetadataParameters},
	"identifier_parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},

	// require/require_relative are ordinary `call` nodes, intentionally
	// left unclassified as imports.
	"call": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},
	"method_call": {SemanticType: core.CallMethod, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},

	"if": {SemanticType: core.FlowConditional},
	"unless": {SemanticType: core.FlowConditional},
	"for": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"case": {SemanticType: core.FlowConditional},

	"return": {SemanticType: core.FlowJump},
	"break": {SemanticType: core.FlowJump},
	"next": {SemanticType: core.FlowJump},
	"begin": {SemanticType: core.ErrorTry},
	"rescue": {SemanticType: core.ErrorTry},
	"ensure": {SemanticType: core.ErrorFinally},

	"body_statement": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"constant": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},
	"instance_variable": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableField), NameStrategy: langspec.NameNodeText},
	"self": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"true": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"false": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"nil": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"do": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"end": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},

	"def": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}
