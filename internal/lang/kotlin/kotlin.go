// Package kotlin is the Kotlin language adapter.
package kotlin

import (
	"github.com/smacker/go-tree-sitter/kotlin"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "kotlin",
		AliasList: []string{"kt"},
		ExtList: []string{".kt", ".kts"},
		Sitter: kotlin.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "kotlin", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"source_file": {SemanticType: core.OrganizationBlock},

	"package_header": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameFindIdentifier},
	"import_header": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameFindIdentifier},

	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"lambda_literal": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},
	"class_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"object_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},

	"property_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},

	"parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},

	"if_expression": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"when_expression": {SemanticType: core.FlowConditional},

	"jump_expression": {SemanticType: core.FlowJump},
	"try_expression": {SemanticType: core.ErrorTry},
	"catch_block": {SemanticType: core.ErrorTry},

	"statements": {SemanticType: core.OrganizationBlock},

	"simple_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"navigation_expression": {SemanticType: core.AccessMember, NameStrategy: langspec.NameFindProperty},

	"string_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"boolean_literal": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"null_literal": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"fun": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"class": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"val": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"var": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}
