// Package rust is the Rust language adapter.
package rust

import (
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "rust",
		ExtList: []string{".rs"},
		Sitter: rust.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "rust", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"source_file": {SemanticType: core.OrganizationBlock},

	"function_item": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"closure_expression": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},
	"struct_item": {SemanticType: core.StructureObject, NameStrategy: langspec.NameFindIdentifier},
	"enum_item": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassEnum), NameStrategy: langspec.NameFindIdentifier},
	"trait_item": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassInterface), NameStrategy: langspec.NameFindIdentifier},
	"impl_item": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"mod_item": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameFindIdentifier},
	"type_item": {SemanticType: core.TypeAlias, NameStrategy: langspec.NameFindIdentifier},

	"let_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},
	"const_item": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableImmutable), NameStrategy: langspec.NameFindIdentifier},
	"static_item": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableImmutable), NameStrategy: langspec.NameFindIdentifier},

	"parameters": {SemanticType: core.MetadataParameters},
	"parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},

	"use_declaration": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameNodeText},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},
	"macro_invocation": {SemanticType: core.CallBuiltin, NameStrategy: langspec.NameFindCallTarget},

	"if_expression": {SemanticType: core.FlowConditional},
	"for_expression": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while_expression": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"loop_expression": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopUnknown)},
	"match_expression": {SemanticType: core.FlowConditional},

	"return_expression": {SemanticType: core.FlowJump},
	"break_expression": {SemanticType: core.FlowJump},
	"continue_expression": {SemanticType: core.FlowJump},

	"block": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"field_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"type_identifier": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},
	"field_expression": {SemanticType: core.AccessMember, NameStrategy: langspec.NameFindProperty},
	"self": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"string_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"boolean_literal": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},

	"line_comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
	"block_comment": {SemanticType: core.CommentBlock, NameStrategy: langspec.NameNone},

	"attribute_item": {SemanticType: core.AnnotationAttribute, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment}, "::": {SemanticType: core.ParserPunctuation},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"fn": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"struct": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"impl": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"pub": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword | core.FlagPublic},
}
