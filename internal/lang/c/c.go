// Package c is the C language adapter.
package c

import (
	"github.com/smacker/go-tree-sitter/c"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "c",
		ExtList: []string{".c", ".h"},
		Sitter: c.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "c", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"translation_unit": {SemanticType: core.OrganizationBlock},

	"function_definition": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindQualifiedIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"function_declarator": {SemanticType: core.MetadataParameters, NameStrategy: langspec.NameFindIdentifier},
	"struct_specifier": {SemanticType: core.StructureObject, NameStrategy: langspec.NameFindIdentifier},
	"enum_specifier": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassEnum), NameStrategy: langspec.NameFindIdentifier},
	"union_specifier": {SemanticType: core.StructureObject, NameStrategy: langspec.NameFindIdentifier},
	"type_definition": {SemanticType: core.TypeAlias, NameStrategy: langspec.NameFindIdentifier},

	"declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},
	"parameter_list": {SemanticType: core.MetadataParameters},
	"parameter_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},

	"preproc_include": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameNodeText},
	"preproc_def": {SemanticType: core.ExternalPackage, NameStrategy: langspec.NameFindIdentifier},
	"preproc_function_def": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopCounter)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"switch_statement": {SemanticType: core.FlowConditional},

	"return_statement": {SemanticType: core.FlowJump},
	"break_statement": {SemanticType: core.FlowJump},
	"continue_statement": {SemanticType: core.FlowJump},
	"goto_statement": {SemanticType: core.FlowJump},

	"compound_statement": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"field_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"type_identifier": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},

	"string_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"char_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"null": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"struct": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"return": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"typedef": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}
