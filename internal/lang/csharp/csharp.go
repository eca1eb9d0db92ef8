// Package csharp is the C# language adapter.
package csharp

import (
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "csharp",
		AliasList: []string{"cs", "c#"},
		ExtList: []string{".cs"},
		Sitter: csharp.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "csharp", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"compilation_unit": {SemanticType: core.OrganizationBlock},

	"namespace_declaration": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameFindIdentifier},
	"using_directive": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameFindIdentifier},

	"class_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"interface_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassInterface), NameStrategy: langspec.NameFindIdentifier},
	"enum_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassEnum), NameStrategy: langspec.NameFindIdentifier},
	"struct_declaration": {SemanticType: core.StructureObject, NameStrategy: langspec.NameFindIdentifier},

	"method_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"constructor_declaration": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionConstructor), NameStrategy: langspec.NameFindIdentifier},
	"lambda_expression": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},
	"property_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableField), NameStrategy: langspec.NameFindIdentifier},

	"variable_declarator": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"parameter_list": {SemanticType: core.MetadataParameters},
	"parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},

	"invocation_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},
	"object_creation_expression": {SemanticType: core.CallConstructor, NameStrategy: langspec.NameFindIdentifier},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopCounter)},
	"foreach_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"switch_statement": {SemanticType: core.FlowConditional},

	"return_statement": {SemanticType: core.FlowJump},
	"break_statement": {SemanticType: core.FlowJump},
	"continue_statement": {SemanticType: core.FlowJump},
	"throw_statement": {SemanticType: core.ErrorThrow},
	"try_statement": {SemanticType: core.ErrorTry},
	"catch_clause": {SemanticType: core.ErrorTry},
	"finally_clause": {SemanticType: core.ErrorFinally},

	"block": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"member_access_expression": {SemanticType: core.AccessMember, NameStrategy: langspec.NameFindProperty},

	"string_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"boolean_literal": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"null_literal": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"attribute": {SemanticType: core.AnnotationAttribute, NameStrategy: langspec.NameFindIdentifier},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"class": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"return": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"public": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword | core.FlagPublic},
	"private": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}
