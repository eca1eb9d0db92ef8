// Package java is the Java language adapter.
package java

import (
	"github.com/smacker/go-tree-sitter/java"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "java",
		ExtList: []string{".java"},
		Sitter: java.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "java", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"program": {SemanticType: core.OrganizationBlock},

	"package_declaration": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameFindIdentifier},
	"import_declaration": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameFindIdentifier},

	"class_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"interface_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassInterface), NameStrategy: langspec.NameFindIdentifier},
	"enum_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassEnum), NameStrategy: langspec.NameFindIdentifier},
	"annotation_type_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassAbstract), NameStrategy: langspec.NameFindIdentifier},

	"method_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"constructor_declaration": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionConstructor), NameStrategy: langspec.NameFindIdentifier},
	"lambda_expression": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},

	"field_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableField), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},
	"local_variable_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},

	"formal_parameters": {SemanticType: core.MetadataParameters},
	"formal_parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},

	"method_invocation": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},
	"object_creation_expression": {SemanticType: core.CallConstructor, NameStrategy: langspec.NameFindIdentifier},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopCounter)},
	"enhanced_for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"switch_expression": {SemanticType: core.FlowConditional},

	"return_statement": {SemanticType: core.FlowJump},
	"break_statement": {SemanticType: core.FlowJump},
	"continue_statement": {SemanticType: core.FlowJump},
	"throw_statement": {SemanticType: core.ErrorThrow},
	"try_statement": {SemanticType: core.ErrorTry},
	"catch_clause": {SemanticType: core.ErrorTry},
	"finally_clause": {SemanticType: core.ErrorFinally},

	"block": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"type_identifier": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},
	"field_access": {SemanticType: core.AccessMember, NameStrategy: langspec.NameFindProperty},

	"string_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"decimal_integer_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"true": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"false": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"null_literal": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"line_comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
	"block_comment": {SemanticType: core.CommentBlock, NameStrategy: langspec.NameNone},

	"annotation": {SemanticType: core.AnnotationAttribute, NameStrategy: langspec.NameFindIdentifier},
	"marker_annotation": {SemanticType: core.AnnotationAttribute, NameStrategy: langspec.NameFindIdentifier},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"class": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"interface": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"return": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"public": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword | core.FlagPublic},
	"private": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}
