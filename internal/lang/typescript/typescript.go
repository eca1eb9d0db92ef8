// Package typescript is the TypeScript language adapter.
// It layers type-annotation and interface/enum constructs on top of the
// JavaScript grammar's shared statement/expression vocabulary.
package typescript

import (
	sitter "github.com/smacker/go-tree-sitter"
	ts "github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "typescript",
		AliasList: []string{"ts"},
		ExtList: []string{".ts", ".mts", ".cts"},
		Sitter: ts.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
		CustomNames: customNames,
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "typescript", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"program": {SemanticType: core.OrganizationBlock},

	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"function_expression": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda), NameStrategy: langspec.NameFindAssignmentTarget, ValueStrategy: langspec.ValueFunctionWithParams},
	"arrow_function": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda), NameStrategy: langspec.NameFindAssignmentTarget, ValueStrategy: langspec.ValueArrowFunction},
	"method_definition": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindProperty, ValueStrategy: langspec.ValueFunctionWithParams},
	"method_signature": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindProperty},

	"class_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"interface_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassInterface), NameStrategy: langspec.NameFindIdentifier},
	"enum_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassEnum), NameStrategy: langspec.NameFindIdentifier},
	"type_alias_declaration": {SemanticType: core.TypeAlias, NameStrategy: langspec.NameFindIdentifier},

	"variable_declarator": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},

	"import_statement": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameCustom},
	"export_statement": {SemanticType: core.ExternalExport, NameStrategy: langspec.NameNone},

	"formal_parameters": {SemanticType: core.MetadataParameters},
	"required_parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},
	"optional_parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},
	"new_expression": {SemanticType: core.CallConstructor, NameStrategy: langspec.NameFindCallTarget},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopCounter)},
	"for_in_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"switch_statement": {SemanticType: core.FlowConditional},

	"return_statement": {SemanticType: core.FlowJump},
	"break_statement": {SemanticType: core.FlowJump},
	"continue_statement": {SemanticType: core.FlowJump},
	"throw_statement": {SemanticType: core.ErrorThrow},
	"try_statement": {SemanticType: core.ErrorTry},
	"catch_clause": {SemanticType: core.ErrorTry},
	"finally_clause": {SemanticType: core.ErrorFinally},

	"statement_block": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"property_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"type_identifier": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},
	"member_expression": {SemanticType: core.AccessMember, NameStrategy: langspec.NameFindProperty},
	"decorator": {SemanticType: core.AnnotationDecorator, NameStrategy: langspec.NameNone},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"true": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"false": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"===": {SemanticType: core.OperatorComparison}, "!==": {SemanticType: core.OperatorComparison},
	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	":": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"function": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"interface": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"type": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}

var customNames = map[string]langspec.CustomNameFunc{
	"import_statement": extractImportSource,
}

func extractImportSource(node *sitter.Node, source []byte) string {
	if n := node.ChildByFieldName("source"); n != nil {
		return n.Content(source)
	}
	return ""
}
