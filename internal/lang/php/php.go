// Package php is the PHP language adapter. Parameters
// carry a leading `$` sigil on their variable_name child, and method calls
// follow the same name/signature split as the JavaScript adapter.
package php

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "php",
		ExtList: []string{".php"},
		Sitter: php.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
		CustomNames: customNames,
		CustomSignature: customSignature,
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "php", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"program": {SemanticType: core.OrganizationBlock},

	"function_definition": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"method_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"anonymous_function_creation_expression": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},
	"arrow_function": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},
	"class_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"interface_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassInterface), NameStrategy: langspec.NameFindIdentifier},
	"trait_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},

	"property_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableField), NameStrategy: langspec.NameFindIdentifier},
	"assignment_expression": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindAssignmentTarget},

	"simple_parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameCustom},
	"formal_parameters": {SemanticType: core.MetadataParameters},

	"namespace_use_declaration": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameNodeText},
	"namespace_definition": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameFindIdentifier},

	"function_call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},
	"member_call_expression": {SemanticType: core.CallMethod, NameStrategy: langspec.NameCustom, ValueStrategy: langspec.ValueFunctionCall},
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

	"compound_statement": {SemanticType: core.OrganizationBlock},

	"name": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"variable_name": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"member_access_expression": {SemanticType: core.AccessMember, NameStrategy: langspec.NameFindProperty},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"true": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"false": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"null": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment}, "->": {SemanticType: core.ParserPunctuation},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"function": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"class": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"return": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"public": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword | core.FlagPublic},
}

var customNames = map[string]langspec.CustomNameFunc{
	"simple_parameter": extractParameterName,
	"member_call_expression": extractMemberCallName,
}

var customSignature = map[string]func(*sitter.Node, []byte) string{
	"member_call_expression": extractMemberCallSignature,
}

// extractParameterName returns the `$`-prefixed variable_name text: PHP's
// simple_parameter grammar node wraps a variable_name child rather than
// carrying the name directly.
func extractParameterName(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		if c := node.Child(i); c != nil && c.Type() == "variable_name" {
			return c.Content(source)
		}
	}
	return ""
}

// extractMemberCallName leaves Name empty for `$obj->method()` calls, the
// same "name lives in signature_type, not name" split JavaScript applies
// to dotted method calls.
func extractMemberCallName(node *sitter.Node, source []byte) string {
	return ""
}

func extractMemberCallSignature(node *sitter.Node, source []byte) string {
	obj := node.ChildByFieldName("object")
	name := node.ChildByFieldName("name")
	if obj == nil || name == nil {
		return ""
	}
	return obj.Content(source) + "->" + name.Content(source)
}
