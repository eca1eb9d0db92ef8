// Package javascript is the JavaScript/JSX language adapter.
package javascript

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "javascript",
		AliasList: []string{"js", "jsx"},
		ExtList: []string{".js", ".jsx", ".mjs", ".cjs"},
		Sitter: javascript.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
		CustomNames: customNames,
		CustomSignature: customSignature,
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "javascript", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"program": {SemanticType: core.OrganizationBlock},

	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"function_expression": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda), NameStrategy: langspec.NameFindAssignmentTarget, ValueStrategy: langspec.ValueFunctionWithParams},
	"generator_function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"arrow_function": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda), NameStrategy: langspec.NameFindAssignmentTarget, ValueStrategy: langspec.ValueArrowFunction},
	"method_definition": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindProperty, ValueStrategy: langspec.ValueFunctionWithParams},
	"class_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},

	"variable_declarator": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},
	"lexical_declaration": {SemanticType: core.OrganizationBlock, NameStrategy: langspec.NameCustom},

	"import_statement": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameCustom},
	"export_statement": {SemanticType: core.ExternalExport, NameStrategy: langspec.NameNone},

	"formal_parameters": {SemanticType: core.MetadataParameters},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameCustom, ValueStrategy: langspec.ValueFunctionCall},
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
	"member_expression": {SemanticType: core.AccessMember, NameStrategy: langspec.NameFindProperty},
	"this": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"template_string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"true": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"false": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"null": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},
	"undefined": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"*": {SemanticType: core.OperatorArithmetic}, "/": {SemanticType: core.OperatorArithmetic},
	"===": {SemanticType: core.OperatorComparison}, "!==": {SemanticType: core.OperatorComparison},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"<": {SemanticType: core.OperatorComparison}, ">": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical}, "!": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"function": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"const": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"let": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"var": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}

var customNames = map[string]langspec.CustomNameFunc{
	"lexical_declaration": extractFirstDeclaratorName,
	"import_statement": extractImportSource,
	"call_expression": extractCallName,
}

// extractFirstDeclaratorName returns the name of the first
// variable_declarator child, so `const handler = () => {}` surfaces a
// name at the lexical_declaration level too.
func extractFirstDeclaratorName(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		c := node.Child(i)
		if c != nil && c.Type() == "variable_declarator" {
			if n := c.ChildByFieldName("name"); n != nil {
				return n.Content(source)
			}
		}
	}
	return ""
}

func extractImportSource(node *sitter.Node, source []byte) string {
	if n := node.ChildByFieldName("source"); n != nil {
		return n.Content(source)
	}
	return ""
}

// extractCallName: a plain function call gets its identifier as name, but
// a method call (obj.m()) gets an empty name, since the dotted target
// lives in the call's native-context signature instead (see
// customSignature below).
func extractCallName(node *sitter.Node, source []byte) string {
	fn := node.ChildByFieldName("function")
	if fn == nil {
		return ""
	}
	if fn.Type() == "member_expression" {
		return ""
	}
	return fn.Content(source)
}

var customSignature = map[string]func(node *sitter.Node, source []byte) string{
	"call_expression": extractCallSignature,
}

// extractCallSignature returns the full `obj.m` dotted text for a
// method-like call, empty for a plain function call.
func extractCallSignature(node *sitter.Node, source []byte) string {
	fn := node.ChildByFieldName("function")
	if fn == nil || fn.Type() != "member_expression" {
		return ""
	}
	return fn.Content(source)
}
