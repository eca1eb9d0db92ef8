// Package swift is the Swift language adapter:
// property_declaration descends into its pattern child for the bound
// name, and init_declaration always names itself "init".
package swift

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "swift",
		ExtList: []string{".swift"},
		Sitter: swift.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
		CustomNames: customNames,
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "swift", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"source_file": {SemanticType: core.OrganizationBlock},

	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"init_declaration": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionConstructor), NameStrategy: langspec.NameCustom},
	"lambda_literal": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},
	"class_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"protocol_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassInterface), NameStrategy: langspec.NameFindIdentifier},
	"enum_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassEnum), NameStrategy: langspec.NameFindIdentifier},

	"property_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameCustom, ValueStrategy: langspec.ValueVariableWithType},

	"parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},

	"import_declaration": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameFindIdentifier},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"guard_statement": {SemanticType: core.FlowConditional},
	"switch_statement": {SemanticType: core.FlowConditional},

	"control_transfer_statement": {SemanticType: core.FlowJump},
	"do_statement": {SemanticType: core.ErrorTry},
	"catch_clause": {SemanticType: core.ErrorTry},

	"statements": {SemanticType: core.OrganizationBlock},

	"simple_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"type_identifier": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},
	"navigation_expression": {SemanticType: core.AccessMember, NameStrategy: langspec.NameFindProperty},
	"self_expression": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"line_string_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"boolean_literal": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},
	"multiline_comment": {SemanticType: core.CommentBlock, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"func": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"class": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"var": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"let": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}

var customNames = map[string]langspec.CustomNameFunc{
	"init_declaration": extractInitName,
	"property_declaration": extractPropertyName,
}

// extractInitName always returns "init".
func extractInitName(node *sitter.Node, source []byte) string {
	return "init"
}

// extractPropertyName descends into the pattern child to find the bound
// identifier.
func extractPropertyName(node *sitter.Node, source []byte) string {
	pattern := node.ChildByFieldName("name")
	if pattern == nil {
		for i := 0; i < int(node.ChildCount()); i++ {
			if c := node.Child(i); c != nil && c.Type() == "pattern" {
				pattern = c
				break
			}
		}
	}
	if pattern == nil {
		return ""
	}
	if pattern.Type() == "simple_identifier" {
		return pattern.Content(source)
	}
	for i := 0; i < int(pattern.ChildCount()); i++ {
		if c := pattern.Child(i); c != nil && c.Type() == "simple_identifier" {
			return c.Content(source)
		}
	}
	return pattern.Content(source)
}
