// Package cpp is the C++ language adapter: qualified
// `Class::method` names via function_declarator, and operator-overload
// handling.
package cpp

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "cpp",
		AliasList: []string{"c++"},
		ExtList: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"},
		Sitter: cpp.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
		CustomNames: customNames,
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "cpp", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"translation_unit": {SemanticType: core.OrganizationBlock},

	"function_definition": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameCustom, ValueStrategy: langspec.ValueFunctionWithParams},
	"function_declarator": {SemanticType: core.MetadataParameters, NameStrategy: langspec.NameFindQualifiedIdentifier},
	"class_specifier": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"struct_specifier": {SemanticType: core.StructureObject, NameStrategy: langspec.NameFindIdentifier},
	"namespace_definition": {SemanticType: core.OrganizationNamespace, NameStrategy: langspec.NameFindIdentifier},
	"template_declaration": {SemanticType: core.TypeGeneric},
	"lambda_expression": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda)},

	"declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},
	"parameter_list": {SemanticType: core.MetadataParameters},
	"parameter_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},

	"preproc_include": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameNodeText},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},
	"new_expression": {SemanticType: core.CallConstructor},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopCounter)},
	"for_range_loop": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"switch_statement": {SemanticType: core.FlowConditional},

	"return_statement": {SemanticType: core.FlowJump},
	"break_statement": {SemanticType: core.FlowJump},
	"continue_statement": {SemanticType: core.FlowJump},
	"throw_statement": {SemanticType: core.ErrorThrow},
	"try_statement": {SemanticType: core.ErrorTry},
	"catch_clause": {SemanticType: core.ErrorTry},

	"compound_statement": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"field_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"qualified_identifier": {SemanticType: core.NameQualified, NameStrategy: langspec.NameNodeText},
	"operator_name": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"true": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"false": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"nullptr": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"<": {SemanticType: core.OperatorComparison}, ">": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical},
	"=": {SemanticType: core.AccessAssignment}, "::": {SemanticType: core.ParserPunctuation},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"class": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"namespace": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"return": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}

var customNames = map[string]langspec.CustomNameFunc{
	"function_definition": extractFunctionName,
}

// extractFunctionName drills through the function_declarator to keep a
// qualified `Class::method` form intact, and special-cases operator
// overloads carrying an operator_name child.
func extractFunctionName(node *sitter.Node, source []byte) string {
	declarator := node.ChildByFieldName("declarator")
	if declarator == nil {
		for i := 0; i < int(node.ChildCount()); i++ {
			if c := node.Child(i); c != nil && c.Type() == "function_declarator" {
				declarator = c
				break
			}
		}
	}
	if declarator == nil {
		return ""
	}

	target := declarator.ChildByFieldName("declarator")
	if target == nil {
		target = declarator.Child(0)
	}
	if target == nil {
		return ""
	}

	switch target.Type() {
	case "qualified_identifier":
		return target.Content(source)
	case "field_identifier", "identifier":
		return target.Content(source)
	case "operator_name":
		return target.Content(source)
	case "destructor_name":
		return target.Content(source)
	}

	if op := findOperatorName(target); op != nil {
		return op.Content(source)
	}
	return target.Content(source)
}

func findOperatorName(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		if c := node.Child(i); c != nil && c.Type() == "operator_name" {
			return c
		}
	}
	return nil
}
