// Package golang is the Go language adapter: its type table, custom name
// extraction for method receivers and package clauses, and
// self-registration into the default registry and catalog.
package golang

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "go",
		AliasList: []string{"golang"},
		ExtList: []string{".go"},
		Sitter: golang.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
		CustomNames: customNames,
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "go", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"source_file": {SemanticType: core.OrganizationBlock},
	"package_clause": {SemanticType: core.OrganizationModule, NameStrategy: langspec.NameCustom},
	"package_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"import_declaration": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameCustom},
	"import_spec": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameNodeText},

	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"method_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameCustom, ValueStrategy: langspec.ValueFunctionWithParams},
	"func_literal": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda), NameStrategy: langspec.NameNone, ValueStrategy: langspec.ValueArrowFunction},

	"type_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"type_spec": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"struct_type": {SemanticType: core.StructureObject},
	"interface_type": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassInterface)},

	"var_declaration": {SemanticType: core.OrganizationBlock},
	"var_spec": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},
	"const_declaration": {SemanticType: core.OrganizationBlock},
	"const_spec": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableImmutable), NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueVariableWithType},
	"short_var_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"parameter_list": {SemanticType: core.MetadataParameters},
	"parameter_declaration": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopCounter)},
	"range_clause": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"switch_statement": {SemanticType: core.FlowConditional},
	"type_switch_statement": {SemanticType: core.FlowConditional},
	"select_statement": {SemanticType: core.FlowSync},
	"go_statement": {SemanticType: core.FlowSync},
	"defer_statement": {SemanticType: core.FlowSync},

	"return_statement": {SemanticType: core.FlowJump},
	"break_statement": {SemanticType: core.FlowJump},
	"continue_statement": {SemanticType: core.FlowJump},
	"goto_statement": {SemanticType: core.FlowJump},

	"block": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"field_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"type_identifier": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},
	"qualified_identifier": {SemanticType: core.NameQualified, NameStrategy: langspec.NameNodeText},

	"interpreted_string_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"raw_string_literal": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"int_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"float_literal": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"true": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"false": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"nil": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"*": {SemanticType: core.OperatorArithmetic}, "/": {SemanticType: core.OperatorArithmetic},
	"%": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"<": {SemanticType: core.OperatorComparison}, "<=": {SemanticType: core.OperatorComparison},
	">": {SemanticType: core.OperatorComparison}, ">=": {SemanticType: core.OperatorComparison},
	"&&": {SemanticType: core.OperatorLogical}, "||": {SemanticType: core.OperatorLogical}, "!": {SemanticType: core.OperatorLogical},
	"&": {SemanticType: core.OperatorBitwise}, "|": {SemanticType: core.OperatorBitwise}, "^": {SemanticType: core.OperatorBitwise},
	"=": {SemanticType: core.AccessAssignment}, ":=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"package": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"func": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"var": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"const": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"return": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}

var customNames = map[string]langspec.CustomNameFunc{
	"package_clause": extractPackageName,
	"import_declaration": extractFirstImportPath,
	"method_declaration": extractMethodName,
}

// extractPackageName returns the package clause's package_identifier
// child's text.
func extractPackageName(node *sitter.Node, source []byte) string {
	if n := node.ChildByFieldName("name"); n != nil {
		return n.Content(source)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if c := node.Child(i); c != nil && c.Type() == "package_identifier" {
			return c.Content(source)
		}
	}
	return ""
}

// extractFirstImportPath returns the first imported path's text, for a
// single-import `import "fmt"` declaration.
func extractFirstImportPath(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		c := node.Child(i)
		if c == nil {
			continue
		}
		if c.Type() == "import_spec" {
			return c.Content(source)
		}
		if c.Type() == "interpreted_string_literal" {
			return c.Content(source)
		}
	}
	return ""
}

// extractMethodName returns the identifier child of the method's name
// field, which grammar-wise is a field_identifier.
func extractMethodName(node *sitter.Node, source []byte) string {
	if n := node.ChildByFieldName("name"); n != nil {
		return n.Content(source)
	}
	return ""
}
