// Package python is the Python language adapter.
package python

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "python",
		AliasList: []string{"py"},
		ExtList: []string{".py", ".pyw", ".pyi"},
		Sitter: python.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
		CustomNames: customNames,
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "python", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"module": {SemanticType: core.OrganizationBlock},

	"function_definition": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameCustom, ValueStrategy: langspec.ValueFunctionWithParams},
	"async_function_definition": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionAsync), NameStrategy: langspec.NameCustom, ValueStrategy: langspec.ValueFunctionWithParams},
	"class_definition": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"lambda": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda), NameStrategy: langspec.NameFindAssignmentTarget, ValueStrategy: langspec.ValueArrowFunction},
	"decorator": {SemanticType: core.AnnotationDecorator, NameStrategy: langspec.NameNone},

	"assignment": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameCustom, ValueStrategy: langspec.ValueVariableWithType},
	"augmented_assignment": {SemanticType: core.AccessAssignment, NameStrategy: langspec.NameCustom},

	"import_statement": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameCustom},
	"import_from_statement": {SemanticType: core.ExternalImport, NameStrategy: langspec.NameCustom},

	"parameters": {SemanticType: core.MetadataParameters},
	"parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},
	"default_parameter": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableParameter), NameStrategy: langspec.NameFindIdentifier},

	"call": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget, ValueStrategy: langspec.ValueFunctionCall},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopIterator)},
	"while_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopConditional)},
	"match_statement": {SemanticType: core.FlowConditional},

	"return_statement": {SemanticType: core.FlowJump},
	"break_statement": {SemanticType: core.FlowJump},
	"continue_statement": {SemanticType: core.FlowJump},
	"raise_statement": {SemanticType: core.ErrorThrow},
	"try_statement": {SemanticType: core.ErrorTry},
	"except_clause": {SemanticType: core.ErrorTry},
	"finally_clause": {SemanticType: core.ErrorFinally},
	"assert_statement": {SemanticType: core.ErrorAssert},

	"block": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
	"attribute": {SemanticType: core.AccessMember, NameStrategy: langspec.NameFindProperty},
	"type": {SemanticType: core.TypeReference, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"integer": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"float": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},
	"true": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"false": {SemanticType: core.LiteralBoolean, NameStrategy: langspec.NameNodeText},
	"none": {SemanticType: core.NameKeywordLiteral, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"+": {SemanticType: core.OperatorArithmetic}, "-": {SemanticType: core.OperatorArithmetic},
	"*": {SemanticType: core.OperatorArithmetic}, "/": {SemanticType: core.OperatorArithmetic},
	"==": {SemanticType: core.OperatorComparison}, "!=": {SemanticType: core.OperatorComparison},
	"<": {SemanticType: core.OperatorComparison}, ">": {SemanticType: core.OperatorComparison},
	"and": {SemanticType: core.OperatorLogical, Flags: core.FlagKeyword}, "or": {SemanticType: core.OperatorLogical, Flags: core.FlagKeyword},
	"not": {SemanticType: core.OperatorLogical, Flags: core.FlagKeyword},
	"=": {SemanticType: core.AccessAssignment},

	",": {SemanticType: core.ParserPunctuation}, ":": {SemanticType: core.ParserPunctuation}, ".": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"[": {SemanticType: core.ParserDelimiter}, "]": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},

	"def": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"class": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"import": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
	"return": {SemanticType: core.ParserKeyword, Flags: core.FlagKeyword},
}

var customNames = map[string]langspec.CustomNameFunc{
	"function_definition": extractDefName,
	"async_function_definition": extractDefName,
	"assignment": extractAssignmentTarget,
	"augmented_assignment": extractAssignmentTarget,
	"import_statement": extractImportName,
	"import_from_statement": extractImportFromName,
}

// extractDefName returns the name field's text; decorators are siblings in
// the enclosing decorated_definition, never children of function_definition
// itself, so they never interfere with this lookup.
func extractDefName(node *sitter.Node, source []byte) string {
	if n := node.ChildByFieldName("name"); n != nil {
		return n.Content(source)
	}
	return ""
}

func extractAssignmentTarget(node *sitter.Node, source []byte) string {
	left := node.ChildByFieldName("left")
	if left == nil {
		return ""
	}
	if left.Type() == "identifier" {
		return left.Content(source)
	}
	return ""
}

// extractImportName returns the first dotted module name in a plain
// `import a.b.c` statement.
func extractImportName(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		c := node.Child(i)
		if c == nil {
			continue
		}
		if c.Type() == "dotted_name" || c.Type() == "identifier" {
			return c.Content(source)
		}
	}
	return ""
}

// extractImportFromName returns the module_name field of a
// `from X import...` statement.
func extractImportFromName(node *sitter.Node, source []byte) string {
	if n := node.ChildByFieldName("module_name"); n != nil {
		return n.Content(source)
	}
	return ""
}
