// Package tsx is the TypeScript+JSX language adapter,
// sharing TypeScript's statement vocabulary with JSX element constructs
// added.
package tsx

import (
	tsxsit "github.com/smacker/go-tree-sitter/typescript/tsx"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"
	"github.com/parsekit/flattenast/providers/catalog"
)

func init() {
	a := &langspec.TableAdapter{
		Lang: "tsx",
		ExtList: []string{".tsx"},
		Sitter: tsxsit.GetLanguage(),
		Table: typeTable,
		Anonymous: map[string]bool{},
	}
	if err := registry.RegisterProvider(a); err != nil {
		panic(err)
	}
	catalog.Register(catalog.LanguageInfo{ID: "tsx", Extensions: a.ExtList})
}

var typeTable = langspec.TypeTable{
	"program": {SemanticType: core.OrganizationBlock},

	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
	"arrow_function": {SemanticType: core.WithRefinement(core.DefinitionFunction, core.FunctionLambda), NameStrategy: langspec.NameFindAssignmentTarget, ValueStrategy: langspec.ValueArrowFunction},
	"method_definition": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindProperty, ValueStrategy: langspec.ValueFunctionWithParams},
	"class_declaration": {SemanticType: core.DefinitionClass, NameStrategy: langspec.NameFindIdentifier},
	"interface_declaration": {SemanticType: core.WithRefinement(core.DefinitionClass, core.ClassInterface), NameStrategy: langspec.NameFindIdentifier},

	"variable_declarator": {SemanticType: core.WithRefinement(core.DefinitionVariable, core.VariableMutable), NameStrategy: langspec.NameFindIdentifier},

	"import_statement": {SemanticType: core.ExternalImport},
	"export_statement": {SemanticType: core.ExternalExport},

	"jsx_element": {SemanticType: core.StructureComposite},
	"jsx_self_closing_element": {SemanticType: core.StructureComposite},
	"jsx_attribute": {SemanticType: core.MetadataAttributeList, NameStrategy: langspec.NameFindIdentifier},

	"call_expression": {SemanticType: core.CallFunction, NameStrategy: langspec.NameFindCallTarget},

	"if_statement": {SemanticType: core.FlowConditional},
	"for_statement": {SemanticType: core.WithRefinement(core.FlowLoop, core.LoopCounter)},

	"return_statement": {SemanticType: core.FlowJump},
	"try_statement": {SemanticType: core.ErrorTry},
	"throw_statement": {SemanticType: core.ErrorThrow},

	"statement_block": {SemanticType: core.OrganizationBlock},

	"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},

	"string": {SemanticType: core.LiteralString, NameStrategy: langspec.NameNodeText},
	"number": {SemanticType: core.LiteralNumber, NameStrategy: langspec.NameNodeText},

	"comment": {SemanticType: core.CommentLine, NameStrategy: langspec.NameNone},

	"=": {SemanticType: core.AccessAssignment},
	",": {SemanticType: core.ParserPunctuation}, ";": {SemanticType: core.ParserPunctuation},
	"(": {SemanticType: core.ParserDelimiter}, ")": {SemanticType: core.ParserDelimiter},
	"<": {SemanticType: core.ParserDelimiter}, ">": {SemanticType: core.ParserDelimiter},
	"{": {SemanticType: core.ParserDelimiter}, "}": {SemanticType: core.ParserDelimiter},
}
