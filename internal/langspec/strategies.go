// Package langspec defines the per-language type-configuration model every
// language package in internal/lang instantiates: the (raw_type,
// semantic_type, name_strategy, value_strategy, flags) 4-tuple, the
// generic name/value extraction strategies, and the table-driven Adapter
// that resolves them against a tree-sitter node.
//
// Per-language data (alias/extension maps, raw-type tables) and the
// shared classify/extract behavior are kept separate on purpose: a new
// language package supplies only data, never its own dispatch logic.
package langspec

// NameStrategy selects how Adapter.ExtractName derives a node's name.
type NameStrategy int

const (
	// NameNone always yields an empty name.
	NameNone NameStrategy = iota
	// NameNodeText uses the node's own full source slice (literals, keywords).
	NameNodeText
	// NameFindIdentifier searches immediate children for a common
	// identifier-shaped node type and returns its text.
	NameFindIdentifier
	// NameFindQualifiedIdentifier descends into a function_declarator
	// (the C++ path) before applying NameFindIdentifier.
	NameFindQualifiedIdentifier
	// NameFindAssignmentTarget walks up to the enclosing assignment and
	// returns its left-hand identifier (lambdas bound to a variable).
	NameFindAssignmentTarget
	// NameFindProperty finds a property_identifier or dotted-access head.
	NameFindProperty
	// NameFindCallTarget returns a call node's callee name, including the
	// full dotted expression for method-like calls.
	NameFindCallTarget
	// NameCustom dispatches to the adapter's own extract_name override.
	NameCustom
)

// ValueStrategy selects what native-context enrichment a node receives.
type ValueStrategy int

const (
	ValueNone ValueStrategy = iota
	ValueFunctionWithParams
	ValueClassWithMethods
	ValueVariableWithType
	ValueArrowFunction
	ValueFunctionCall
)

// commonIdentifierTypes is the set NameFindIdentifier searches child nodes
// for across grammars.
var commonIdentifierTypes = map[string]bool{
	"identifier": true,
	"simple_identifier": true,
	"name": true,
	"property_identifier": true,
	"field_identifier": true,
	"qualified_identifier": true,
	"type_identifier": true,
	"variable_name": true,
	"word": true,
}

// assignmentNodeTypes is the set of grammar node types FIND_ASSIGNMENT_TARGET
// treats as "the enclosing assignment" when walking up from a lambda or
// arrow function being bound to a name.
var assignmentNodeTypes = map[string]bool{
	"assignment": true,
	"assignment_expression": true,
	"variable_declarator": true,
	"short_var_declaration": true,
	"var_declaration": true,
	"const_declaration": true,
	"property_declaration": true,
}
