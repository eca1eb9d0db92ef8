package core

// typeNames maps the defined set of semantic-type codes to their canonical
// string names. Only the 64 leaf SS|KK|TT combinations plus ParserSyntax
// are named; every other byte value,
// including refined variants like DefinitionFunction|FunctionAsync, falls
// through to the UNKNOWN_SEMANTIC_TYPE name. Refinements are informational
// so they deliberately do not get distinct names.
var typeNames = map[SemanticType]string{
	LiteralString: "LITERAL_STRING",
	LiteralNumber: "LITERAL_NUMBER",
	LiteralBoolean: "LITERAL_BOOLEAN",
	LiteralOther: "LITERAL_OTHER",

	NameIdentifier: "NAME_IDENTIFIER",
	NameQualified: "NAME_QUALIFIED",
	NameLabel: "NAME_LABEL",
	NameKeywordLiteral: "NAME_KEYWORD_LITERAL",

	TypeReference: "TYPE_REFERENCE",
	TypeAlias: "TYPE_ALIAS",
	TypeGeneric: "TYPE_GENERIC",
	TypeUnion: "TYPE_UNION",

	StructureArray: "STRUCTURE_ARRAY",
	StructureObject: "STRUCTURE_OBJECT",
	StructureTuple: "STRUCTURE_TUPLE",
	StructureComposite: "STRUCTURE_COMPOSITE",

	DefinitionFunction: "DEFINITION_FUNCTION",
	DefinitionClass: "DEFINITION_CLASS",
	DefinitionVariable: "DEFINITION_VARIABLE",
	DefinitionConstant: "DEFINITION_CONSTANT",

	CallFunction: "CALL_FUNCTION",
	CallMethod: "CALL_METHOD",
	CallConstructor: "CALL_CONSTRUCTOR",
	CallBuiltin: "CALL_BUILTIN",

	OperatorArithmetic: "OPERATOR_ARITHMETIC",
	OperatorComparison: "OPERATOR_COMPARISON",
	OperatorLogical: "OPERATOR_LOGICAL",
	OperatorBitwise: "OPERATOR_BITWISE",

	AccessAssignment: "ACCESS_ASSIGNMENT",
	AccessMember: "ACCESS_MEMBER",
	AccessIndex: "ACCESS_INDEX",
	AccessExpression: "ACCESS_EXPRESSION",

	FlowConditional: "FLOW_CONDITIONAL",
	FlowLoop: "FLOW_LOOP",
	FlowJump: "FLOW_JUMP",
	FlowSync: "FLOW_SYNC",

	ErrorTry: "ERROR_TRY",
	ErrorThrow: "ERROR_THROW",
	ErrorFinally: "ERROR_FINALLY",
	ErrorAssert: "ERROR_ASSERT",

	OrganizationBlock: "ORGANIZATION_BLOCK",
	OrganizationNamespace: "ORGANIZATION_NAMESPACE",
	OrganizationModule: "ORGANIZATION_MODULE",
	OrganizationVisibility: "ORGANIZATION_VISIBILITY",

	MetadataParameters: "METADATA_PARAMETERS",
	MetadataReturnType: "METADATA_RETURN_TYPE",
	MetadataConstraint: "METADATA_CONSTRAINT",
	MetadataAttributeList: "METADATA_ATTRIBUTE_LIST",

	ExternalImport: "EXTERNAL_IMPORT",
	ExternalExport: "EXTERNAL_EXPORT",
	ExternalPackage: "EXTERNAL_PACKAGE",
	ExternalAlias: "EXTERNAL_ALIAS",

	CommentLine: "COMMENT_LINE",
	CommentBlock: "COMMENT_BLOCK",
	CommentDoc: "COMMENT_DOC",
	CommentShebang: "COMMENT_SHEBANG",

	AnnotationDecorator: "ANNOTATION_DECORATOR",
	AnnotationAttribute: "ANNOTATION_ATTRIBUTE",
	AnnotationPragma: "ANNOTATION_PRAGMA",
	AnnotationDirective: "ANNOTATION_DIRECTIVE",

	ParserKeyword: "PARSER_KEYWORD",
	ParserPunctuation: "PARSER_PUNCTUATION",
	ParserDelimiter: "PARSER_DELIMITER",
	ParserConstruct: "PARSER_CONSTRUCT",
	ParserSyntax: "PARSER_SYNTAX",
}

var namesToType map[string]SemanticType

func init() {
	namesToType = make(map[string]SemanticType, len(typeNames))
	for code, name := range typeNames {
		namesToType[name] = code
	}
}

const unknownSemanticTypeName = "UNKNOWN_SEMANTIC_TYPE"

// TypeName returns the canonical name for code, or UNKNOWN_SEMANTIC_TYPE if
// code is not one of the defined constants.
func TypeName(code SemanticType) string {
	if name, ok := typeNames[code]; ok {
		return name
	}
	return unknownSemanticTypeName
}

// TypeCode returns the semantic-type code for name, or UnknownSemanticType
// (255) if name is not a recognized constant name.
func TypeCode(name string) SemanticType {
	if code, ok := namesToType[name]; ok {
		return code
	}
	return UnknownSemanticType
}

// GetSearchableTypes returns the set of semantic-type codes that identify
// "interesting" nodes for cross-language code search: definitions, calls,
// and module boundaries.
func GetSearchableTypes() []SemanticType {
	return []SemanticType{
		DefinitionFunction,
		DefinitionClass,
		DefinitionVariable,
		DefinitionConstant,
		CallFunction,
		CallMethod,
		CallConstructor,
		ExternalImport,
		ExternalExport,
	}
}
