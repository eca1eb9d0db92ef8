// Package core implements the cross-language semantic taxonomy: the 8-bit
// SemanticType encoding, the independent Flags byte, and the predicates
// defined over both. It has no dependencies on tree-sitter or any other
// package in this module — every other package classifies nodes down to
// these codes, never the other way around.
package core

// SemanticType is the 8-bit cross-language classification code attached to
// every flattened AST node. The byte is laid out as four 2-bit fields,
// most significant first: super-kind, kind, super-type, refinement.
//
//	bit: 7 6 5 4 3 2 1 0
// [ SS] [ KK] [ TT] [ RR]
//
// SS selects one of 4 super-kinds, KK one of 4 kinds within that
// super-kind, TT one of 4 super-types within that kind. RR carries an
// optional sub-classification (e.g. mutable vs. immutable) that predicates
// must ignore. TypeName/TypeCode are defined over the 64 SS|KK|TT
// combinations (RR=0) plus ParserSyntax, the one variant whose refinement
// bit carries meaning.
type SemanticType uint8

const (
	superKindShift = 6
	kindShift = 4
	superTypeShift = 2
	fieldMask = 0x03
	refinementMask = 0x03
	superTypeKindOf = 0xFC // mask isolating SS|KK|TT, clearing refinement
)

// Super-kinds (bits 7-6).
const (
	SuperKindDataStructure byte = 0
	SuperKindComputation byte = 1
	SuperKindControlEffects byte = 2
	SuperKindMetaExternal byte = 3
)

// Kinds (bits 5-4), meaning is scoped to the enclosing super-kind.
const (
	KindLiteral byte = 0 // under DATA_STRUCTURE
	KindName byte = 1
	KindType byte = 2
	KindStructure byte = 3

	KindDefinition byte = 0 // under COMPUTATION
	KindCall byte = 1
	KindOperator byte = 2
	KindAccess byte = 3

	KindFlow byte = 0 // under CONTROL_EFFECTS
	KindErrorHandling byte = 1
	KindOrganization byte = 2
	KindMetadata byte = 3

	KindExternal byte = 0 // under META_EXTERNAL
	KindComment byte = 1
	KindAnnotation byte = 2
	KindParser byte = 3
)

// Leaf semantic-type codes: one per (super-kind, kind, super-type) triple,
// refinement bits zeroed, named "<KIND>_<SUPERTYPE>". ParserSyntax is the
// one named code with a non-zero refinement bit: it shares ParserConstruct's
// SS|KK|TT but is kept distinguishable so a syntax-error node never reports
// as an ordinary parser construct. UnknownSemanticType (255, all bits set)
// is the sentinel returned for codes with no canonical name.
const (
	LiteralString SemanticType = 0x00
	LiteralNumber SemanticType = 0x04
	LiteralBoolean SemanticType = 0x08
	LiteralOther SemanticType = 0x0C

	NameIdentifier SemanticType = 0x10
	NameQualified SemanticType = 0x14
	NameLabel SemanticType = 0x18
	NameKeywordLiteral SemanticType = 0x1C

	TypeReference SemanticType = 0x20
	TypeAlias SemanticType = 0x24
	TypeGeneric SemanticType = 0x28
	TypeUnion SemanticType = 0x2C

	StructureArray SemanticType = 0x30
	StructureObject SemanticType = 0x34
	StructureTuple SemanticType = 0x38
	StructureComposite SemanticType = 0x3C

	DefinitionFunction SemanticType = 0x40
	DefinitionClass SemanticType = 0x44
	DefinitionVariable SemanticType = 0x48
	DefinitionConstant SemanticType = 0x4C

	CallFunction SemanticType = 0x50
	CallMethod SemanticType = 0x54
	CallConstructor SemanticType = 0x58
	CallBuiltin SemanticType = 0x5C

	OperatorArithmetic SemanticType = 0x60
	OperatorComparison SemanticType = 0x64
	OperatorLogical SemanticType = 0x68
	OperatorBitwise SemanticType = 0x6C

	AccessAssignment SemanticType = 0x70
	AccessMember SemanticType = 0x74
	AccessIndex SemanticType = 0x78
	AccessExpression SemanticType = 0x7C

	FlowConditional SemanticType = 0x80
	FlowLoop SemanticType = 0x84
	FlowJump SemanticType = 0x88
	FlowSync SemanticType = 0x8C

	ErrorTry SemanticType = 0x90
	ErrorThrow SemanticType = 0x94
	ErrorFinally SemanticType = 0x98
	ErrorAssert SemanticType = 0x9C

	OrganizationBlock SemanticType = 0xA0
	OrganizationNamespace SemanticType = 0xA4
	OrganizationModule SemanticType = 0xA8
	OrganizationVisibility SemanticType = 0xAC

	MetadataParameters SemanticType = 0xB0
	MetadataReturnType SemanticType = 0xB4
	MetadataConstraint SemanticType = 0xB8
	MetadataAttributeList SemanticType = 0xBC

	ExternalImport SemanticType = 0xC0
	ExternalExport SemanticType = 0xC4
	ExternalPackage SemanticType = 0xC8
	ExternalAlias SemanticType = 0xCC

	CommentLine SemanticType = 0xD0
	CommentBlock SemanticType = 0xD4
	CommentDoc SemanticType = 0xD8
	CommentShebang SemanticType = 0xDC

	AnnotationDecorator SemanticType = 0xE0
	AnnotationAttribute SemanticType = 0xE4
	AnnotationPragma SemanticType = 0xE8
	AnnotationDirective SemanticType = 0xEC

	ParserKeyword SemanticType = 0xF0
	ParserPunctuation SemanticType = 0xF4
	ParserDelimiter SemanticType = 0xF8
	ParserConstruct SemanticType = 0xFC
	ParserSyntax SemanticType = 0xFD

	UnknownSemanticType SemanticType = 0xFF
)

// Refinement values (RR, bits 1-0). Meaning depends on which leaf code
// they're OR-ed into; see the doc comment on each leaf constant family.
const (
	FunctionRegular byte = 0
	FunctionLambda byte = 1
	FunctionAsync byte = 2
	FunctionConstructor byte = 3

	ClassRegular byte = 0
	ClassInterface byte = 1
	ClassEnum byte = 2
	ClassAbstract byte = 3

	VariableMutable byte = 0
	VariableImmutable byte = 1
	VariableField byte = 2
	VariableParameter byte = 3

	LoopCounter byte = 0
	LoopIterator byte = 1
	LoopConditional byte = 2
	LoopUnknown byte = 3
)

// WithRefinement returns code with its low 2 bits replaced by r&0x03.
func WithRefinement(code SemanticType, r byte) SemanticType {
	return SemanticType(uint8(code)&^refinementMask | (r & refinementMask))
}

// Refinement extracts the low 2 refinement bits from code.
func Refinement(code SemanticType) byte {
	return uint8(code) & refinementMask
}

// SuperKind extracts the super-kind field (bits 7-6).
func SuperKind(code SemanticType) byte {
	return (uint8(code) >> superKindShift) & fieldMask
}

// Kind extracts the kind field (bits 5-4).
func Kind(code SemanticType) byte {
	return (uint8(code) >> kindShift) & fieldMask
}

// SuperType extracts the super-type field (bits 3-2).
func SuperType(code SemanticType) byte {
	return (uint8(code) >> superTypeShift) & fieldMask
}

// maskRefinement clears the low 2 bits, the form every predicate compares
// against: refinements are informational and must not affect Is* results.
func maskRefinement(code SemanticType) SemanticType {
	return SemanticType(uint8(code) & superTypeKindOf)
}

var superKindNames = [4]string{
	SuperKindDataStructure: "DATA_STRUCTURE",
	SuperKindComputation: "COMPUTATION",
	SuperKindControlEffects: "CONTROL_EFFECTS",
	SuperKindMetaExternal: "META_EXTERNAL",
}

// GetSuperKind returns the human-readable super-kind name for code.
func GetSuperKind(code SemanticType) string {
	return superKindNames[SuperKind(code)]
}

var kindNames = map[[2]byte]string{
	{SuperKindDataStructure, KindLiteral}: "LITERAL",
	{SuperKindDataStructure, KindName}: "NAME",
	{SuperKindDataStructure, KindType}: "TYPE",
	{SuperKindDataStructure, KindStructure}: "STRUCTURE",

	{SuperKindComputation, KindDefinition}: "DEFINITION",
	{SuperKindComputation, KindCall}: "CALL",
	{SuperKindComputation, KindOperator}: "OPERATOR",
	{SuperKindComputation, KindAccess}: "ACCESS",

	{SuperKindControlEffects, KindFlow}: "FLOW_CONTROL",
	{SuperKindControlEffects, KindErrorHandling}: "ERROR_HANDLING",
	{SuperKindControlEffects, KindOrganization}: "ORGANIZATION",
	{SuperKindControlEffects, KindMetadata}: "METADATA",

	{SuperKindMetaExternal, KindExternal}: "EXTERNAL",
	{SuperKindMetaExternal, KindComment}: "COMMENT",
	{SuperKindMetaExternal, KindAnnotation}: "ANNOTATION",
	{SuperKindMetaExternal, KindParser}: "PARSER",
}

// GetKind returns the human-readable kind name for code.
func GetKind(code SemanticType) string {
	if name, ok := kindNames[[2]byte{SuperKind(code), Kind(code)}]; ok {
		return name
	}
	return "UNKNOWN_KIND"
}
