package core

// Predicates test a super-kind/kind/super-type combination and ignore the
// refinement bits. Broad predicates (IsDefinition, IsCall,...) test only
// super-kind+kind; narrow ones (IsFunctionCall, IsLoop,...) also test
// super-type.

func isKind(code SemanticType, ss, kk byte) bool {
	return SuperKind(code) == ss && Kind(code) == kk
}

func isLeaf(code SemanticType, leaf SemanticType) bool {
	return maskRefinement(code) == maskRefinement(leaf)
}

// IsDefinition reports whether code classifies a definition of any kind
// (function, class, variable, constant).
func IsDefinition(code SemanticType) bool {
	return isKind(code, SuperKindComputation, KindDefinition)
}

func IsFunctionDefinition(code SemanticType) bool { return isLeaf(code, DefinitionFunction) }
func IsClassDefinition(code SemanticType) bool { return isLeaf(code, DefinitionClass) }
func IsVariableDefinition(code SemanticType) bool { return isLeaf(code, DefinitionVariable) }

// IsCall reports whether code classifies any kind of invocation.
func IsCall(code SemanticType) bool {
	return isKind(code, SuperKindComputation, KindCall)
}

func IsFunctionCall(code SemanticType) bool { return isLeaf(code, CallFunction) }
func IsMethodCall(code SemanticType) bool { return isLeaf(code, CallMethod) }

// IsOperator reports whether code classifies any operator node.
func IsOperator(code SemanticType) bool {
	return isKind(code, SuperKindComputation, KindOperator)
}

func IsArithmetic(code SemanticType) bool { return isLeaf(code, OperatorArithmetic) }
func IsComparison(code SemanticType) bool { return isLeaf(code, OperatorComparison) }
func IsLogical(code SemanticType) bool { return isLeaf(code, OperatorLogical) }

func IsAssignment(code SemanticType) bool { return isLeaf(code, AccessAssignment) }
func IsMemberAccess(code SemanticType) bool { return isLeaf(code, AccessMember) }

// IsControlFlow reports whether code classifies a flow-control construct
// (conditional, loop, jump, sync).
func IsControlFlow(code SemanticType) bool {
	return isKind(code, SuperKindControlEffects, KindFlow)
}

func IsConditional(code SemanticType) bool { return isLeaf(code, FlowConditional) }
func IsLoop(code SemanticType) bool { return isLeaf(code, FlowLoop) }
func IsJump(code SemanticType) bool { return isLeaf(code, FlowJump) }

// IsErrorHandling reports whether code classifies a try/throw/finally/
// assert construct.
func IsErrorHandling(code SemanticType) bool {
	return isKind(code, SuperKindControlEffects, KindErrorHandling)
}

// IsLiteral reports whether code classifies any literal value.
func IsLiteral(code SemanticType) bool {
	return isKind(code, SuperKindDataStructure, KindLiteral)
}

func IsStringLiteral(code SemanticType) bool { return isLeaf(code, LiteralString) }
func IsNumberLiteral(code SemanticType) bool { return isLeaf(code, LiteralNumber) }
func IsBooleanLiteral(code SemanticType) bool { return isLeaf(code, LiteralBoolean) }

// IsIdentifier reports whether code classifies a bare name/reference node.
func IsIdentifier(code SemanticType) bool {
	return isKind(code, SuperKindDataStructure, KindName)
}

func IsImport(code SemanticType) bool { return isLeaf(code, ExternalImport) }
func IsExport(code SemanticType) bool { return isLeaf(code, ExternalExport) }

// IsComment reports whether code classifies any comment variant.
func IsComment(code SemanticType) bool {
	return isKind(code, SuperKindMetaExternal, KindComment)
}

// IsAnnotation reports whether code classifies a decorator/attribute/
// pragma/directive node.
func IsAnnotation(code SemanticType) bool {
	return isKind(code, SuperKindMetaExternal, KindAnnotation)
}

// IsParserConstruct reports whether code is a syntax-only node: keywords,
// punctuation, delimiters, unknown raw types, or tree-sitter ERROR nodes.
func IsParserConstruct(code SemanticType) bool {
	return isKind(code, SuperKindMetaExternal, KindParser)
}

// IsSyntaxError reports whether code specifically marks a tree-sitter ERROR
// node, as distinct from an unrecognized-but-valid raw type.
func IsSyntaxError(code SemanticType) bool {
	return code == ParserSyntax
}
