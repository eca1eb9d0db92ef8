package core

import "testing"

func TestTypeNameTypeCodeRoundTrip(t *testing.T) {
	for code, name := range typeNames {
		if got := TypeName(code); got != name {
			t.Errorf("TypeName(%#x) = %q, want %q", uint8(code), got, name)
		}
		if got := TypeCode(name); got != code {
			t.Errorf("TypeCode(%q) = %#x, want %#x", name, uint8(got), uint8(code))
		}
	}
}

func TestTypeNameUnknownCode(t *testing.T) {
	if got := TypeName(UnknownSemanticType); got != unknownSemanticTypeName {
		t.Errorf("TypeName(UnknownSemanticType) = %q, want %q", got, unknownSemanticTypeName)
	}
	if got := TypeName(SemanticType(0x07)); got != unknownSemanticTypeName {
		t.Errorf("TypeName(0x07) = %q, want %q", got, unknownSemanticTypeName)
	}
}

func TestTypeCodeUnknownName(t *testing.T) {
	if got := TypeCode("NOT_A_REAL_TYPE"); got != UnknownSemanticType {
		t.Errorf("TypeCode(unknown) = %#x, want sentinel %#x", uint8(got), uint8(UnknownSemanticType))
	}
}

func TestSuperKindAndKindExtraction(t *testing.T) {
	cases := []struct {
		code SemanticType
		wantSS byte
		wantKind string
	}{
		{DefinitionFunction, SuperKindComputation, "DEFINITION"},
		{CallMethod, SuperKindComputation, "CALL"},
		{FlowConditional, SuperKindControlEffects, "FLOW_CONTROL"},
		{LiteralString, SuperKindDataStructure, "LITERAL"},
		{ExternalImport, SuperKindMetaExternal, "EXTERNAL"},
		{ParserSyntax, SuperKindMetaExternal, "PARSER"},
	}
	for _, c := range cases {
		if got := SuperKind(c.code); got != c.wantSS {
			t.Errorf("SuperKind(%s) = %d, want %d", TypeName(c.code), got, c.wantSS)
		}
		if got := GetKind(c.code); got != c.wantKind {
			t.Errorf("GetKind(%s) = %q, want %q", TypeName(c.code), got, c.wantKind)
		}
	}
}

func TestRefinementIsInformationalOnly(t *testing.T) {
	async := WithRefinement(DefinitionFunction, FunctionAsync)
	if async == DefinitionFunction {
		t.Fatal("expected WithRefinement to change the byte value")
	}
	if !IsFunctionDefinition(async) {
		t.Error("IsFunctionDefinition must ignore refinement bits")
	}
	if !IsDefinition(async) {
		t.Error("IsDefinition must ignore refinement bits")
	}
	if Refinement(async) != FunctionAsync {
		t.Errorf("Refinement(async) = %d, want %d", Refinement(async), FunctionAsync)
	}

	immutable := WithRefinement(DefinitionVariable, VariableImmutable)
	mutable := WithRefinement(DefinitionVariable, VariableMutable)
	if !IsVariableDefinition(immutable) || !IsVariableDefinition(mutable) {
		t.Error("IsVariableDefinition must hold regardless of mutability refinement")
	}
	if TypeName(maskRefinement(immutable)) != TypeName(mutable) {
		t.Error("refined variants of the same leaf code must report the same type name once refinement is masked")
	}
}

func TestParserConstructVsSyntaxAreDistinct(t *testing.T) {
	if ParserConstruct == ParserSyntax {
		t.Fatal("ParserConstruct and ParserSyntax must be distinct codes")
	}
	if TypeName(ParserConstruct) == TypeName(ParserSyntax) {
		t.Error("ParserConstruct and ParserSyntax must have distinct names")
	}
	if !IsParserConstruct(ParserConstruct) || !IsParserConstruct(ParserSyntax) {
		t.Error("both must satisfy IsParserConstruct")
	}
	if IsSyntaxError(ParserConstruct) {
		t.Error("ParserConstruct must not satisfy IsSyntaxError")
	}
	if !IsSyntaxError(ParserSyntax) {
		t.Error("ParserSyntax must satisfy IsSyntaxError")
	}
}

func TestPredicatesAreMutuallyExclusiveAcrossKinds(t *testing.T) {
	if IsCall(DefinitionFunction) {
		t.Error("a definition must not also be classified as a call")
	}
	if IsDefinition(CallFunction) {
		t.Error("a call must not also be classified as a definition")
	}
	if IsControlFlow(ErrorTry) {
		t.Error("error handling must not be classified as flow control")
	}
	if IsLiteral(NameIdentifier) {
		t.Error("an identifier must not be classified as a literal")
	}
}

func TestGetSearchableTypesNonEmptyAndNamed(t *testing.T) {
	types := GetSearchableTypes()
	if len(types) == 0 {
		t.Fatal("expected at least one searchable type")
	}
	for _, ty := range types {
		if TypeName(ty) == unknownSemanticTypeName {
			t.Errorf("searchable type %#x has no canonical name", uint8(ty))
		}
	}
}

func TestFlagsSetAndHas(t *testing.T) {
	var f Flags
	if f.Has(FlagKeyword) {
		t.Error("zero-value Flags must not report FlagKeyword set")
	}
	f = f.Set(FlagKeyword, true).Set(FlagPublic, true)
	if !f.Has(FlagKeyword) || !f.Has(FlagPublic) {
		t.Error("expected both flags set")
	}
	if f.Has(FlagBuiltin) {
		t.Error("unrelated flag must remain unset")
	}
	f = f.Set(FlagKeyword, false)
	if f.Has(FlagKeyword) {
		t.Error("expected FlagKeyword to be cleared")
	}
	if !f.Has(FlagPublic) {
		t.Error("clearing one flag must not clear others")
	}
}
