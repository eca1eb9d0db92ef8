package flattenast

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadASTStreamsGoFunctionDefinition(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package main\n\nfunc hello() {}\n")

	batches, errs, err := ReadAST([]string{filepath.Join(dir, "*.go")}, Options{})
	require.NoError(t, err)

	var sawFunc bool
	for b := range batches {
		for _, n := range b.Nodes {
			if n.Type == "function_declaration" && n.Name == "hello" {
				sawFunc = true
			}
		}
	}
	for e := range errs {
		t.Fatalf("unexpected error: %v", e)
	}
	assert.True(t, sawFunc)
}

func TestAstSupportedLanguagesIncludesFlagshipLanguages(t *testing.T) {
	langs := AstSupportedLanguages()
	ids := make(map[string]bool, len(langs))
	for _, l := range langs {
		ids[l.ID] = true
	}
	for _, want := range []string{"go", "python", "javascript", "typescript", "rust", "java", "c", "cpp", "ruby", "sql", "yaml", "html"} {
		assert.True(t, ids[want], "expected %s to be registered", want)
	}
}

func TestSemanticTypeNameRoundTrips(t *testing.T) {
	name := SemanticTypeName(core.DefinitionFunction)
	assert.Equal(t, "DEFINITION_FUNCTION", name)
	assert.Equal(t, core.DefinitionFunction, SemanticTypeCode(name))
}

func TestSemanticTypeNameUnknownFallsBack(t *testing.T) {
	assert.Equal(t, "UNKNOWN_SEMANTIC_TYPE", SemanticTypeName(core.SemanticType(0xAB)))
	assert.Equal(t, core.UnknownSemanticType, SemanticTypeCode("NOT_A_REAL_TYPE"))
}

func TestPredicatesIgnoreRefinementBits(t *testing.T) {
	plain := core.DefinitionFunction
	refined := core.WithRefinement(core.DefinitionFunction, core.FunctionAsync)
	assert.True(t, IsFunctionDefinition(plain))
	assert.True(t, IsFunctionDefinition(refined))
	assert.True(t, IsDefinition(refined))
}

func TestSearchableSemanticTypesIncludesDefinitionsAndCalls(t *testing.T) {
	types := SearchableSemanticTypes()
	assert.Contains(t, types, core.DefinitionFunction)
	assert.Contains(t, types, core.CallFunction)
	assert.Contains(t, types, core.ExternalImport)
}
