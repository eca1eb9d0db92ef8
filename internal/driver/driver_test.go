package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/langspec"
	"github.com/parsekit/flattenast/internal/registry"

	"github.com/smacker/go-tree-sitter/golang"

	"github.com/parsekit/flattenast/core"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.NewRegistry()
	adapter := &langspec.TableAdapter{
		Lang: "go",
		ExtList: []string{".go"},
		Sitter: golang.GetLanguage(),
		Anonymous: map[string]bool{},
		Table: langspec.TypeTable{
			"source_file": {SemanticType: core.OrganizationBlock},
			"package_clause": {SemanticType: core.OrganizationModule},
			"package_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
			"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier},
			"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
			"block": {SemanticType: core.OrganizationBlock},
		},
	}
	require.NoError(t, reg.RegisterProvider(adapter))
	return reg
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExpandPatternsLiteralAndGlobDedup(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.go", "package main\n")
	writeTestFile(t, dir, "b.go", "package main\n")

	aPath := filepath.Join(dir, "a.go")
	pattern := filepath.Join(dir, "*.go")

	got, err := ExpandPatterns([]string{aPath, aPath, pattern})
	require.NoError(t, err)
	assert.Equal(t, []string{aPath, filepath.Join(dir, "b.go")}, got)
}

func TestExpandPatternsRejectsEmptyList(t *testing.T) {
	_, err := ExpandPatterns(nil)
	assert.Error(t, err)
}

func TestExpandPatternsRejectsEmptyEntry(t *testing.T) {
	_, err := ExpandPatterns([]string{""})
	assert.Error(t, err)
}

func TestRunStreamsRowsForMatchedFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.go", "package main\n\nfunc hello() {}\n")
	reg := testRegistry(t)

	batches, errs, err := Run([]string{filepath.Join(dir, "*.go")}, reg, Options{})
	require.NoError(t, err)

	var total int
	for b := range batches {
		total += len(b.Nodes)
		assert.Equal(t, "go", b.Language)
	}
	for e := range errs {
		t.Fatalf("unexpected error: %v", e)
	}
	assert.Greater(t, total, 0)
}

func TestRunIgnoreErrorsSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.go", "package main\n")
	reg := testRegistry(t)

	patterns := []string{filepath.Join(dir, "missing.go"), filepath.Join(dir, "a.go")}
	batches, errs, err := Run(patterns, reg, Options{IgnoreErrors: true})
	require.NoError(t, err)

	seen := map[string]bool{}
	for b := range batches {
		seen[b.FilePath] = true
	}
	var fileErrs []FileError
	for e := range errs {
		fileErrs = append(fileErrs, e)
	}

	assert.True(t, seen[filepath.Join(dir, "a.go")])
	require.Len(t, fileErrs, 1)
	assert.Contains(t, fileErrs[0].FilePath, "missing.go")
}

func TestRunAbortsOnFirstErrorWithoutIgnoreErrors(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.go", "package main\n")
	reg := testRegistry(t)

	patterns := []string{filepath.Join(dir, "missing.go"), filepath.Join(dir, "a.go")}
	batches, errs, err := Run(patterns, reg, Options{})
	require.NoError(t, err)

	for range batches {
	}
	var fileErrs []FileError
	for e := range errs {
		fileErrs = append(fileErrs, e)
	}
	require.Len(t, fileErrs, 1)
}

func TestRunBatchesLargeFileIntoChunks(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.go", "package main\n\nfunc hello() {}\n")
	reg := testRegistry(t)

	batches, errs, err := Run([]string{filepath.Join(dir, "a.go")}, reg, Options{BatchSize: 1})
	require.NoError(t, err)

	var count int
	var lastSeen bool
	for b := range batches {
		count++
		if b.IsLast {
			lastSeen = true
		}
		assert.LessOrEqual(t, len(b.Nodes), 1)
	}
	for e := range errs {
		t.Fatalf("unexpected error: %v", e)
	}
	assert.Greater(t, count, 1)
	assert.True(t, lastSeen)
}

func TestParseSourceNilGrammar(t *testing.T) {
	_, err := parseSource([]byte("x"), &langspec.TableAdapter{Lang: "nil-lang"})
	assert.Error(t, err)
}

func TestStatSize(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.go", "package main\n")
	size, err := statSize(path)
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))
}
