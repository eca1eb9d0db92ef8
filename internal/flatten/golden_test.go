package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/core"
)

// dumpNodes renders nodes as one deterministic line per row: depth-indented
// type, semantic-type name, and extracted name. This is the fixture format
// golden_test.go's.golden files capture, intentionally narrower than the
// full Node struct so unrelated field additions don't churn every fixture.
func dumpNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		fmt.Fprintf(&b, "%s%s %s name=%q\n", strings.Repeat("  ", int(n.Depth)), n.Type, core.TypeName(n.SemanticType), n.Name)
	}
	return b.String()
}

// TestFlattenGoFunctionMatchesGolden guards the flattener's DFS-preorder
// node order and semantic classification against unintended drift,
// reported as a unified diff instead of a raw string-inequality failure.
func TestFlattenGoFunctionMatchesGolden(t *testing.T) {
	source := "package main\n\nfunc add() {}\n"
	root, code := parseGo(t, source)

	result := Flatten(root, code, testAdapter(), "add.go", "go", Options{Peek: PeekNone, Context: "none"})
	got := dumpNodes(result.Nodes)

	goldenPath := filepath.Join("testdata", "add_function.golden")
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))
	}

	wantBytes, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	want := string(wantBytes)

	if got != want {
		diff := difflib.UnifiedDiff{
			A: difflib.SplitLines(want),
			B: difflib.SplitLines(got),
			FromFile: "want (golden)",
			ToFile: "got",
			Context: 3,
		}
		text, derr := difflib.GetUnifiedDiffString(diff)
		require.NoError(t, derr)
		t.Fatalf("flattened output diverged from golden:\n%s", text)
	}
}
