package flatten

import (
	"context"
	"testing"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
)

func parseGo(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(golang.GetLanguage())
	code := []byte(source)
	tree, err := parser.ParseCtx(context.Background(), nil, code)
	if err != nil {
		t.Fatalf("failed to parse Go source: %v", err)
	}
	return tree.RootNode(), code
}

// testAdapter is a minimal table covering enough raw types to exercise the
// flattener without pulling in a full internal/lang package.
func testAdapter() *langspec.TableAdapter {
	return &langspec.TableAdapter{
		Lang: "go",
		Table: langspec.TypeTable{
			"source_file": {SemanticType: core.OrganizationBlock},
			"package_clause": {SemanticType: core.OrganizationModule},
			"package_identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
			"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: langspec.NameFindIdentifier, ValueStrategy: langspec.ValueFunctionWithParams},
			"identifier": {SemanticType: core.NameIdentifier, NameStrategy: langspec.NameNodeText},
			"parameter_list": {SemanticType: core.MetadataParameters},
			"parameter_declaration": {SemanticType: core.MetadataReturnType, NameStrategy: langspec.NameFindIdentifier},
			"block": {SemanticType: core.OrganizationBlock},
			",": {SemanticType: core.ParserPunctuation},
			"(": {SemanticType: core.ParserDelimiter},
			")": {SemanticType: core.ParserDelimiter},
			"{": {SemanticType: core.ParserDelimiter},
			"}": {SemanticType: core.ParserDelimiter},
		},
		Anonymous: map[string]bool{},
	}
}

func TestFlattenPreorderIDsAndDescendantCounts(t *testing.T) {
	root, source := parseGo(t, "package main\n\nfunc hello(a int) {\n}\n")
	result := Flatten(root, source, testAdapter(), "main.go", "go", DefaultOptions())

	if len(result.Nodes) == 0 {
		t.Fatal("expected at least one node")
	}
	if result.Nodes[0].NodeID != 0 {
		t.Errorf("root NodeID = %d, want 0", result.Nodes[0].NodeID)
	}
	if result.Nodes[0].ParentID != -1 {
		t.Errorf("root ParentID = %d, want -1", result.Nodes[0].ParentID)
	}

	for i, n := range result.Nodes {
		if int64(i) != n.NodeID {
			t.Fatalf("node at index %d has NodeID %d, ids must be dense and ordered", i, n.NodeID)
		}
		if n.ParentID >= n.NodeID && n.ParentID != -1 {
			t.Errorf("node %d: parent_id %d must be < node_id", n.NodeID, n.ParentID)
		}
		lo := int(n.NodeID)
		hi := lo + int(n.DescendantCount)
		if hi >= len(result.Nodes) {
			t.Fatalf("node %d: subtree range [%d,%d] exceeds sequence length %d", n.NodeID, lo, hi, len(result.Nodes))
		}
	}
}

func TestFlattenDescendantSumMatchesChildren(t *testing.T) {
	root, source := parseGo(t, "package main\n\nfunc hello(a int, b int) {\n}\n")
	result := Flatten(root, source, testAdapter(), "main.go", "go", DefaultOptions())

	for _, n := range result.Nodes {
		var sum uint32
		var k uint32
		for _, child := range result.Nodes {
			if child.ParentID == n.NodeID {
				k++
				sum += child.DescendantCount
			}
		}
		want := k + sum
		if n.DescendantCount != want {
			t.Errorf("node %d (%s): descendant_count = %d, want %d (k=%d sum=%d)", n.NodeID, n.Type, n.DescendantCount, want, k, sum)
		}
	}
}

func TestFlattenDepthConsistency(t *testing.T) {
	root, source := parseGo(t, "package main\n\nfunc hello() {\n}\n")
	result := Flatten(root, source, testAdapter(), "main.go", "go", DefaultOptions())

	byID := make(map[int64]Node, len(result.Nodes))
	for _, n := range result.Nodes {
		byID[n.NodeID] = n
	}
	for _, n := range result.Nodes {
		if n.ParentID == -1 {
			if n.Depth != 0 {
				t.Errorf("root depth = %d, want 0", n.Depth)
			}
			continue
		}
		parent := byID[n.ParentID]
		if n.Depth != parent.Depth+1 {
			t.Errorf("node %d depth = %d, want parent.depth+1 = %d", n.NodeID, n.Depth, parent.Depth+1)
		}
	}
}

func TestFlattenFunctionNameExtracted(t *testing.T) {
	root, source := parseGo(t, "package main\n\nfunc hello(a int) {\n}\n")
	result := Flatten(root, source, testAdapter(), "main.go", "go", DefaultOptions())

	var found bool
	for _, n := range result.Nodes {
		if n.Type == "function_declaration" {
			found = true
			if n.Name != "hello" {
				t.Errorf("function name = %q, want %q", n.Name, "hello")
			}
			if n.SignatureType == "" && len(n.Parameters) == 0 {
				t.Error("expected native-context enrichment on a function_declaration with ValueFunctionWithParams")
			}
		}
	}
	if !found {
		t.Fatal("expected a function_declaration node")
	}
}

func TestFlattenErrorNodeClassifiesAsParserSyntax(t *testing.T) {
	root, source := parseGo(t, "package main\n\nfunc ( {\n")
	result := Flatten(root, source, testAdapter(), "main.go", "go", DefaultOptions())

	var sawError bool
	for _, n := range result.Nodes {
		if n.Type == "ERROR" {
			sawError = true
			if n.SemanticType != core.ParserSyntax {
				t.Errorf("ERROR node semantic_type = %v, want ParserSyntax", n.SemanticType)
			}
		}
	}
	_ = sawError // malformed source may or may not produce an ERROR node depending on grammar recovery
}

func TestFlattenSpanNesting(t *testing.T) {
	root, source := parseGo(t, "package main\n\nfunc hello() {\n}\n")
	result := Flatten(root, source, testAdapter(), "main.go", "go", DefaultOptions())

	byID := make(map[int64]Node, len(result.Nodes))
	for _, n := range result.Nodes {
		byID[n.NodeID] = n
	}
	for _, n := range result.Nodes {
		if n.ParentID == -1 {
			continue
		}
		parent := byID[n.ParentID]
		if n.StartByte < parent.StartByte || n.EndByte > parent.EndByte {
			t.Errorf("node %d span [%d,%d) not contained in parent %d span [%d,%d)",
				n.NodeID, n.StartByte, n.EndByte, parent.NodeID, parent.StartByte, parent.EndByte)
		}
	}
}

func TestFlattenNilRoot(t *testing.T) {
	result := Flatten(nil, nil, testAdapter(), "empty.go", "go", DefaultOptions())
	if len(result.Nodes) != 0 {
		t.Errorf("expected no nodes for a nil root, got %d", len(result.Nodes))
	}
}

func TestPeekPolicies(t *testing.T) {
	slice := []byte("func hello() {\n\treturn\n}")

	if got := computePeek(slice, PeekNone); got != "" {
		t.Errorf("PeekNone = %q, want empty", got)
	}
	if got := computePeek(slice, PeekFull); got != string(slice) {
		t.Errorf("PeekFull = %q, want full slice", got)
	}
	if got := computePeek(slice, PeekSmart); got != "func hello() {" {
		t.Errorf("PeekSmart = %q, want first logical line", got)
	}
	if got := computePeek(slice, PeekBytes(4)); got != "func" {
		t.Errorf("PeekBytes(4) = %q, want %q", got, "func")
	}
	compact := computePeek(slice, PeekCompact)
	if compact != "func hello() { return }" {
		t.Errorf("PeekCompact = %q, want whitespace collapsed", compact)
	}
}

func TestTruncateUTF8NeverSplitsRune(t *testing.T) {
	s := "héllo" // 'é' is 2 bytes
	for n := 0; n <= len(s); n++ {
		got := truncateUTF8(s, n)
		if !utf8.ValidString(got) {
			t.Errorf("truncateUTF8(%q, %d) = %q is not valid UTF-8", s, n, got)
		}
	}
}
