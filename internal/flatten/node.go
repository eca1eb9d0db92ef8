// Package flatten implements the unified backend: an iterative DFS over
// a parsed tree-sitter tree that emits a flat, DFS-preorder sequence of
// Node records with O(1) descendant counts, carrying the structural,
// source-span, and semantic-classification fields every downstream
// consumer (driver, query layer) relies on.
package flatten

import "github.com/parsekit/flattenast/core"

// Node is one flattened AST record.
type Node struct {
	NodeID int64
	ParentID int64 // -1 at the root, which has no parent
	Depth uint32
	SiblingIndex uint32
	ChildrenCount uint32
	DescendantCount uint32

	Type string
	SemanticType core.SemanticType
	Flags core.Flags

	Name string
	SignatureType string
	Parameters []string
	Modifiers []string

	StartByte, EndByte uint32
	StartLine, EndLine uint32
	StartColumn, EndColumn uint32

	Peek string

	FilePath string
	Language string
}

// Result is the ordered node sequence plus file-scope metadata a single
// parse-and-flatten call returns.
type Result struct {
	Nodes []Node
	NodeCount int
	MaxDepth int
	Language string
	FilePath string
}
