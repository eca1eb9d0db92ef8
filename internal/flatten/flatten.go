package flatten

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/langspec"
)

// Options configures a single Flatten call.
type Options struct {
	Peek PeekMode
	// Context selects how much native-context enrichment is computed:
	// "none", "node_types_only", "normalized", or "native" (full
	// signature_type/parameters/modifiers). Anything other than "native"
	// skips native-context enrichment entirely.
	Context string
}

// DefaultOptions returns the standard behavior for a flatten call: a smart
// peek and full native-context enrichment.
func DefaultOptions() Options {
	return Options{Peek: PeekSmart, Context: "native"}
}

// frame is one explicit-stack entry for the iterative DFS. node is this traversal's cursor state;
// slotIndex points at the Node this frame will finalize (its
// descendant_count) when popped after all children are visited.
type frame struct {
	node *sitter.Node
	parentID int64
	depth uint32
	siblingIndex uint32
	slotIndex int
	childrenLeft []*sitter.Node // remaining children to push, front = next
	totalChildren int // len(childrenLeft) at the moment it was built
	visited bool // whether this frame's own Node has been recorded yet
}

// Flatten performs an iterative preorder DFS over root, producing a flat
// node sequence: node_id assigned preorder, descendant_count finalized
// postorder, one Node per visited grammar node (anonymous nodes skipped
// unless the adapter opts them back in).
//
// Recursion is deliberately avoided for this traversal: the
// explicit stack below is the whole of the algorithm, so adversarially
// deep source files cannot exhaust the call stack.
func Flatten(root *sitter.Node, source []byte, adapter langspec.Adapter, filePath, language string, opts Options) Result {
	if root == nil {
		return Result{Language: language, FilePath: filePath}
	}

	var nodes []Node
	var nextID int64
	maxDepth := 0

	stack := []*frame{{node: root, parentID: -1, depth: 0, siblingIndex: 0}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if !top.visited {
			top.visited = true
			top.slotIndex = len(nodes)
			nodes = append(nodes, buildNode(top.node, source, adapter, nextID, top.parentID, top.depth, top.siblingIndex, filePath, language, opts))
			nextID++
			if int(top.depth) > maxDepth {
				maxDepth = int(top.depth)
			}
			top.childrenLeft = eligibleChildren(top.node, adapter)
			top.totalChildren = len(top.childrenLeft)
		}

		if len(top.childrenLeft) == 0 {
			nodes[top.slotIndex].ChildrenCount = uint32(top.totalChildren)
			nodes[top.slotIndex].DescendantCount = uint32(nextID - nodes[top.slotIndex].NodeID - 1)
			stack = stack[:len(stack)-1]
			continue
		}

		child := top.childrenLeft[0]
		top.childrenLeft = top.childrenLeft[1:]
		childIdx := uint32(top.totalChildren - len(top.childrenLeft) - 1)
		stack = append(stack, &frame{
				node: child,
				parentID: nodes[top.slotIndex].NodeID,
				depth: top.depth + 1,
				siblingIndex: childIdx,
		})
	}

	return Result{
		Nodes: nodes,
		NodeCount: len(nodes),
		MaxDepth: maxDepth,
		Language: language,
		FilePath: filePath,
	}
}

// eligibleChildren returns node's children in traversal order, filtering
// out anonymous (unnamed) grammar nodes unless the adapter opts a given
// raw type back in.
func eligibleChildren(node *sitter.Node, adapter langspec.Adapter) []*sitter.Node {
	n := int(node.ChildCount())
	out := make([]*sitter.Node, 0, n)
	for i := 0; i < n; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if !child.IsNamed() && (adapter == nil || !adapter.IncludeAnonymous(child.Type())) {
			continue
		}
		out = append(out, child)
	}
	return out
}

// buildNode turns a single grammar node into a flattened Node:
// classification, name extraction, span recording, peek, and (when
// requested) native-context enrichment.
func buildNode(node *sitter.Node, source []byte, adapter langspec.Adapter, nodeID, parentID int64, depth, siblingIndex uint32, filePath, language string, opts Options) Node {
	rawType := node.Type()
	entry := adapter.Classify(rawType)

	startByte, endByte := node.StartByte(), node.EndByte()
	startPoint, endPoint := node.StartPoint(), node.EndPoint()

	n := Node{
		NodeID: nodeID,
		ParentID: parentID,
		Depth: depth,
		SiblingIndex: siblingIndex,
		Type: rawType,
		SemanticType: entry.SemanticType,
		Flags: entry.Flags,
		StartByte: startByte,
		EndByte: endByte,
		StartLine: startPoint.Row + 1,
		EndLine: endPoint.Row + 1,
		StartColumn: startPoint.Column + 1,
		EndColumn: endPoint.Column + 1,
		FilePath: filePath,
		Language: language,
	}

	// Tree-sitter's error-recovery guarantee means a parse always produces
	// a tree; ERROR nodes always classify as PARSER_SYNTAX regardless of
	// what (if anything) a language's table says for that raw type.
	if rawType == "ERROR" {
		n.SemanticType = core.ParserSyntax
	}

	n.Name = adapter.ExtractName(node, source)

	var slice []byte
	if int(endByte) <= len(source) && startByte <= endByte {
		slice = source[startByte:endByte]
	}
	n.Peek = computePeek(slice, opts.Peek)

	if opts.Context == "native" && entry.ValueStrategy != langspec.ValueNone {
		n.SignatureType = adapter.ExtractSignatureType(node, source, entry)
		n.Parameters = adapter.ExtractParameters(node, source, entry)
		n.Modifiers = adapter.ExtractModifiers(node, source)
	}

	return n
}
