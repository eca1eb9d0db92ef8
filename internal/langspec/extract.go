package langspec

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// maxWalkDepth bounds the FIND_ASSIGNMENT_TARGET walk up the parent chain:
// a bounded excursion off the main DFS, not unbounded recursion.
const maxWalkDepth = 8

func extractByStrategy(strategy NameStrategy, node *sitter.Node, source []byte) string {
	switch strategy {
	case NameNone:
		return ""
	case NameNodeText:
		return node.Content(source)
	case NameFindIdentifier:
		return findIdentifierChild(node, source)
	case NameFindQualifiedIdentifier:
		return findQualifiedIdentifier(node, source)
	case NameFindAssignmentTarget:
		return findAssignmentTarget(node, source)
	case NameFindProperty:
		return findProperty(node, source)
	case NameFindCallTarget:
		return findCallTarget(node, source)
	default:
		return ""
	}
}

// findIdentifierChild searches node's immediate children for a member of
// commonIdentifierTypes and returns its source text.
func findIdentifierChild(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if commonIdentifierTypes[child.Type()] {
			return child.Content(source)
		}
	}
	return ""
}

// findQualifiedIdentifier descends into a function_declarator (the C++
// path) before applying FIND_IDENTIFIER, so `Foo::bar` style declarators
// yield their inner identifier rather than an empty name.
func findQualifiedIdentifier(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	declarator := node.ChildByFieldName("declarator")
	if declarator == nil {
		for i := 0; i < int(node.ChildCount()); i++ {
			if child := node.Child(i); child != nil && child.Type() == "function_declarator" {
				declarator = child
				break
			}
		}
	}
	if declarator == nil {
		return findIdentifierChild(node, source)
	}
	if name := findIdentifierChild(declarator, source); name != "" {
		return name
	}
	return declarator.Content(source)
}

// findAssignmentTarget walks up from node to the nearest enclosing
// assignment-shaped ancestor and returns its left-hand identifier, used for
// lambdas/arrow functions bound to a name.
func findAssignmentTarget(node *sitter.Node, source []byte) string {
	current := node
	for depth := 0; depth < maxWalkDepth && current != nil; depth++ {
		parent := current.Parent()
		if parent == nil {
			break
		}
		if assignmentNodeTypes[parent.Type()] {
			if left := parent.ChildByFieldName("left"); left != nil {
				return left.Content(source)
			}
			if name := parent.ChildByFieldName("name"); name != nil {
				return name.Content(source)
			}
			return findIdentifierChild(parent, source)
		}
		current = parent
	}
	return ""
}

// findProperty locates a property_identifier child, or the "property" field
// of a member/dotted-access expression.
func findProperty(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	if prop := node.ChildByFieldName("property"); prop != nil {
		return prop.Content(source)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child != nil && child.Type() == "property_identifier" {
			return child.Content(source)
		}
	}
	return findIdentifierChild(node, source)
}

// findCallTarget returns a call node's callee name: a plain identifier, or
// the full dotted expression text for method-like calls (obj.method).
func findCallTarget(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	fn := node.ChildByFieldName("function")
	if fn == nil {
		fn = node.Child(0)
	}
	if fn == nil {
		return ""
	}
	switch fn.Type() {
	case "member_expression", "selector_expression", "attribute", "field_expression":
		return fn.Content(source)
	}
	if commonIdentifierTypes[fn.Type()] {
		return fn.Content(source)
	}
	if name := findIdentifierChild(fn, source); name != "" {
		return name
	}
	return fn.Content(source)
}

func genericSignatureType(strategy ValueStrategy, node *sitter.Node, source []byte) string {
	switch strategy {
	case ValueVariableWithType:
		if t := node.ChildByFieldName("type"); t != nil {
			return t.Content(source)
		}
	case ValueFunctionWithParams, ValueArrowFunction:
		if t := node.ChildByFieldName("return_type"); t != nil {
			return t.Content(source)
		}
		if t := node.ChildByFieldName("result"); t != nil {
			return t.Content(source)
		}
	}
	return ""
}

func genericParameters(strategy ValueStrategy, node *sitter.Node, source []byte) []string {
	switch strategy {
	case ValueFunctionWithParams, ValueArrowFunction, ValueFunctionCall:
		params := node.ChildByFieldName("parameters")
		if params == nil {
			params = node.ChildByFieldName("arguments")
		}
		if params == nil {
			return nil
		}
		return namedChildIdentifiers(params, source)
	}
	return nil
}

// namedChildIdentifiers collects the text of each named child of a
// parameter/argument list, stripping surrounding whitespace.
func namedChildIdentifiers(list *sitter.Node, source []byte) []string {
	out := make([]string, 0, int(list.NamedChildCount()))
	for i := 0; i < int(list.NamedChildCount()); i++ {
		child := list.NamedChild(i)
		if child == nil {
			continue
		}
		text := strings.TrimSpace(child.Content(source))
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}
