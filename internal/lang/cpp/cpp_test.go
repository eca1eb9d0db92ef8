package cpp

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	cppsit "github.com/smacker/go-tree-sitter/cpp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/flatten"
	"github.com/parsekit/flattenast/internal/registry"
)

func parse(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(cppsit.GetLanguage())
	code := []byte(source)
	tree, err := parser.ParseCtx(context.Background(), nil, code)
	require.NoError(t, err)
	return tree.RootNode(), code
}

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("cpp")
	require.NoError(t, err)
	assert.Equal(t, "cpp", a.Language())

	byExt, err := registry.GetProviderForFile("thing.cpp")
	require.NoError(t, err)
	assert.Equal(t, "cpp", byExt.Language())
}

// TestQualifiedMethodDefinitionName exercises scenario B: `void Foo::bar()
// {}` must classify function_definition with name "Foo::bar".
func TestQualifiedMethodDefinitionName(t *testing.T) {
	root, source := parse(t, "void Foo::bar() {}\n")
	adapter, err := registry.GetProvider("cpp")
	require.NoError(t, err)

	result := flatten.Flatten(root, source, adapter, "t.cpp", "cpp", flatten.DefaultOptions())

	var found bool
	for _, n := range result.Nodes {
		if n.Type == "function_definition" {
			found = true
			assert.Equal(t, "Foo::bar", n.Name)
		}
	}
	assert.True(t, found)
}
