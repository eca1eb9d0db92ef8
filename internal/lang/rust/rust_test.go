package rust

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	rustsit "github.com/smacker/go-tree-sitter/rust"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/flatten"
	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("rust")
	require.NoError(t, err)
	assert.Equal(t, "rust", a.Language())

	byExt, err := registry.GetProviderForFile("main.rs")
	require.NoError(t, err)
	assert.Equal(t, "rust", byExt.Language())
}

func TestFunctionItemName(t *testing.T) {
	parser := sitter.NewParser()
	parser.SetLanguage(rustsit.GetLanguage())
	code := []byte("fn add(a: i32, b: i32) -> i32 {\n a + b\n}\n")
	tree, err := parser.ParseCtx(context.Background(), nil, code)
	require.NoError(t, err)

	adapter, err := registry.GetProvider("rust")
	require.NoError(t, err)
	result := flatten.Flatten(tree.RootNode(), code, adapter, "t.rs", "rust", flatten.DefaultOptions())

	var found bool
	for _, n := range result.Nodes {
		if n.Type == "function_item" {
			found = true
			assert.Equal(t, "add", n.Name)
		}
	}
	assert.True(t, found)
}
