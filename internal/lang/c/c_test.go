package c

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	csit "github.com/smacker/go-tree-sitter/c"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/flatten"
	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("c")
	require.NoError(t, err)
	assert.Equal(t, "c", a.Language())

	byExt, err := registry.GetProviderForFile("main.c")
	require.NoError(t, err)
	assert.Equal(t, "c", byExt.Language())
}

func TestFunctionDefinitionName(t *testing.T) {
	parser := sitter.NewParser()
	parser.SetLanguage(csit.GetLanguage())
	code := []byte("int add(int a, int b) {\n return a + b;\n}\n")
	tree, err := parser.ParseCtx(context.Background(), nil, code)
	require.NoError(t, err)

	adapter, err := registry.GetProvider("c")
	require.NoError(t, err)
	result := flatten.Flatten(tree.RootNode(), code, adapter, "t.c", "c", flatten.DefaultOptions())

	var found bool
	for _, n := range result.Nodes {
		if n.Type == "function_definition" {
			found = true
			assert.Equal(t, "add", n.Name)
		}
	}
	assert.True(t, found)
}
