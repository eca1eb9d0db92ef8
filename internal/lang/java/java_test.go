package java

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	javasit "github.com/smacker/go-tree-sitter/java"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/flatten"
	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("java")
	require.NoError(t, err)
	assert.Equal(t, "java", a.Language())

	byExt, err := registry.GetProviderForFile("Main.java")
	require.NoError(t, err)
	assert.Equal(t, "java", byExt.Language())
}

func TestMethodDeclarationName(t *testing.T) {
	parser := sitter.NewParser()
	parser.SetLanguage(javasit.GetLanguage())
	code := []byte("class Foo {\n void bar() {}\n}\n")
	tree, err := parser.ParseCtx(context.Background(), nil, code)
	require.NoError(t, err)

	adapter, err := registry.GetProvider("java")
	require.NoError(t, err)
	result := flatten.Flatten(tree.RootNode(), code, adapter, "Foo.java", "java", flatten.DefaultOptions())

	var found bool
	for _, n := range result.Nodes {
		if n.Type == "method_declaration" {
			found = true
			assert.Equal(t, "bar", n.Name)
		}
	}
	assert.True(t, found)
}
