package swift

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	swiftsit "github.com/smacker/go-tree-sitter/swift"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/flatten"
	"github.com/parsekit/flattenast/internal/registry"
)

func parse(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(swiftsit.GetLanguage())
	code := []byte(source)
	tree, err := parser.ParseCtx(context.Background(), nil, code)
	require.NoError(t, err)
	return tree.RootNode(), code
}

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("swift")
	require.NoError(t, err)
	assert.Equal(t, "swift", a.Language())

	byExt, err := registry.GetProviderForFile("main.swift")
	require.NoError(t, err)
	assert.Equal(t, "swift", byExt.Language())
}

func TestInitDeclarationNamedInit(t *testing.T) {
	root, source := parse(t, "class Foo {\n init() {}\n}\n")
	adapter, err := registry.GetProvider("swift")
	require.NoError(t, err)

	result := flatten.Flatten(root, source, adapter, "t.swift", "swift", flatten.DefaultOptions())
	var found bool
	for _, n := range result.Nodes {
		if n.Type == "init_declaration" {
			found = true
			assert.Equal(t, "init", n.Name)
		}
	}
	assert.True(t, found)
}
