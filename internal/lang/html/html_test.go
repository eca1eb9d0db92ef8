package html

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	htmlsit "github.com/smacker/go-tree-sitter/html"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/flatten"
	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("html")
	require.NoError(t, err)
	assert.Equal(t, "html", a.Language())

	byExt, err := registry.GetProviderForFile("index.html")
	require.NoError(t, err)
	assert.Equal(t, "html", byExt.Language())
}

func TestElementTagName(t *testing.T) {
	parser := sitter.NewParser()
	parser.SetLanguage(htmlsit.GetLanguage())
	code := []byte("<div class=\"x\"></div>")
	tree, err := parser.ParseCtx(context.Background(), nil, code)
	require.NoError(t, err)

	adapter, err := registry.GetProvider("html")
	require.NoError(t, err)
	result := flatten.Flatten(tree.RootNode(), code, adapter, "t.html", "html", flatten.DefaultOptions())

	var found bool
	for _, n := range result.Nodes {
		if n.Type == "element" {
			found = true
			assert.Equal(t, "div", n.Name)
		}
	}
	assert.True(t, found)
}
