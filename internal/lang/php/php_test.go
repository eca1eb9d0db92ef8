package php

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	phpsit "github.com/smacker/go-tree-sitter/php"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/flatten"
	"github.com/parsekit/flattenast/internal/registry"
)

func parse(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(phpsit.GetLanguage())
	code := []byte(source)
	tree, err := parser.ParseCtx(context.Background(), nil, code)
	require.NoError(t, err)
	return tree.RootNode(), code
}

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("php")
	require.NoError(t, err)
	assert.Equal(t, "php", a.Language())

	byExt, err := registry.GetProviderForFile("index.php")
	require.NoError(t, err)
	assert.Equal(t, "php", byExt.Language())
}

func TestSimpleParameterDollarPrefixedName(t *testing.T) {
	root, source := parse(t, "<?php\nfunction add($a, $b) { return $a + $b; }\n")
	adapter, err := registry.GetProvider("php")
	require.NoError(t, err)

	result := flatten.Flatten(root, source, adapter, "t.php", "php", flatten.DefaultOptions())
	var found int
	for _, n := range result.Nodes {
		if n.Type == "simple_parameter" {
			found++
			assert.Contains(t, []string{"$a", "$b"}, n.Name)
		}
	}
	assert.Equal(t, 2, found)
}

func TestMemberCallEmptyNameDottedSignature(t *testing.T) {
	root, source := parse(t, "<?php\n$obj->method();\n")
	adapter, err := registry.GetProvider("php")
	require.NoError(t, err)

	result := flatten.Flatten(root, source, adapter, "t.php", "php", flatten.DefaultOptions())
	for _, n := range result.Nodes {
		if n.Type == "member_call_expression" {
			assert.Equal(t, "", n.Name)
			assert.Equal(t, "$obj->method", n.SignatureType)
		}
	}
}
