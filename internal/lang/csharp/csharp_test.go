package csharp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("csharp")
	require.NoError(t, err)
	assert.Equal(t, "csharp", a.Language())

	byAlias, err := registry.GetProvider("cs")
	require.NoError(t, err)
	assert.Equal(t, "csharp", byAlias.Language())

	byExt, err := registry.GetProviderForFile("Program.cs")
	require.NoError(t, err)
	assert.Equal(t, "csharp", byExt.Language())
}
