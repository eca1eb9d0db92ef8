package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("kotlin")
	require.NoError(t, err)
	assert.Equal(t, "kotlin", a.Language())

	byAlias, err := registry.GetProvider("kt")
	require.NoError(t, err)
	assert.Equal(t, "kotlin", byAlias.Language())

	byExt, err := registry.GetProviderForFile("Main.kt")
	require.NoError(t, err)
	assert.Equal(t, "kotlin", byExt.Language())
}
