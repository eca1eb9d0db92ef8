package svelte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("svelte")
	require.NoError(t, err)
	assert.Equal(t, "svelte", a.Language())

	byExt, err := registry.GetProviderForFile("App.svelte")
	require.NoError(t, err)
	assert.Equal(t, "svelte", byExt.Language())
}
