package elixir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("elixir")
	require.NoError(t, err)
	assert.Equal(t, "elixir", a.Language())

	byExt, err := registry.GetProviderForFile("app.ex")
	require.NoError(t, err)
	assert.Equal(t, "elixir", byExt.Language())
}
