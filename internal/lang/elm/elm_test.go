package elm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("elm")
	require.NoError(t, err)
	assert.Equal(t, "elm", a.Language())

	byExt, err := registry.GetProviderForFile("Main.elm")
	require.NoError(t, err)
	assert.Equal(t, "elm", byExt.Language())
}
