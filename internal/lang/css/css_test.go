package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("css")
	require.NoError(t, err)
	assert.Equal(t, "css", a.Language())

	byExt, err := registry.GetProviderForFile("style.css")
	require.NoError(t, err)
	assert.Equal(t, "css", byExt.Language())
}
