package lua

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("lua")
	require.NoError(t, err)
	assert.Equal(t, "lua", a.Language())

	byExt, err := registry.GetProviderForFile("init.lua")
	require.NoError(t, err)
	assert.Equal(t, "lua", byExt.Language())
}
