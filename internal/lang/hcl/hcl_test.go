package hcl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("hcl")
	require.NoError(t, err)
	assert.Equal(t, "hcl", a.Language())

	byExt, err := registry.GetProviderForFile("main.tf")
	require.NoError(t, err)
	assert.Equal(t, "hcl", byExt.Language())
}
