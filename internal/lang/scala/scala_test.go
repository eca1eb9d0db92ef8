package scala

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("scala")
	require.NoError(t, err)
	assert.Equal(t, "scala", a.Language())

	byExt, err := registry.GetProviderForFile("Main.scala")
	require.NoError(t, err)
	assert.Equal(t, "scala", byExt.Language())
}
