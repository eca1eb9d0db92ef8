package ocaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("ocaml")
	require.NoError(t, err)
	assert.Equal(t, "ocaml", a.Language())

	byExt, err := registry.GetProviderForFile("main.ml")
	require.NoError(t, err)
	assert.Equal(t, "ocaml", byExt.Language())
}
