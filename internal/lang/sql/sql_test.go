package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/internal/registry"
)

func TestRegisteredInDefaultRegistry(t *testing.T) {
	a, err := registry.GetProvider("sql")
	require.NoError(t, err)
	assert.Equal(t, "sql", a.Language())

	byExt, err := registry.GetProviderForFile("schema.sql")
	require.NoError(t, err)
	assert.Equal(t, "sql", byExt.Language())
}
