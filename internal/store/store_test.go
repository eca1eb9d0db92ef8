package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/flatten"
)

func TestConnectMemoryRunsMigration(t *testing.T) {
	db, err := Connect(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.True(t, db.Migrator().HasTable(&AstNodeRecord{}))
}

func TestIsURLDetectsRemoteDSNs(t *testing.T) {
	assert.True(t, isURL("libsql://example.turso.io"))
	assert.True(t, isURL("https://example.com/db"))
	assert.False(t, isURL(":memory:"))
	assert.False(t, isURL("/tmp/ast.db"))
}

func TestIngestPersistsFlattenedNodes(t *testing.T) {
	db, err := Connect(":memory:", false)
	require.NoError(t, err)

	nodes := []flatten.Node{
		{
			NodeID: 0, ParentID: -1,
			Type: "function_declaration", SemanticType: core.DefinitionFunction,
			Name: "hello", FilePath: "a.go", Language: "go",
		},
		{
			NodeID: 1, ParentID: 0,
			Type: "identifier", SemanticType: core.NameIdentifier,
			Name: "hello", FilePath: "a.go", Language: "go",
		},
	}

	require.NoError(t, Ingest(db, "run-1", nodes))

	var count int64
	require.NoError(t, db.Model(&AstNodeRecord{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var rec AstNodeRecord
	require.NoError(t, db.Where("name = ?", "hello").Where("type = ?", "function_declaration").First(&rec).Error)
	assert.Equal(t, "run-1", rec.RunID)
	assert.Equal(t, "DEFINITION_FUNCTION", rec.SemanticName)
}

func TestIngestEmptyIsNoop(t *testing.T) {
	db, err := Connect(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, Ingest(db, "run-1", nil))
}
