package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/parsekit/flattenast/core"
	"github.com/parsekit/flattenast/internal/flatten"
)

// Ingest converts one RowBatch's flattened nodes into AstNodeRecords
// tagged with runID and bulk-inserts them. Batches are inserted as they
// arrive so a caller ranging over ReadAST's channel can stream straight
// into the database without buffering a whole run in memory.
func Ingest(db *gorm.DB, runID string, nodes []flatten.Node) error {
	if len(nodes) == 0 {
		return nil
	}
	records := make([]AstNodeRecord, len(nodes))
	for i, n := range nodes {
		records[i] = toRecord(runID, n)
	}
	return db.Create(&records).Error
}

func toRecord(runID string, n flatten.Node) AstNodeRecord {
	return AstNodeRecord{
		RunID: runID,
		FilePath: n.FilePath,
		Language: n.Language,

		NodeID: n.NodeID,
		ParentID: n.ParentID,
		Depth: n.Depth,
		SiblingIndex: n.SiblingIndex,
		ChildrenCount: n.ChildrenCount,
		DescendantCount: n.DescendantCount,

		Type: n.Type,
		SemanticType: uint8(n.SemanticType),
		SemanticName: core.TypeName(n.SemanticType),
		Flags: uint32(n.Flags),

		Name: n.Name,
		SignatureType: n.SignatureType,
		Parameters: strings.Join(n.Parameters, ","),
		Modifiers: strings.Join(n.Modifiers, ","),

		StartByte: n.StartByte, EndByte: n.EndByte,
		StartLine: n.StartLine, EndLine: n.EndLine,
		StartColumn: n.StartColumn, EndColumn: n.EndColumn,

		Peek: n.Peek,
	}
}
