// Package store is a downstream persistence example: a thin gorm
// boundary that consumes ReadAST's streamed batches, kept out of the
// core module so the flattening pipeline itself never depends on a
// database.
package store

import "time"

// AstNodeRecord is one persisted flattened-AST row. Parameters and Modifiers
// are stored as comma-joined text rather than a JSON column type, to avoid
// pulling in a JSON column type for two small string-slice fields.
type AstNodeRecord struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	RunID string `gorm:"type:varchar(40);index;not null"`
	FilePath string `gorm:"type:text;index;not null"`
	Language string `gorm:"type:varchar(40);index;not null"`

	NodeID int64 `gorm:"index;not null"`
	ParentID int64 `gorm:"not null"`
	Depth uint32 `gorm:"not null"`
	SiblingIndex uint32 `gorm:"not null"`
	ChildrenCount uint32 `gorm:"not null"`
	DescendantCount uint32 `gorm:"not null"`

	Type string `gorm:"type:varchar(100);index;not null"`
	SemanticType uint8 `gorm:"index;not null"`
	SemanticName string `gorm:"type:varchar(40)"`
	Flags uint32 `gorm:"not null"`

	Name string `gorm:"type:text"`
	SignatureType string `gorm:"type:text"`
	Parameters string `gorm:"type:text"`
	Modifiers string `gorm:"type:text"`

	StartByte, EndByte uint32
	StartLine, EndLine uint32
	StartColumn, EndColumn uint32

	Peek string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName uses a lowercase-plural table name.
func (AstNodeRecord) TableName() string { return "ast_nodes" }
