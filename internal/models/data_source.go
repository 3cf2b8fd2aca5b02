package models

import (
	"gorm.io/datatypes"
)

// DataSource holds an immutable tabular dataset: Rows is a JSON array of
// objects keyed by column name, Columns the ordered schema inferred (or
// declared, for demo data) at creation time.
type DataSource struct {
	BaseModel

	UserID  string         `gorm:"not null;index;type:varchar(36)"`
	Name    string         `gorm:"not null"`
	Type    string         `gorm:"not null"` // "csv" or "demo"
	Columns datatypes.JSON `gorm:"type:jsonb"`
	Rows    datatypes.JSON `gorm:"type:jsonb"`
	Config  datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Owner User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
