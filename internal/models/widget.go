package models

import (
	"gorm.io/datatypes"
)

// Widget types recognized by the renderer: "kpi", "line", "bar", "pie",
// "table", "progress". Unrecognized values are stored as-is and rendered
// as a placeholder.
type Widget struct {
	BaseModel

	DashboardID string         `gorm:"not null;index;type:varchar(36)"`
	Type        string         `gorm:"not null"`
	Title       string         `gorm:"not null"`
	Config      datatypes.JSON `gorm:"type:jsonb"`
	DataConfig  datatypes.JSON `gorm:"type:jsonb"`
	Position    datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Dashboard Dashboard `gorm:"foreignKey:DashboardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
