package models

type Dashboard struct {
	BaseModel

	UserID      string `gorm:"not null;index;type:varchar(36)"`
	Name        string `gorm:"not null"`
	Description string
	IsPublic    bool    `gorm:"default:false"`
	ShareToken  *string `gorm:"uniqueIndex"`

	// Relationships
	Owner   User     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Widgets []Widget `gorm:"foreignKey:DashboardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
