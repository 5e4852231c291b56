package models

// Team represents a building-management crew that owns projects
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" gorm:"size:150" validate:"max=150"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
