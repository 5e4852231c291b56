package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ProjectStatus represents the status of a building project
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
)

// ProjectType represents the type of a building project
type ProjectType string

const (
	ProjectTypeConstruction ProjectType = "construction"
	ProjectTypeRenovation   ProjectType = "renovation"
	ProjectTypeInspection   ProjectType = "inspection"
	ProjectTypeMaintenance  ProjectType = "maintenance"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusArchived:
		return true
	}
	return false
}

// IsValid checks if the ProjectType is valid
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeConstruction, ProjectTypeRenovation, ProjectTypeInspection, ProjectTypeMaintenance:
		return true
	}
	return false
}

// Project represents a building project owned by a team
type Project struct {
	BaseModel
	TeamID      uuid.UUID       `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string          `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string          `json:"description" gorm:"type:text"`
	ProjectType ProjectType     `json:"project_type" gorm:"type:varchar(50);default:'construction'" validate:"required"`
	Status      ProjectStatus   `json:"status" gorm:"type:varchar(50);default:'active'" validate:"required"`
	Address     string          `json:"address" gorm:"size:300" validate:"max=300"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Team   Team           `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Phases []ProjectPhase `json:"phases,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
