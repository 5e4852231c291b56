package models

import (
	"time"

	"github.com/google/uuid"
)

// PhaseStatus represents the status of a project phase
type PhaseStatus string

const (
	PhaseStatusNotStarted PhaseStatus = "not_started"
	PhaseStatusInProgress PhaseStatus = "in_progress"
	PhaseStatusCompleted  PhaseStatus = "completed"
	PhaseStatusDelayed    PhaseStatus = "delayed"
)

// IsValid checks if the PhaseStatus is valid
func (s PhaseStatus) IsValid() bool {
	switch s {
	case PhaseStatusNotStarted, PhaseStatusInProgress, PhaseStatusCompleted, PhaseStatusDelayed:
		return true
	}
	return false
}

// ProjectPhase represents a named unit of project work over a calendar-day
// interval. Start and end dates are date-only; the time component is always
// midnight UTC.
type ProjectPhase struct {
	BaseModel
	ProjectID   uuid.UUID   `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID      uuid.UUID   `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	PhaseName   string      `json:"phase_name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	StartDate   time.Time   `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate     time.Time   `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Status      PhaseStatus `json:"status" gorm:"type:varchar(50);default:'not_started'" validate:"required"`
	Color       string      `json:"color" gorm:"size:30"`
	Description string      `json:"description" gorm:"type:text"`
	OrderIndex  int         `json:"order_index" gorm:"default:0"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectPhase
func (ProjectPhase) TableName() string {
	return "project_plan_phases"
}
