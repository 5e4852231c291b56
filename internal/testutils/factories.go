package testutils

import (
	"time"

	"building-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix avoids the name index when suites share a container
		Name:        "crew-" + id.String()[:8],
		DisplayName: "Test Crew",
		Description: "A building crew for testing purposes",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	team.DisplayName = name
	return team
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create(teamID uuid.UUID) *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      teamID,
		Name:        "Riverside Apartments",
		Description: "Six-story residential build",
		ProjectType: models.ProjectTypeConstruction,
		Status:      models.ProjectStatusActive,
		Address:     "12 Riverside Drive",
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(teamID uuid.UUID, name string) *models.Project {
	project := f.Create(teamID)
	project.Name = name
	return project
}

// PhaseFactory provides methods to create test ProjectPhase data
type PhaseFactory struct{}

// NewPhaseFactory creates a new PhaseFactory
func NewPhaseFactory() *PhaseFactory {
	return &PhaseFactory{}
}

// Create creates a test ProjectPhase with default values
func (f *PhaseFactory) Create(projectID, teamID uuid.UUID) *models.ProjectPhase {
	return &models.ProjectPhase{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:   projectID,
		TeamID:      teamID,
		PhaseName:   "Foundation Work",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:      models.PhaseStatusNotStarted,
		Description: "Excavation and concrete pour",
		OrderIndex:  0,
	}
}

// WithDates sets custom dates for the phase
func (f *PhaseFactory) WithDates(projectID, teamID uuid.UUID, start, end time.Time) *models.ProjectPhase {
	phase := f.Create(projectID, teamID)
	phase.StartDate = start
	phase.EndDate = end
	return phase
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team    *TeamFactory
	Project *ProjectFactory
	Phase   *PhaseFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:    NewTeamFactory(),
		Project: NewProjectFactory(),
		Phase:   NewPhaseFactory(),
	}
}
