package repository

import (
	"building-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetWithProjects(id uuid.UUID) (*models.Team, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(teamID uuid.UUID, name string) (*models.Project, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
	GetWithPhases(id uuid.UUID) (*models.Project, error)
}

// PhaseRepositoryInterface defines the interface for project phase repository operations
type PhaseRepositoryInterface interface {
	Create(phase *models.ProjectPhase) error
	CreateBatch(phases []*models.ProjectPhase) error
	GetByID(id uuid.UUID) (*models.ProjectPhase, error)
	GetByProjectID(projectID uuid.UUID) ([]models.ProjectPhase, error)
	CountByProjectID(projectID uuid.UUID) (int64, error)
	Update(phase *models.ProjectPhase) error
	Delete(id uuid.UUID) error
}
