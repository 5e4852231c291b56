package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetAll(page, pageSize int) (*TeamListResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	GetByTeam(teamID uuid.UUID, page, pageSize int) (*ProjectListResponse, error)
	Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	Delete(id uuid.UUID) error
}

// PhaseServiceInterface defines the interface for the project plan service
type PhaseServiceInterface interface {
	Create(projectID uuid.UUID, req *CreatePhaseRequest) (*PhaseResponse, error)
	Update(phaseID uuid.UUID, req *UpdatePhaseRequest) (*PhaseResponse, error)
	Delete(phaseID uuid.UUID) error
	ListByProject(projectID uuid.UUID) ([]PhaseResponse, error)
	Timeline(projectID uuid.UUID) (*TimelineResponse, error)
	GenerateFromPlan(ctx context.Context, projectID uuid.UUID, req *GeneratePlanRequest) ([]PhaseResponse, error)
	ApplyTemplate(projectID uuid.UUID, templateName string) ([]PhaseResponse, error)
}
