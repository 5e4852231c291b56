package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"building-portal-backend/internal/database/models"
	apperrors "building-portal-backend/internal/errors"
	"building-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for building projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	TeamID      uuid.UUID            `json:"team_id" validate:"required"`
	Name        string               `json:"name" validate:"required,min=1,max=200"`
	Description string               `json:"description,omitempty"`
	ProjectType models.ProjectType   `json:"project_type,omitempty"`
	Status      models.ProjectStatus `json:"status,omitempty"`
	Address     string               `json:"address,omitempty" validate:"max=300"`
	Metadata    json.RawMessage      `json:"metadata,omitempty" swaggertype:"object"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Name        *string               `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string               `json:"description,omitempty"`
	ProjectType *models.ProjectType   `json:"project_type,omitempty"`
	Status      *models.ProjectStatus `json:"status,omitempty"`
	Address     *string               `json:"address,omitempty" validate:"omitempty,max=300"`
	Metadata    json.RawMessage       `json:"metadata,omitempty" swaggertype:"object"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID            `json:"id"`
	TeamID      uuid.UUID            `json:"team_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	ProjectType models.ProjectType   `json:"project_type"`
	Status      models.ProjectStatus `json:"status"`
	Address     string               `json:"address"`
	Metadata    json.RawMessage      `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new project
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate team exists
	_, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	// Check if project with same name exists in team
	existing, err := s.repo.GetByName(req.TeamID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing project by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProjectExists
	}

	// Set defaults
	projectType := req.ProjectType
	if projectType == "" {
		projectType = models.ProjectTypeConstruction
	}
	if !projectType.IsValid() {
		return nil, apperrors.ErrInvalidProjectType
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	project := &models.Project{
		TeamID:      req.TeamID,
		Name:        req.Name,
		Description: req.Description,
		ProjectType: projectType,
		Status:      status,
		Address:     req.Address,
		Metadata:    req.Metadata,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.toResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return s.toResponse(project), nil
}

// GetByTeam retrieves projects for a team with pagination
func (s *ProjectService) GetByTeam(teamID uuid.UUID, page, pageSize int) (*ProjectListResponse, error) {
	// Validate team exists
	_, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	projects, total, err := s.repo.GetByTeamID(teamID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *s.toResponse(&project)
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a project
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ProjectType != nil {
		if !req.ProjectType.IsValid() {
			return nil, apperrors.ErrInvalidProjectType
		}
		project.ProjectType = *req.ProjectType
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		project.Status = *req.Status
	}
	if req.Address != nil {
		project.Address = *req.Address
	}
	if req.Metadata != nil {
		project.Metadata = req.Metadata
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project), nil
}

// Delete deletes a project
func (s *ProjectService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		TeamID:      project.TeamID,
		Name:        project.Name,
		Description: project.Description,
		ProjectType: project.ProjectType,
		Status:      project.Status,
		Address:     project.Address,
		Metadata:    project.Metadata,
		CreatedAt:   project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
