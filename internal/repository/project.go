package repository

import (
	"building-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for building projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByName retrieves a project by name within a team
func (r *ProjectRepository) GetByName(teamID uuid.UUID, name string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "team_id = ? AND name = ?", teamID, name).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByTeamID retrieves all projects for a team with pagination
func (r *ProjectRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// GetWithPhases retrieves a project with its phases in creation order
func (r *ProjectRepository) GetWithPhases(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Phases", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}
