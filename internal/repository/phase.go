package repository

import (
	"building-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhaseRepository handles database operations for project phases
type PhaseRepository struct {
	db *gorm.DB
}

// NewPhaseRepository creates a new phase repository
func NewPhaseRepository(db *gorm.DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// Create creates a new phase
func (r *PhaseRepository) Create(phase *models.ProjectPhase) error {
	return r.db.Create(phase).Error
}

// CreateBatch creates a set of phases in a single transaction. Either every
// phase is persisted or none are.
func (r *PhaseRepository) CreateBatch(phases []*models.ProjectPhase) error {
	if len(phases) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, phase := range phases {
			if err := tx.Create(phase).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a phase by ID
func (r *PhaseRepository) GetByID(id uuid.UUID) (*models.ProjectPhase, error) {
	var phase models.ProjectPhase
	err := r.db.First(&phase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &phase, nil
}

// GetByProjectID retrieves all phases for a project in creation order
func (r *PhaseRepository) GetByProjectID(projectID uuid.UUID) ([]models.ProjectPhase, error) {
	var phases []models.ProjectPhase
	err := r.db.Where("project_id = ?", projectID).Order("order_index ASC").Find(&phases).Error
	if err != nil {
		return nil, err
	}
	return phases, nil
}

// CountByProjectID returns the number of phases in a project
func (r *PhaseRepository) CountByProjectID(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectPhase{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// Update updates a phase
func (r *PhaseRepository) Update(phase *models.ProjectPhase) error {
	return r.db.Save(phase).Error
}

// Delete deletes a phase. Deleting a phase that does not exist is not an
// error; gorm reports zero rows affected and we treat that as success.
func (r *PhaseRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectPhase{}, "id = ?", id).Error
}
