package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"building-portal-backend/internal/database/models"
	apperrors "building-portal-backend/internal/errors"
	"building-portal-backend/internal/logger"
	"building-portal-backend/internal/repository"
	"building-portal-backend/internal/timeline"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dateLayout is the wire format for phase dates. Phases are calendar-day
// granular; no time-of-day ever crosses the API boundary.
const dateLayout = "2006-01-02"

// PhaseService handles the project plan: phase CRUD, timeline computation,
// and plan generation via the external AI collaborator
type PhaseService struct {
	repo        repository.PhaseRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	planner     PlanGenerator
	templates   *TemplateLibrary
	validator   *validator.Validate
}

// NewPhaseService creates a new phase service
func NewPhaseService(
	repo repository.PhaseRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	planner PlanGenerator,
	templates *TemplateLibrary,
	validator *validator.Validate,
) *PhaseService {
	return &PhaseService{
		repo:        repo,
		projectRepo: projectRepo,
		planner:     planner,
		templates:   templates,
		validator:   validator,
	}
}

// CreatePhaseRequest represents the request to create a phase
type CreatePhaseRequest struct {
	PhaseName   string             `json:"phase_name" validate:"required,min=1,max=200"`
	StartDate   string             `json:"start_date" validate:"required"`
	EndDate     string             `json:"end_date" validate:"required"`
	Status      models.PhaseStatus `json:"status,omitempty"`
	Color       string             `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Description string             `json:"description,omitempty"`
}

// UpdatePhaseRequest represents the request to update a phase
type UpdatePhaseRequest struct {
	PhaseName   *string             `json:"phase_name,omitempty" validate:"omitempty,min=1,max=200"`
	StartDate   *string             `json:"start_date,omitempty"`
	EndDate     *string             `json:"end_date,omitempty"`
	Status      *models.PhaseStatus `json:"status,omitempty"`
	Color       *string             `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Description *string             `json:"description,omitempty"`
}

// GeneratePlanRequest represents the request to generate a project plan
type GeneratePlanRequest struct {
	ProjectName        string `json:"project_name" validate:"required,min=1,max=200"`
	ProjectDescription string `json:"project_description,omitempty"`
	ProjectType        string `json:"project_type,omitempty"`
}

// PhaseResponse represents the response for phase operations
type PhaseResponse struct {
	ID          uuid.UUID          `json:"id"`
	ProjectID   uuid.UUID          `json:"project_id"`
	TeamID      uuid.UUID          `json:"team_id"`
	PhaseName   string             `json:"phase_name"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Status      models.PhaseStatus `json:"status"`
	Color       string             `json:"color"`
	Description string             `json:"description"`
	OrderIndex  int                `json:"order_index"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// PositionedPhaseResponse is a phase with its computed timeline position
type PositionedPhaseResponse struct {
	PhaseResponse
	StartOffsetDays int     `json:"start_offset_days"`
	DurationDays    int     `json:"duration_days"`
	LeftFraction    float64 `json:"left_fraction"`
	WidthFraction   float64 `json:"width_fraction"`
	DisplayColor    string  `json:"display_color"`
}

// TimelineResponse carries the computed project window and positioned
// phases, enough for a client to draw the timeline without any date math.
// Empty is true when the project has no valid phases; that is a normal
// state, not an error.
type TimelineResponse struct {
	ProjectID uuid.UUID                 `json:"project_id"`
	Empty     bool                      `json:"empty"`
	Bounds    *timeline.Bounds          `json:"bounds,omitempty"`
	Phases    []PositionedPhaseResponse `json:"phases"`
}

// Create creates a new phase for a project
func (s *PhaseService) Create(projectID uuid.UUID, req *CreatePhaseRequest) (*PhaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.PhaseStatusNotStarted
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown phase status")
	}

	// New phases append to the plan in creation order
	count, err := s.repo.CountByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count phases: %w", err)
	}

	phase := &models.ProjectPhase{
		ProjectID:   projectID,
		TeamID:      project.TeamID,
		PhaseName:   req.PhaseName,
		StartDate:   start,
		EndDate:     end,
		Status:      status,
		Color:       req.Color,
		Description: req.Description,
		OrderIndex:  int(count),
	}

	if err := s.repo.Create(phase); err != nil {
		return nil, fmt.Errorf("failed to create phase: %w", err)
	}

	return s.toResponse(phase), nil
}

// Update applies a partial update to a phase, re-validating the merged
// record. Concurrent updates resolve last-write-wins on updated_at.
func (s *PhaseService) Update(phaseID uuid.UUID, req *UpdatePhaseRequest) (*PhaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	phase, err := s.repo.GetByID(phaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhaseNotFound
		}
		return nil, fmt.Errorf("failed to get phase: %w", err)
	}

	if req.PhaseName != nil {
		phase.PhaseName = *req.PhaseName
	}
	if req.StartDate != nil {
		start, err := parseDate("start_date", *req.StartDate)
		if err != nil {
			return nil, err
		}
		phase.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		phase.EndDate = end
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown phase status")
		}
		phase.Status = *req.Status
	}
	if req.Color != nil {
		phase.Color = *req.Color
	}
	if req.Description != nil {
		phase.Description = *req.Description
	}

	// The merged record must still satisfy the date invariant
	if phase.StartDate.After(phase.EndDate) {
		return nil, apperrors.NewValidationError("start_date", "must be on or before end_date")
	}

	if err := s.repo.Update(phase); err != nil {
		return nil, fmt.Errorf("failed to update phase: %w", err)
	}

	return s.toResponse(phase), nil
}

// Delete removes a phase. Deletion is idempotent: a phase that is already
// absent counts as success.
func (s *PhaseService) Delete(phaseID uuid.UUID) error {
	if err := s.repo.Delete(phaseID); err != nil {
		return fmt.Errorf("failed to delete phase: %w", err)
	}
	return nil
}

// ListByProject returns all phases of a project in creation order. An empty
// project yields an empty list.
func (s *PhaseService) ListByProject(projectID uuid.UUID) ([]PhaseResponse, error) {
	_, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	phases, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}

	responses := make([]PhaseResponse, len(phases))
	for i, phase := range phases {
		responses[i] = *s.toResponse(&phase)
	}
	return responses, nil
}

// Timeline computes the positioned timeline for a project. The layout is
// always recomputed fresh from the current phase set.
func (s *PhaseService) Timeline(projectID uuid.UUID) (*TimelineResponse, error) {
	_, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	phases, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}

	positioned, bounds, ok := timeline.Build(phases)
	if !ok {
		return &TimelineResponse{
			ProjectID: projectID,
			Empty:     true,
			Phases:    []PositionedPhaseResponse{},
		}, nil
	}

	responses := make([]PositionedPhaseResponse, len(positioned))
	for i, p := range positioned {
		responses[i] = PositionedPhaseResponse{
			PhaseResponse:   *s.toResponse(&p.Phase),
			StartOffsetDays: p.StartOffsetDays,
			DurationDays:    p.DurationDays,
			LeftFraction:    p.Left,
			WidthFraction:   p.Width,
			DisplayColor:    p.Color,
		}
	}

	return &TimelineResponse{
		ProjectID: projectID,
		Bounds:    &bounds,
		Phases:    responses,
	}, nil
}

// GenerateFromPlan asks the AI collaborator for a plan and persists the
// resulting phases as one batch. A failed or cancelled generation creates
// nothing.
func (s *PhaseService) GenerateFromPlan(ctx context.Context, projectID uuid.UUID, req *GeneratePlanRequest) ([]PhaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if s.planner == nil {
		return nil, apperrors.ErrPlannerNotConfigured
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	planned, err := s.planner.GeneratePlan(ctx, PlanRequest{
		ProjectName:        req.ProjectName,
		ProjectDescription: req.ProjectDescription,
		ProjectType:        req.ProjectType,
	})
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}
	if len(planned) == 0 {
		return nil, apperrors.ErrEmptyPlan
	}

	count, err := s.repo.CountByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count phases: %w", err)
	}

	phases := schedulePhases(planned, project.ID, project.TeamID, int(count), today())
	if err := s.repo.CreateBatch(phases); err != nil {
		return nil, fmt.Errorf("failed to persist generated plan: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"project_id": projectID,
		"phases":     len(phases),
	}).Info("Generated project plan persisted")

	responses := make([]PhaseResponse, len(phases))
	for i, phase := range phases {
		responses[i] = *s.toResponse(phase)
	}
	return responses, nil
}

// ApplyTemplate persists a named plan template from the template library,
// the manual fallback when AI generation fails or is unavailable.
func (s *PhaseService) ApplyTemplate(projectID uuid.UUID, templateName string) ([]PhaseResponse, error) {
	if s.templates == nil {
		return nil, apperrors.ErrTemplateNotFound
	}
	planned, ok := s.templates.Get(templateName)
	if !ok {
		return nil, apperrors.ErrTemplateNotFound
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	count, err := s.repo.CountByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count phases: %w", err)
	}

	phases := schedulePhases(planned, project.ID, project.TeamID, int(count), today())
	if err := s.repo.CreateBatch(phases); err != nil {
		return nil, fmt.Errorf("failed to persist template plan: %w", err)
	}

	responses := make([]PhaseResponse, len(phases))
	for i, phase := range phases {
		responses[i] = *s.toResponse(phase)
	}
	return responses, nil
}

// schedulePhases lays planned phases end to end starting at start, with a
// one-day buffer between consecutive phases. OrderIndex continues from
// startIndex so generated phases append after any existing ones.
func schedulePhases(planned []PlannedPhase, projectID, teamID uuid.UUID, startIndex int, start time.Time) []*models.ProjectPhase {
	phases := make([]*models.ProjectPhase, 0, len(planned))
	current := start
	for i, p := range planned {
		duration := p.DurationDays
		if duration < 1 {
			duration = 1
		}
		end := current.AddDate(0, 0, duration-1)

		phases = append(phases, &models.ProjectPhase{
			ProjectID:   projectID,
			TeamID:      teamID,
			PhaseName:   p.PhaseName,
			StartDate:   current,
			EndDate:     end,
			Status:      models.PhaseStatusNotStarted,
			Color:       planColor(i),
			Description: p.Description,
			OrderIndex:  startIndex + i,
		})

		current = end.AddDate(0, 0, 2)
	}
	return phases
}

// planColor rotates hues so consecutive generated phases are visually distinct
func planColor(index int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 50%%)", (index*60)%360)
}

// today returns the current date pinned to midnight UTC
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a valid date in YYYY-MM-DD format")
	}
	return t, nil
}

func parseDateRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := parseDate("start_date", startValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate("end_date", endValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("start_date", "must be on or before end_date")
	}
	return start, end, nil
}

// toResponse converts a phase model to response
func (s *PhaseService) toResponse(phase *models.ProjectPhase) *PhaseResponse {
	return &PhaseResponse{
		ID:          phase.ID,
		ProjectID:   phase.ProjectID,
		TeamID:      phase.TeamID,
		PhaseName:   phase.PhaseName,
		StartDate:   phase.StartDate.Format(dateLayout),
		EndDate:     phase.EndDate.Format(dateLayout),
		Status:      phase.Status,
		Color:       phase.Color,
		Description: phase.Description,
		OrderIndex:  phase.OrderIndex,
		CreatedAt:   phase.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   phase.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
