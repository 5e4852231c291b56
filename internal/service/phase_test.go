package service_test

import (
	"context"
	"testing"
	"time"

	"building-portal-backend/internal/database/models"
	apperrors "building-portal-backend/internal/errors"
	"building-portal-backend/internal/mocks"
	"building-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// stubPlanner is a service.PlanGenerator with canned output for service tests
type stubPlanner struct {
	phases []service.PlannedPhase
	err    error
}

func (s *stubPlanner) GeneratePlan(_ context.Context, _ service.PlanRequest) ([]service.PlannedPhase, error) {
	return s.phases, s.err
}

// PhaseServiceTestSuite tests the service.PhaseService against mocked repositories
type PhaseServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *mocks.MockPhaseRepositoryInterface
	projectRepo *mocks.MockProjectRepositoryInterface

	project *models.Project
}

func (suite *PhaseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockPhaseRepositoryInterface(suite.ctrl)
	suite.projectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)

	suite.project = &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    uuid.New(),
		Name:      "Riverside Apartments",
	}
}

func (suite *PhaseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PhaseServiceTestSuite) newService(planner service.PlanGenerator, templates *service.TemplateLibrary) *service.PhaseService {
	return service.NewPhaseService(suite.repo, suite.projectRepo, planner, templates, validator.New())
}

// TestCreate tests creating a valid phase
func (suite *PhaseServiceTestSuite) TestCreate() {
	svc := suite.newService(nil, nil)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)
	suite.repo.EXPECT().CountByProjectID(suite.project.ID).Return(int64(2), nil)
	suite.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(phase *models.ProjectPhase) error {
		phase.ID = uuid.New()
		return nil
	})

	resp, err := svc.Create(suite.project.ID, &service.CreatePhaseRequest{
		PhaseName: "Foundation Work",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
	})

	suite.NoError(err)
	suite.Equal("Foundation Work", resp.PhaseName)
	suite.Equal("2024-01-01", resp.StartDate)
	suite.Equal("2024-01-10", resp.EndDate)
	suite.Equal(models.PhaseStatusNotStarted, resp.Status)
	suite.Equal(2, resp.OrderIndex)
	suite.Equal(suite.project.TeamID, resp.TeamID)
}

// TestCreateStartAfterEnd tests that an inverted date range is rejected
// before anything reaches the repository
func (suite *PhaseServiceTestSuite) TestCreateStartAfterEnd() {
	svc := suite.newService(nil, nil)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)

	_, err := svc.Create(suite.project.ID, &service.CreatePhaseRequest{
		PhaseName: "Inspection",
		StartDate: "2024-02-10",
		EndDate:   "2024-02-01",
	})

	suite.True(apperrors.IsValidation(err))
}

// TestCreateUnparsableDate tests that a malformed date is a validation error
func (suite *PhaseServiceTestSuite) TestCreateUnparsableDate() {
	svc := suite.newService(nil, nil)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)

	_, err := svc.Create(suite.project.ID, &service.CreatePhaseRequest{
		PhaseName: "Inspection",
		StartDate: "not-a-date",
		EndDate:   "2024-02-01",
	})

	suite.True(apperrors.IsValidation(err))
}

// TestCreateEmptyName tests that a missing phase name is a validation error
func (suite *PhaseServiceTestSuite) TestCreateEmptyName() {
	svc := suite.newService(nil, nil)

	_, err := svc.Create(suite.project.ID, &service.CreatePhaseRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
	})

	suite.True(apperrors.IsValidation(err))
}

// TestCreateProjectNotFound tests phase creation against a missing project
func (suite *PhaseServiceTestSuite) TestCreateProjectNotFound() {
	svc := suite.newService(nil, nil)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(suite.project.ID, &service.CreatePhaseRequest{
		PhaseName: "Foundation Work",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
	})

	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

// TestUpdateMergeRevalidates tests that a partial update re-checks the
// merged record's date ordering
func (suite *PhaseServiceTestSuite) TestUpdateMergeRevalidates() {
	svc := suite.newService(nil, nil)
	phaseID := uuid.New()
	existing := &models.ProjectPhase{
		BaseModel: models.BaseModel{ID: phaseID},
		PhaseName: "Framing",
		StartDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Status:    models.PhaseStatusInProgress,
	}

	suite.repo.EXPECT().GetByID(phaseID).Return(existing, nil)

	end := "2024-01-02"
	_, err := svc.Update(phaseID, &service.UpdatePhaseRequest{EndDate: &end})

	suite.True(apperrors.IsValidation(err))
}

// TestUpdate tests a successful partial update
func (suite *PhaseServiceTestSuite) TestUpdate() {
	svc := suite.newService(nil, nil)
	phaseID := uuid.New()
	existing := &models.ProjectPhase{
		BaseModel: models.BaseModel{ID: phaseID},
		PhaseName: "Framing",
		StartDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Status:    models.PhaseStatusNotStarted,
	}

	suite.repo.EXPECT().GetByID(phaseID).Return(existing, nil)
	suite.repo.EXPECT().Update(gomock.Any()).Return(nil)

	status := models.PhaseStatusCompleted
	end := "2024-01-25"
	resp, err := svc.Update(phaseID, &service.UpdatePhaseRequest{Status: &status, EndDate: &end})

	suite.NoError(err)
	suite.Equal(models.PhaseStatusCompleted, resp.Status)
	suite.Equal("2024-01-25", resp.EndDate)
	suite.Equal("Framing", resp.PhaseName)
}

// TestUpdateInvalidStatus tests that an unknown status is rejected
func (suite *PhaseServiceTestSuite) TestUpdateInvalidStatus() {
	svc := suite.newService(nil, nil)
	phaseID := uuid.New()
	existing := &models.ProjectPhase{
		BaseModel: models.BaseModel{ID: phaseID},
		PhaseName: "Framing",
		StartDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	}

	suite.repo.EXPECT().GetByID(phaseID).Return(existing, nil)

	status := models.PhaseStatus("paused")
	_, err := svc.Update(phaseID, &service.UpdatePhaseRequest{Status: &status})

	suite.True(apperrors.IsValidation(err))
}

// TestDeleteIdempotent tests that deleting an absent phase still succeeds
func (suite *PhaseServiceTestSuite) TestDeleteIdempotent() {
	svc := suite.newService(nil, nil)
	phaseID := uuid.New()

	suite.repo.EXPECT().Delete(phaseID).Return(nil)

	suite.NoError(svc.Delete(phaseID))
}

// TestTimeline tests the positioned timeline for overlapping phases
func (suite *PhaseServiceTestSuite) TestTimeline() {
	svc := suite.newService(nil, nil)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)
	suite.repo.EXPECT().GetByProjectID(suite.project.ID).Return([]models.ProjectPhase{
		{
			PhaseName: "Phase A",
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Status:    models.PhaseStatusCompleted,
		},
		{
			PhaseName: "Phase B",
			StartDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Status:    models.PhaseStatusInProgress,
		},
	}, nil)

	resp, err := svc.Timeline(suite.project.ID)

	suite.NoError(err)
	suite.False(resp.Empty)
	suite.Equal(20, resp.Bounds.TotalDays)
	suite.Len(resp.Phases, 2)

	a, b := resp.Phases[0], resp.Phases[1]
	suite.Equal(0, a.StartOffsetDays)
	suite.Equal(10, a.DurationDays)
	suite.InDelta(0.0, a.LeftFraction, 1e-9)
	suite.InDelta(0.5, a.WidthFraction, 1e-9)
	suite.Equal("#22c55e", a.DisplayColor)

	suite.Equal(4, b.StartOffsetDays)
	suite.Equal(16, b.DurationDays)
	suite.InDelta(0.2, b.LeftFraction, 1e-9)
	suite.InDelta(0.8, b.WidthFraction, 1e-9)
	suite.Equal("#3b82f6", b.DisplayColor)
}

// TestTimelineEmpty tests that a project with no phases has no timeline
func (suite *PhaseServiceTestSuite) TestTimelineEmpty() {
	svc := suite.newService(nil, nil)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)
	suite.repo.EXPECT().GetByProjectID(suite.project.ID).Return([]models.ProjectPhase{}, nil)

	resp, err := svc.Timeline(suite.project.ID)

	suite.NoError(err)
	suite.True(resp.Empty)
	suite.Nil(resp.Bounds)
	suite.Empty(resp.Phases)
}

// TestGenerateFromPlan tests scheduling and persistence of a generated plan
func (suite *PhaseServiceTestSuite) TestGenerateFromPlan() {
	planner := &stubPlanner{phases: []service.PlannedPhase{
		{PhaseName: "Planning & Design", DurationDays: 14, Description: "Finalize drawings"},
		{PhaseName: "Permits", DurationDays: 21},
		{PhaseName: "Site Preparation", DurationDays: 7},
	}}
	svc := suite.newService(planner, nil)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)
	suite.repo.EXPECT().CountByProjectID(suite.project.ID).Return(int64(0), nil)

	var persisted []*models.ProjectPhase
	suite.repo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(phases []*models.ProjectPhase) error {
		persisted = phases
		return nil
	})

	resp, err := svc.GenerateFromPlan(context.Background(), suite.project.ID, &service.GeneratePlanRequest{
		ProjectName: "Riverside Apartments",
	})

	suite.NoError(err)
	suite.Len(resp, 3)
	suite.Len(persisted, 3)

	// Phases are laid end to end with a one-day buffer
	for i := 1; i < len(persisted); i++ {
		gap := persisted[i].StartDate.Sub(persisted[i-1].EndDate)
		suite.Equal(48*time.Hour, gap)
	}
	for i, phase := range persisted {
		suite.Equal(i, phase.OrderIndex)
		suite.Equal(models.PhaseStatusNotStarted, phase.Status)
		suite.Equal(suite.project.TeamID, phase.TeamID)
		suite.False(phase.StartDate.After(phase.EndDate))
	}
	suite.Equal("hsl(0, 70%, 50%)", persisted[0].Color)
	suite.Equal("hsl(60, 70%, 50%)", persisted[1].Color)
	suite.Equal("hsl(120, 70%, 50%)", persisted[2].Color)

	// Durations are inclusive day counts
	suite.Equal(13*24*time.Hour, persisted[0].EndDate.Sub(persisted[0].StartDate))
}

// TestGenerateFromPlanFailure tests that a planner failure creates nothing
func (suite *PhaseServiceTestSuite) TestGenerateFromPlanFailure() {
	planner := &stubPlanner{err: apperrors.NewGenerationError("planner returned status 503")}
	svc := suite.newService(planner, nil)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)

	_, err := svc.GenerateFromPlan(context.Background(), suite.project.ID, &service.GeneratePlanRequest{
		ProjectName: "Riverside Apartments",
	})

	suite.True(apperrors.IsGeneration(err))
}

// TestGenerateFromPlanNotConfigured tests generation without a planner
func (suite *PhaseServiceTestSuite) TestGenerateFromPlanNotConfigured() {
	svc := suite.newService(nil, nil)

	_, err := svc.GenerateFromPlan(context.Background(), suite.project.ID, &service.GeneratePlanRequest{
		ProjectName: "Riverside Apartments",
	})

	suite.True(apperrors.IsConfiguration(err))
}

// TestGenerateFromPlanEmpty tests that an empty plan is a generation error
func (suite *PhaseServiceTestSuite) TestGenerateFromPlanEmpty() {
	planner := &stubPlanner{phases: []service.PlannedPhase{}}
	svc := suite.newService(planner, nil)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)

	_, err := svc.GenerateFromPlan(context.Background(), suite.project.ID, &service.GeneratePlanRequest{
		ProjectName: "Riverside Apartments",
	})

	suite.ErrorIs(err, apperrors.ErrEmptyPlan)
}

// TestApplyTemplate tests applying a named plan template
func (suite *PhaseServiceTestSuite) TestApplyTemplate() {
	templates := service.NewTemplateLibrary(map[string][]service.PlannedPhase{
		"renovation": {
			{PhaseName: "Demolition", DurationDays: 7},
			{PhaseName: "Reconstruction", DurationDays: 21},
		},
	})
	svc := suite.newService(nil, templates)

	suite.projectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)
	suite.repo.EXPECT().CountByProjectID(suite.project.ID).Return(int64(1), nil)
	suite.repo.EXPECT().CreateBatch(gomock.Any()).Return(nil)

	resp, err := svc.ApplyTemplate(suite.project.ID, "renovation")

	suite.NoError(err)
	suite.Len(resp, 2)
	suite.Equal("Demolition", resp[0].PhaseName)
	// Template phases append after existing ones
	suite.Equal(1, resp[0].OrderIndex)
	suite.Equal(2, resp[1].OrderIndex)
}

// TestApplyTemplateUnknown tests applying a template that does not exist
func (suite *PhaseServiceTestSuite) TestApplyTemplateUnknown() {
	svc := suite.newService(nil, service.NewTemplateLibrary(map[string][]service.PlannedPhase{}))

	_, err := svc.ApplyTemplate(suite.project.ID, "bridge")

	suite.ErrorIs(err, apperrors.ErrTemplateNotFound)
}

func TestPhaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PhaseServiceTestSuite))
}
