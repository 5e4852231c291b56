//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"building-portal-backend/internal/database/models"
	"building-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PhaseRepositoryTestSuite tests the PhaseRepository
type PhaseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PhaseRepository
	factories     *testutils.FactorySet

	team    *models.Team
	project *models.Project
}

// SetupSuite runs before all tests in the suite
func (suite *PhaseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPhaseRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PhaseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds the owning team and project
func (suite *PhaseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.team = suite.factories.Team.Create()
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(suite.team))

	suite.project = suite.factories.Project.Create(suite.team.ID)
	suite.NoError(NewProjectRepository(suite.baseTestSuite.DB).Create(suite.project))
}

// TearDownTest runs after each test
func (suite *PhaseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new phase
func (suite *PhaseRepositoryTestSuite) TestCreate() {
	phase := suite.factories.Phase.Create(suite.project.ID, suite.team.ID)

	err := suite.repo.Create(phase)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, phase.ID)
	suite.NotZero(phase.CreatedAt)
	suite.NotZero(phase.UpdatedAt)
}

// TestGetByProjectIDOrdered tests that phases come back in creation order
func (suite *PhaseRepositoryTestSuite) TestGetByProjectIDOrdered() {
	names := []string{"Planning", "Permits", "Foundation"}
	for i, name := range names {
		phase := suite.factories.Phase.Create(suite.project.ID, suite.team.ID)
		phase.PhaseName = name
		phase.OrderIndex = i
		suite.NoError(suite.repo.Create(phase))
	}

	phases, err := suite.repo.GetByProjectID(suite.project.ID)

	suite.NoError(err)
	suite.Len(phases, 3)
	for i, name := range names {
		suite.Equal(name, phases[i].PhaseName)
	}
}

// TestGetByProjectIDEmpty tests listing phases of an empty project
func (suite *PhaseRepositoryTestSuite) TestGetByProjectIDEmpty() {
	phases, err := suite.repo.GetByProjectID(suite.project.ID)

	suite.NoError(err)
	suite.Empty(phases)
}

// TestCountByProjectID tests the phase count
func (suite *PhaseRepositoryTestSuite) TestCountByProjectID() {
	count, err := suite.repo.CountByProjectID(suite.project.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	suite.NoError(suite.repo.Create(suite.factories.Phase.Create(suite.project.ID, suite.team.ID)))

	count, err = suite.repo.CountByProjectID(suite.project.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestUpdate tests round-tripping a phase mutation
func (suite *PhaseRepositoryTestSuite) TestUpdate() {
	phase := suite.factories.Phase.Create(suite.project.ID, suite.team.ID)
	suite.NoError(suite.repo.Create(phase))

	phase.Status = models.PhaseStatusInProgress
	phase.EndDate = time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Update(phase))

	retrieved, err := suite.repo.GetByID(phase.ID)
	suite.NoError(err)
	suite.Equal(models.PhaseStatusInProgress, retrieved.Status)
	suite.Equal(20, retrieved.EndDate.Day())
}

// TestDeleteIdempotent tests that deleting an absent phase is not an error
func (suite *PhaseRepositoryTestSuite) TestDeleteIdempotent() {
	phase := suite.factories.Phase.Create(suite.project.ID, suite.team.ID)
	suite.NoError(suite.repo.Create(phase))

	suite.NoError(suite.repo.Delete(phase.ID))
	// Second delete of the same ID is a no-op success
	suite.NoError(suite.repo.Delete(phase.ID))
	// As is deleting an ID that never existed
	suite.NoError(suite.repo.Delete(uuid.New()))
}

// TestCreateBatchAllOrNothing tests transactional batch creation
func (suite *PhaseRepositoryTestSuite) TestCreateBatchAllOrNothing() {
	good := suite.factories.Phase.Create(suite.project.ID, suite.team.ID)
	bad := suite.factories.Phase.Create(suite.project.ID, suite.team.ID)
	bad.ProjectID = uuid.New() // violates the project FK

	err := suite.repo.CreateBatch([]*models.ProjectPhase{good, bad})
	suite.Error(err)

	// The failed batch must not leave the good phase behind
	count, countErr := suite.repo.CountByProjectID(suite.project.ID)
	suite.NoError(countErr)
	suite.Equal(int64(0), count)
}

// TestCreateBatchEmpty tests that an empty batch is a no-op
func (suite *PhaseRepositoryTestSuite) TestCreateBatchEmpty() {
	suite.NoError(suite.repo.CreateBatch(nil))
}

func TestPhaseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PhaseRepositoryTestSuite))
}
