//go:build integration
// +build integration

package repository

import (
	"testing"

	"building-portal-backend/internal/database/models"
	"building-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet

	team *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds the owning team
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.team = suite.factories.Team.Create()
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(suite.team))
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new project
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.factories.Project.Create(suite.team.ID)

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)
	suite.NotZero(project.CreatedAt)
}

// TestGetByID tests retrieving a project by ID
func (suite *ProjectRepositoryTestSuite) TestGetByID() {
	project := suite.factories.Project.Create(suite.team.ID)
	suite.NoError(suite.repo.Create(project))

	retrieved, err := suite.repo.GetByID(project.ID)

	suite.NoError(err)
	suite.Equal(project.Name, retrieved.Name)
	suite.Equal(project.TeamID, retrieved.TeamID)
}

// TestGetByIDNotFound tests retrieving a nonexistent project
func (suite *ProjectRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByTeamID tests listing projects for a team
func (suite *ProjectRepositoryTestSuite) TestGetByTeamID() {
	for _, name := range []string{"North Tower", "South Tower"} {
		suite.NoError(suite.repo.Create(suite.factories.Project.WithName(suite.team.ID, name)))
	}

	projects, total, err := suite.repo.GetByTeamID(suite.team.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(projects, 2)
}

// TestGetWithPhasesOrdered tests that preloaded phases keep creation order
func (suite *ProjectRepositoryTestSuite) TestGetWithPhasesOrdered() {
	project := suite.factories.Project.Create(suite.team.ID)
	suite.NoError(suite.repo.Create(project))

	phaseRepo := NewPhaseRepository(suite.baseTestSuite.DB)
	for i, name := range []string{"Planning", "Foundation"} {
		phase := suite.factories.Phase.Create(project.ID, suite.team.ID)
		phase.PhaseName = name
		phase.OrderIndex = i
		suite.NoError(phaseRepo.Create(phase))
	}

	retrieved, err := suite.repo.GetWithPhases(project.ID)

	suite.NoError(err)
	suite.Len(retrieved.Phases, 2)
	suite.Equal("Planning", retrieved.Phases[0].PhaseName)
	suite.Equal("Foundation", retrieved.Phases[1].PhaseName)
}

// TestDelete tests deleting a project
func (suite *ProjectRepositoryTestSuite) TestDelete() {
	project := suite.factories.Project.Create(suite.team.ID)
	suite.NoError(suite.repo.Create(project))

	suite.NoError(suite.repo.Delete(project.ID))

	_, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
