package routes

import (
	"log"
	"time"

	"building-portal-backend/internal/api/handlers"
	"building-portal-backend/internal/api/middleware"
	"building-portal-backend/internal/auth"
	"building-portal-backend/internal/config"
	"building-portal-backend/internal/repository"
	"building-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is the service version reported by the health endpoint, set at
// build time via -ldflags
var Version = "dev"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validator := validator.New()

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	phaseRepo := repository.NewPhaseRepository(db)

	// Plan templates are optional; generation and manual phases still work
	// without them
	templates, err := service.LoadTemplateLibrary(cfg.PlanTemplatesPath)
	if err != nil {
		log.Printf("Warning: plan templates unavailable: %v", err)
		templates = nil
	}

	planner := service.NewOpenAIPlanner(cfg)
	if planner == nil {
		log.Printf("Warning: PLANNER_API_KEY not set, plan generation disabled")
	}

	// Services
	teamService := service.NewTeamService(teamRepo, validator)
	projectService := service.NewProjectService(projectRepo, teamRepo, validator)
	var planGenerator service.PlanGenerator
	if planner != nil {
		planGenerator = planner
	}
	phaseService := service.NewPhaseService(phaseRepo, projectRepo, planGenerator, templates, validator)

	// Auth
	authService := auth.NewService(cfg.JWTSecret, 24*time.Hour)
	authMiddleware := auth.NewMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	phaseHandler := handlers.NewPhaseHandler(phaseService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/projects", projectHandler.ListTeamProjects)
		}

		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)

			projects.POST("/:id/phases", phaseHandler.CreatePhase)
			projects.GET("/:id/phases", phaseHandler.ListPhases)
			projects.GET("/:id/timeline", phaseHandler.GetTimeline)
			projects.POST("/:id/plan/generate", phaseHandler.GeneratePlan)
			projects.POST("/:id/plan/template", phaseHandler.ApplyTemplate)
		}

		phases := v1.Group("/phases")
		{
			phases.PUT("/:id", phaseHandler.UpdatePhase)
			phases.DELETE("/:id", phaseHandler.DeletePhase)
		}
	}

	return router
}
