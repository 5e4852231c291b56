package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"building-portal-backend/internal/config"
	"building-portal-backend/internal/database"
	"building-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed data structures matching the YAML seed file layout

type TeamData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
}

type PhaseData struct {
	PhaseName   string `yaml:"phase_name"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	Status      string `yaml:"status"`
	Color       string `yaml:"color,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type ProjectData struct {
	Name        string      `yaml:"name"`
	TeamName    string      `yaml:"team_name"`
	Description string      `yaml:"description"`
	ProjectType string      `yaml:"project_type"`
	Status      string      `yaml:"status"`
	Address     string      `yaml:"address,omitempty"`
	Phases      []PhaseData `yaml:"phases,omitempty"`
}

type SeedFile struct {
	Teams    []TeamData    `yaml:"teams"`
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	path := "scripts/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	if err := loadSeed(db, &seed); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Printf("Seeded %d teams and %d projects", len(seed.Teams), len(seed.Projects))
}

// loadSeed upserts teams then projects with their phases, all in one
// transaction so a broken seed file leaves the database untouched
func loadSeed(db *gorm.DB, seed *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		teamsByName := make(map[string]*models.Team)

		for _, t := range seed.Teams {
			team, err := upsertTeam(tx, t)
			if err != nil {
				return fmt.Errorf("team %s: %w", t.Name, err)
			}
			teamsByName[t.Name] = team
		}

		for _, p := range seed.Projects {
			team, ok := teamsByName[p.TeamName]
			if !ok {
				// Project may belong to a team that already exists in the DB
				var existing models.Team
				if err := tx.Where("name = ?", p.TeamName).First(&existing).Error; err != nil {
					return fmt.Errorf("project %s references unknown team %s", p.Name, p.TeamName)
				}
				team = &existing
			}

			if err := upsertProject(tx, p, team); err != nil {
				return fmt.Errorf("project %s: %w", p.Name, err)
			}
		}

		return nil
	})
}

func upsertTeam(tx *gorm.DB, data TeamData) (*models.Team, error) {
	var team models.Team
	err := tx.Where("name = ?", data.Name).First(&team).Error
	if err == nil {
		team.DisplayName = data.DisplayName
		team.Description = data.Description
		return &team, tx.Save(&team).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	team = models.Team{
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Description: data.Description,
	}
	return &team, tx.Create(&team).Error
}

func upsertProject(tx *gorm.DB, data ProjectData, team *models.Team) error {
	projectType := models.ProjectType(data.ProjectType)
	if projectType == "" {
		projectType = models.ProjectTypeConstruction
	}
	if !projectType.IsValid() {
		return fmt.Errorf("invalid project type %q", data.ProjectType)
	}

	status := models.ProjectStatus(data.Status)
	if status == "" {
		status = models.ProjectStatusActive
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid project status %q", data.Status)
	}

	var project models.Project
	err := tx.Where("team_id = ? AND name = ?", team.ID, data.Name).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		project = models.Project{
			TeamID:      team.ID,
			Name:        data.Name,
			Description: data.Description,
			ProjectType: projectType,
			Status:      status,
			Address:     data.Address,
		}
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		// Re-seeding replaces the project's plan
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectPhase{}).Error; err != nil {
			return err
		}
	}

	for i, ph := range data.Phases {
		phase, err := buildPhase(ph, &project, i)
		if err != nil {
			return fmt.Errorf("phase %s: %w", ph.PhaseName, err)
		}
		if err := tx.Create(phase).Error; err != nil {
			return err
		}
	}

	return nil
}

func buildPhase(data PhaseData, project *models.Project, orderIndex int) (*models.ProjectPhase, error) {
	start, err := time.ParseInLocation("2006-01-02", data.StartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date %q", data.StartDate)
	}
	end, err := time.ParseInLocation("2006-01-02", data.EndDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date %q", data.EndDate)
	}
	if start.After(end) {
		return nil, fmt.Errorf("start_date %s is after end_date %s", data.StartDate, data.EndDate)
	}

	status := models.PhaseStatus(data.Status)
	if status == "" {
		status = models.PhaseStatusNotStarted
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid phase status %q", data.Status)
	}

	return &models.ProjectPhase{
		ProjectID:   project.ID,
		TeamID:      project.TeamID,
		PhaseName:   data.PhaseName,
		StartDate:   start,
		EndDate:     end,
		Status:      status,
		Color:       data.Color,
		Description: data.Description,
		OrderIndex:  orderIndex,
	}, nil
}
