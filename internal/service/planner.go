package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"building-portal-backend/internal/config"
	apperrors "building-portal-backend/internal/errors"
	"building-portal-backend/internal/logger"
)

// PlannedPhase is one phase of a generated project plan, before any dates
// are assigned
type PlannedPhase struct {
	PhaseName    string `json:"phase_name" yaml:"phase_name"`
	DurationDays int    `json:"duration_days" yaml:"duration_days"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PlanRequest describes the project a plan is requested for
type PlanRequest struct {
	ProjectName        string
	ProjectDescription string
	ProjectType        string
}

// PlanGenerator produces an ordered project plan for a building project
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req PlanRequest) ([]PlannedPhase, error)
}

// OpenAIPlanner generates plans through an OpenAI-compatible chat
// completions endpoint
type OpenAIPlanner struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	log     *logger.Logger
}

// NewOpenAIPlanner creates a planner from config. Returns nil when no API
// key is configured; callers treat a nil planner as generation unavailable.
func NewOpenAIPlanner(cfg *config.Config) *OpenAIPlanner {
	if cfg.PlannerAPIKey == "" {
		return nil
	}
	return &OpenAIPlanner{
		baseURL: strings.TrimRight(cfg.PlannerBaseURL, "/"),
		apiKey:  cfg.PlannerAPIKey,
		model:   cfg.PlannerModel,
		client: &http.Client{
			Timeout: time.Duration(cfg.PlannerTimeoutSec) * time.Second,
		},
		log: logger.New(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const plannerSystemPrompt = `You are a construction project planner. ` +
	`Given a building project, respond with a JSON array of phases in execution order. ` +
	`Each element must have exactly these fields: "phase_name" (string), ` +
	`"duration_days" (positive integer), "description" (string, one sentence). ` +
	`Respond with the JSON array only, no prose.`

// GeneratePlan asks the model for a phase breakdown of the project. All
// failure modes surface as GenerationError so callers can distinguish a bad
// plan from an infrastructure fault.
func (p *OpenAIPlanner) GeneratePlan(ctx context.Context, req PlanRequest) ([]PlannedPhase, error) {
	prompt := fmt.Sprintf("Project: %s", req.ProjectName)
	if req.ProjectType != "" {
		prompt += fmt.Sprintf("\nType: %s", req.ProjectType)
	}
	if req.ProjectDescription != "" {
		prompt += fmt.Sprintf("\nDescription: %s", req.ProjectDescription)
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: plannerSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal planner request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build planner request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewGenerationError(fmt.Sprintf("planner request failed: %v", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewGenerationError(fmt.Sprintf("failed to read planner response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		p.log.WithField("status", resp.StatusCode).Warn("Planner returned non-OK status")
		return nil, apperrors.NewGenerationError(fmt.Sprintf("planner returned status %d", resp.StatusCode))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return nil, apperrors.NewGenerationError("planner response is not valid JSON")
	}
	if len(completion.Choices) == 0 {
		return nil, apperrors.NewGenerationError("planner response has no choices")
	}

	planned, err := parsePlanContent(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return planned, nil
}

// parsePlanContent extracts the phase array from the model's reply. Models
// sometimes wrap JSON in a markdown code fence despite instructions.
func parsePlanContent(content string) ([]PlannedPhase, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	var planned []PlannedPhase
	if err := json.Unmarshal([]byte(content), &planned); err != nil {
		return nil, apperrors.NewGenerationError("planner reply is not a valid phase array")
	}
	if len(planned) == 0 {
		return nil, apperrors.ErrEmptyPlan
	}
	for _, p := range planned {
		if strings.TrimSpace(p.PhaseName) == "" {
			return nil, apperrors.NewGenerationError("planner reply contains a phase without a name")
		}
		if p.DurationDays < 1 {
			return nil, apperrors.NewGenerationError(fmt.Sprintf("phase %q has non-positive duration", p.PhaseName))
		}
	}
	return planned, nil
}
