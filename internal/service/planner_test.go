package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"building-portal-backend/internal/config"
	apperrors "building-portal-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plannerForURL(t *testing.T, url string) *OpenAIPlanner {
	t.Helper()
	planner := NewOpenAIPlanner(&config.Config{
		PlannerBaseURL:    url,
		PlannerAPIKey:     "test-key",
		PlannerModel:      "gpt-4o-mini",
		PlannerTimeoutSec: 5,
	})
	require.NotNil(t, planner)
	return planner
}

func completionReply(content string) string {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

func TestGeneratePlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply(`[
			{"phase_name": "Planning & Design", "duration_days": 14, "description": "Finalize drawings"},
			{"phase_name": "Foundation Work", "duration_days": 21, "description": "Pour the foundation"}
		]`)))
	}))
	defer server.Close()

	planner := plannerForURL(t, server.URL)
	planned, err := planner.GeneratePlan(context.Background(), PlanRequest{
		ProjectName: "Riverside Apartments",
		ProjectType: "construction",
	})

	require.NoError(t, err)
	require.Len(t, planned, 2)
	assert.Equal(t, "Planning & Design", planned[0].PhaseName)
	assert.Equal(t, 14, planned[0].DurationDays)
}

func TestGeneratePlanCodeFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fenced := "```json\n[{\"phase_name\": \"Demolition\", \"duration_days\": 7}]\n```"
		w.Write([]byte(completionReply(fenced)))
	}))
	defer server.Close()

	planner := plannerForURL(t, server.URL)
	planned, err := planner.GeneratePlan(context.Background(), PlanRequest{ProjectName: "Loft Renovation"})

	require.NoError(t, err)
	require.Len(t, planned, 1)
	assert.Equal(t, "Demolition", planned[0].PhaseName)
}

func TestGeneratePlanNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	planner := plannerForURL(t, server.URL)
	_, err := planner.GeneratePlan(context.Background(), PlanRequest{ProjectName: "Riverside Apartments"})

	assert.True(t, apperrors.IsGeneration(err))
}

func TestGeneratePlanMalformedReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionReply("Sure! Here is a plan for your project:")))
	}))
	defer server.Close()

	planner := plannerForURL(t, server.URL)
	_, err := planner.GeneratePlan(context.Background(), PlanRequest{ProjectName: "Riverside Apartments"})

	assert.True(t, apperrors.IsGeneration(err))
}

func TestGeneratePlanCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionReply("[]")))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	planner := plannerForURL(t, server.URL)
	_, err := planner.GeneratePlan(ctx, PlanRequest{ProjectName: "Riverside Apartments"})

	assert.True(t, apperrors.IsGeneration(err))
}

func TestGeneratePlanNoAPIKey(t *testing.T) {
	planner := NewOpenAIPlanner(&config.Config{PlannerBaseURL: "http://localhost"})
	assert.Nil(t, planner)
}

func TestParsePlanContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		count   int
	}{
		{
			name:    "plain array",
			content: `[{"phase_name": "Permits", "duration_days": 21}]`,
			count:   1,
		},
		{
			name:    "fenced without language tag",
			content: "```\n[{\"phase_name\": \"Permits\", \"duration_days\": 21}]\n```",
			count:   1,
		},
		{
			name:    "empty array",
			content: `[]`,
			wantErr: true,
		},
		{
			name:    "phase without name",
			content: `[{"phase_name": "  ", "duration_days": 5}]`,
			wantErr: true,
		},
		{
			name:    "non-positive duration",
			content: `[{"phase_name": "Permits", "duration_days": 0}]`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			content: "here you go",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planned, err := parsePlanContent(tt.content)
			if tt.wantErr {
				assert.True(t, apperrors.IsGeneration(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, planned, tt.count)
		})
	}
}
