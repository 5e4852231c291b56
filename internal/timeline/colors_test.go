package timeline_test

import (
	"testing"

	"building-portal-backend/internal/database/models"
	"building-portal-backend/internal/timeline"

	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	t.Run("Explicit color wins over status", func(t *testing.T) {
		p := models.ProjectPhase{Status: models.PhaseStatusCompleted, Color: "#123456"}
		assert.Equal(t, "#123456", timeline.StatusColor(p))
	})

	t.Run("Each status maps to a distinct stable color", func(t *testing.T) {
		statuses := []models.PhaseStatus{
			models.PhaseStatusNotStarted,
			models.PhaseStatusInProgress,
			models.PhaseStatusCompleted,
			models.PhaseStatusDelayed,
		}

		seen := make(map[string]models.PhaseStatus)
		for _, status := range statuses {
			color := timeline.StatusColor(models.ProjectPhase{Status: status})
			assert.NotEmpty(t, color)

			prev, dup := seen[color]
			assert.False(t, dup, "status %s and %s share color %s", status, prev, color)
			seen[color] = status

			// Stable across calls
			assert.Equal(t, color, timeline.StatusColor(models.ProjectPhase{Status: status}))
		}
	})

	t.Run("Unknown status falls back to the neutral color", func(t *testing.T) {
		p := models.ProjectPhase{Status: models.PhaseStatus("bogus")}
		assert.Equal(t, timeline.StatusColor(models.ProjectPhase{Status: models.PhaseStatusNotStarted}), timeline.StatusColor(p))
	})
}
