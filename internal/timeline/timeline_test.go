package timeline_test

import (
	"testing"
	"time"

	"building-portal-backend/internal/database/models"
	"building-portal-backend/internal/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func phase(name string, start, end time.Time) models.ProjectPhase {
	return models.ProjectPhase{
		PhaseName: name,
		StartDate: start,
		EndDate:   end,
		Status:    models.PhaseStatusNotStarted,
	}
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		name     string
		phases   []models.ProjectPhase
		expected []string
	}{
		{
			name: "All valid",
			phases: []models.ProjectPhase{
				phase("Foundation", date(2024, 1, 1), date(2024, 1, 10)),
				phase("Framing", date(2024, 1, 5), date(2024, 1, 20)),
			},
			expected: []string{"Foundation", "Framing"},
		},
		{
			name: "Empty name excluded",
			phases: []models.ProjectPhase{
				phase("", date(2024, 1, 1), date(2024, 1, 10)),
				phase("Framing", date(2024, 1, 5), date(2024, 1, 20)),
			},
			expected: []string{"Framing"},
		},
		{
			name: "Missing dates excluded",
			phases: []models.ProjectPhase{
				phase("No start", time.Time{}, date(2024, 1, 10)),
				phase("No end", date(2024, 1, 1), time.Time{}),
				phase("Complete", date(2024, 1, 1), date(2024, 1, 10)),
			},
			expected: []string{"Complete"},
		},
		{
			name: "Start after end excluded",
			phases: []models.ProjectPhase{
				phase("Backwards", date(2024, 2, 10), date(2024, 2, 1)),
				phase("Forwards", date(2024, 2, 1), date(2024, 2, 10)),
			},
			expected: []string{"Forwards"},
		},
		{
			name: "Zero-length phase is valid",
			phases: []models.ProjectPhase{
				phase("Inspection", date(2024, 3, 1), date(2024, 3, 1)),
			},
			expected: []string{"Inspection"},
		},
		{
			name:     "Empty input",
			phases:   nil,
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid := timeline.Filter(tc.phases)
			names := make([]string, 0, len(valid))
			for _, p := range valid {
				names = append(names, p.PhaseName)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestResolveBounds(t *testing.T) {
	t.Run("Two overlapping phases", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("A", date(2024, 1, 1), date(2024, 1, 10)),
			phase("B", date(2024, 1, 5), date(2024, 1, 20)),
		}

		bounds, ok := timeline.ResolveBounds(phases)
		require.True(t, ok)
		assert.Equal(t, date(2024, 1, 1), bounds.ProjectStart)
		assert.Equal(t, date(2024, 1, 20), bounds.ProjectEnd)
		assert.Equal(t, 20, bounds.TotalDays)
	})

	t.Run("Single-day project has one day", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("Inspection", date(2024, 3, 1), date(2024, 3, 1)),
		}

		bounds, ok := timeline.ResolveBounds(phases)
		require.True(t, ok)
		assert.Equal(t, 1, bounds.TotalDays)
	})

	t.Run("Empty set reports no timeline", func(t *testing.T) {
		_, ok := timeline.ResolveBounds(nil)
		assert.False(t, ok)
	})

	t.Run("Adding an outlying phase extends the window", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("A", date(2024, 1, 5), date(2024, 1, 10)),
		}
		before, ok := timeline.ResolveBounds(phases)
		require.True(t, ok)

		phases = append(phases, phase("B", date(2024, 1, 1), date(2024, 1, 20)))
		after, ok := timeline.ResolveBounds(phases)
		require.True(t, ok)

		assert.True(t, !after.ProjectStart.After(before.ProjectStart))
		assert.True(t, !after.ProjectEnd.Before(before.ProjectEnd))
		assert.Equal(t, date(2024, 1, 1), after.ProjectStart)
		assert.Equal(t, date(2024, 1, 20), after.ProjectEnd)
	})
}

func TestLayout(t *testing.T) {
	t.Run("Two-phase window", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("A", date(2024, 1, 1), date(2024, 1, 10)),
			phase("B", date(2024, 1, 5), date(2024, 1, 20)),
		}

		bounds, ok := timeline.ResolveBounds(phases)
		require.True(t, ok)

		positioned := timeline.Layout(phases, bounds)
		require.Len(t, positioned, 2)

		a := positioned[0]
		assert.Equal(t, 0, a.StartOffsetDays)
		assert.Equal(t, 10, a.DurationDays)
		assert.InDelta(t, 0.0, a.Left, 1e-9)
		assert.InDelta(t, 0.5, a.Width, 1e-9)

		b := positioned[1]
		assert.Equal(t, 4, b.StartOffsetDays)
		assert.Equal(t, 16, b.DurationDays)
		assert.InDelta(t, 0.2, b.Left, 1e-9)
		assert.InDelta(t, 0.8, b.Width, 1e-9)
	})

	t.Run("Zero-length phase floors to minimum width", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("Long", date(2024, 3, 1), date(2024, 12, 31)),
			phase("Inspection", date(2024, 3, 1), date(2024, 3, 1)),
		}

		bounds, ok := timeline.ResolveBounds(phases)
		require.True(t, ok)

		positioned := timeline.Layout(phases, bounds)
		require.Len(t, positioned, 2)

		inspection := positioned[1]
		assert.Equal(t, 1, inspection.DurationDays)
		assert.Equal(t, timeline.MinWidth, inspection.Width)
		assert.Greater(t, inspection.Width, 0.0)
	})

	t.Run("Single phase fills the window", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("Everything", date(2024, 5, 1), date(2024, 5, 30)),
		}

		bounds, ok := timeline.ResolveBounds(phases)
		require.True(t, ok)

		positioned := timeline.Layout(phases, bounds)
		require.Len(t, positioned, 1)
		assert.InDelta(t, 0.0, positioned[0].Left, 1e-9)
		assert.InDelta(t, 1.0, positioned[0].Width, 1e-9)
	})

	t.Run("Fractions stay within the window", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("A", date(2024, 1, 1), date(2024, 1, 3)),
			phase("B", date(2024, 1, 2), date(2024, 1, 9)),
			phase("C", date(2024, 1, 9), date(2024, 1, 9)),
			phase("D", date(2024, 1, 4), date(2024, 1, 7)),
		}

		bounds, ok := timeline.ResolveBounds(phases)
		require.True(t, ok)

		for _, p := range timeline.Layout(phases, bounds) {
			assert.GreaterOrEqual(t, p.Left, 0.0)
			assert.LessOrEqual(t, p.Left+p.Width, 1.0+timeline.MinWidth)
		}
	})

	t.Run("Input order preserved", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("Later", date(2024, 1, 10), date(2024, 1, 20)),
			phase("Earlier", date(2024, 1, 1), date(2024, 1, 5)),
		}

		bounds, ok := timeline.ResolveBounds(phases)
		require.True(t, ok)

		positioned := timeline.Layout(phases, bounds)
		require.Len(t, positioned, 2)
		assert.Equal(t, "Later", positioned[0].Phase.PhaseName)
		assert.Equal(t, "Earlier", positioned[1].Phase.PhaseName)
	})
}

func TestBuild(t *testing.T) {
	t.Run("Invalid phases never reach layout", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("Valid", date(2024, 1, 1), date(2024, 1, 10)),
			phase("Backwards", date(2024, 2, 10), date(2024, 2, 1)),
			phase("", date(2024, 1, 1), date(2024, 1, 10)),
		}

		positioned, bounds, ok := timeline.Build(phases)
		require.True(t, ok)
		assert.Len(t, positioned, 1)
		assert.Equal(t, date(2024, 1, 10), bounds.ProjectEnd)
	})

	t.Run("Empty phase list yields no timeline", func(t *testing.T) {
		positioned, _, ok := timeline.Build(nil)
		assert.False(t, ok)
		assert.Empty(t, positioned)
	})

	t.Run("Zero valid phases yields no timeline", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("Backwards", date(2024, 2, 10), date(2024, 2, 1)),
		}

		positioned, _, ok := timeline.Build(phases)
		assert.False(t, ok)
		assert.Empty(t, positioned)
	})

	t.Run("Deterministic for identical input", func(t *testing.T) {
		phases := []models.ProjectPhase{
			phase("A", date(2024, 1, 1), date(2024, 1, 10)),
			phase("B", date(2024, 1, 5), date(2024, 1, 20)),
			phase("C", date(2024, 1, 20), date(2024, 1, 20)),
		}

		first, firstBounds, ok := timeline.Build(phases)
		require.True(t, ok)
		second, secondBounds, ok := timeline.Build(phases)
		require.True(t, ok)

		assert.Equal(t, firstBounds, secondBounds)
		assert.Equal(t, first, second)
	})

	t.Run("Dates with stray time components count whole days", func(t *testing.T) {
		phases := []models.ProjectPhase{
			{
				PhaseName: "Foundation",
				StartDate: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
				EndDate:   time.Date(2024, 1, 10, 1, 15, 0, 0, time.UTC),
				Status:    models.PhaseStatusNotStarted,
			},
		}

		positioned, bounds, ok := timeline.Build(phases)
		require.True(t, ok)
		assert.Equal(t, 10, bounds.TotalDays)
		assert.Equal(t, 10, positioned[0].DurationDays)
	})
}
