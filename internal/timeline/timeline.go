// Package timeline computes a normalized Gantt-style layout from a set of
// project phases. All functions are pure: they take phase values, perform
// calendar-day arithmetic, and return positions without touching storage or
// holding state, so they are safe for concurrent use.
package timeline

import (
	"time"

	"building-portal-backend/internal/database/models"
)

// MinWidth is the smallest width fraction a phase may occupy. Zero-length
// phases are floored to this value so they stay visible instead of
// collapsing to nothing.
const MinWidth = 0.01

// Bounds is the overall project date window derived from a phase set
type Bounds struct {
	ProjectStart time.Time `json:"project_start"`
	ProjectEnd   time.Time `json:"project_end"`
	TotalDays    int       `json:"total_days"`
}

// Positioned is a phase enriched with its layout within the project window.
// Left and Width are fractions on a 0-1 scale; Color is the resolved display
// color (explicit phase color or the status default).
type Positioned struct {
	Phase           models.ProjectPhase `json:"phase"`
	StartOffsetDays int                 `json:"start_offset_days"`
	DurationDays    int                 `json:"duration_days"`
	Left            float64             `json:"left"`
	Width           float64             `json:"width"`
	Color           string              `json:"color"`
}

// Filter returns the phases that can participate in layout: non-empty name,
// both dates set, and start on or before end. Invalid phases are dropped
// silently; order is preserved.
func Filter(phases []models.ProjectPhase) []models.ProjectPhase {
	valid := make([]models.ProjectPhase, 0, len(phases))
	for _, phase := range phases {
		if phase.PhaseName == "" {
			continue
		}
		if phase.StartDate.IsZero() || phase.EndDate.IsZero() {
			continue
		}
		if toDay(phase.StartDate).After(toDay(phase.EndDate)) {
			continue
		}
		valid = append(valid, phase)
	}
	return valid
}

// ResolveBounds derives the project window from a set of valid phases:
// minimum start date, maximum end date, and the inclusive day count between
// them (never below 1). The second return value is false when the set is
// empty, which callers must treat as "no timeline" rather than an error.
func ResolveBounds(valid []models.ProjectPhase) (Bounds, bool) {
	if len(valid) == 0 {
		return Bounds{}, false
	}

	start := toDay(valid[0].StartDate)
	end := toDay(valid[0].EndDate)
	for _, phase := range valid[1:] {
		if s := toDay(phase.StartDate); s.Before(start) {
			start = s
		}
		if e := toDay(phase.EndDate); e.After(end) {
			end = e
		}
	}

	total := daysBetween(start, end) + 1
	if total < 1 {
		total = 1
	}

	return Bounds{ProjectStart: start, ProjectEnd: end, TotalDays: total}, true
}

// Layout positions each valid phase within the given bounds. Input order is
// preserved; overlapping phases produce overlapping fractions, and lane
// assignment is left to the renderer.
func Layout(valid []models.ProjectPhase, bounds Bounds) []Positioned {
	positioned := make([]Positioned, 0, len(valid))
	for _, phase := range valid {
		offset := daysBetween(bounds.ProjectStart, toDay(phase.StartDate))
		if offset < 0 {
			offset = 0
		}

		duration := daysBetween(toDay(phase.StartDate), toDay(phase.EndDate)) + 1
		if duration < 1 {
			duration = 1
		}

		left := float64(offset) / float64(bounds.TotalDays)
		if left < 0 {
			left = 0
		}

		width := float64(duration) / float64(bounds.TotalDays)
		if width < MinWidth {
			width = MinWidth
		}

		positioned = append(positioned, Positioned{
			Phase:           phase,
			StartOffsetDays: offset,
			DurationDays:    duration,
			Left:            left,
			Width:           width,
			Color:           StatusColor(phase),
		})
	}
	return positioned
}

// Build runs the full pipeline: filter raw phases, resolve the project
// window, and lay out every valid phase against it. The boolean is false
// when no valid phase exists and there is no timeline to draw.
func Build(phases []models.ProjectPhase) ([]Positioned, Bounds, bool) {
	valid := Filter(phases)
	bounds, ok := ResolveBounds(valid)
	if !ok {
		return nil, Bounds{}, false
	}
	return Layout(valid, bounds), bounds, true
}

// toDay strips any time-of-day component, pinning the date to midnight UTC
// so day counts are immune to DST transitions.
func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference b-a for date-only values
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
