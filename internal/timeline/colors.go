package timeline

import "building-portal-backend/internal/database/models"

// Default display colors per phase status. Exact hues are a presentation
// default; an explicit phase color always wins.
var statusColors = map[models.PhaseStatus]string{
	models.PhaseStatusCompleted:  "#22c55e",
	models.PhaseStatusInProgress: "#3b82f6",
	models.PhaseStatusDelayed:    "#ef4444",
	models.PhaseStatusNotStarted: "#9ca3af",
}

// fallbackColor covers phases with an unknown status value
const fallbackColor = "#9ca3af"

// StatusColor resolves the display color for a phase: the explicit color if
// one is set, otherwise the default for its status.
func StatusColor(phase models.ProjectPhase) string {
	if phase.Color != "" {
		return phase.Color
	}
	if color, ok := statusColors[phase.Status]; ok {
		return color
	}
	return fallbackColor
}
