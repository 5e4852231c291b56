package handlers

import (
	"net/http"

	apperrors "building-portal-backend/internal/errors"
	"building-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PhaseHandler handles HTTP requests for project plan phases
type PhaseHandler struct {
	phaseService service.PhaseServiceInterface
}

// NewPhaseHandler creates a new phase handler
func NewPhaseHandler(phaseService service.PhaseServiceInterface) *PhaseHandler {
	return &PhaseHandler{
		phaseService: phaseService,
	}
}

// phaseError maps service errors to HTTP responses shared by phase endpoints
func phaseError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsGeneration(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreatePhase handles POST /projects/:id/phases
// @Summary Create a project phase
// @Description Add a phase to a project's plan. New phases append after existing ones.
// @Tags phases
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param phase body service.CreatePhaseRequest true "Phase data"
// @Success 201 {object} service.PhaseResponse "Successfully created phase"
// @Failure 400 {object} map[string]interface{} "Invalid request body or dates"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/phases [post]
func (h *PhaseHandler) CreatePhase(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phase, err := h.phaseService.Create(projectID, &req)
	if err != nil {
		phaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, phase)
}

// ListPhases handles GET /projects/:id/phases
// @Summary List project phases
// @Description List a project's phases in plan order
// @Tags phases
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} service.PhaseResponse "Successfully retrieved phases"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/phases [get]
func (h *PhaseHandler) ListPhases(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	phases, err := h.phaseService.ListByProject(projectID)
	if err != nil {
		phaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, phases)
}

// GetTimeline handles GET /projects/:id/timeline
// @Summary Get project timeline
// @Description Compute the positioned timeline for a project's phases
// @Tags phases
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.TimelineResponse "Successfully computed timeline"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/timeline [get]
func (h *PhaseHandler) GetTimeline(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	timeline, err := h.phaseService.Timeline(projectID)
	if err != nil {
		phaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}

// UpdatePhase handles PUT /phases/:id
// @Summary Update phase
// @Description Apply a partial update to a phase. The merged record is re-validated.
// @Tags phases
// @Accept json
// @Produce json
// @Param id path string true "Phase ID (UUID)"
// @Param phase body service.UpdatePhaseRequest true "Updated phase data"
// @Success 200 {object} service.PhaseResponse "Successfully updated phase"
// @Failure 400 {object} map[string]interface{} "Invalid request or dates"
// @Failure 404 {object} map[string]interface{} "Phase not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /phases/{id} [put]
func (h *PhaseHandler) UpdatePhase(c *gin.Context) {
	phaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phase ID"})
		return
	}

	var req service.UpdatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phase, err := h.phaseService.Update(phaseID, &req)
	if err != nil {
		phaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, phase)
}

// DeletePhase handles DELETE /phases/:id
// @Summary Delete phase
// @Description Delete a phase. Deleting an absent phase still returns 204.
// @Tags phases
// @Param id path string true "Phase ID (UUID)"
// @Success 204 "Phase is gone"
// @Failure 400 {object} map[string]interface{} "Invalid phase ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /phases/{id} [delete]
func (h *PhaseHandler) DeletePhase(c *gin.Context) {
	phaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phase ID"})
		return
	}

	if err := h.phaseService.Delete(phaseID); err != nil {
		phaseError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GeneratePlan handles POST /projects/:id/plan/generate
// @Summary Generate a project plan
// @Description Ask the AI planner for a phase breakdown and persist it as one batch
// @Tags phases
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param plan body service.GeneratePlanRequest true "Project description for the planner"
// @Success 201 {array} service.PhaseResponse "Generated phases"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 502 {object} map[string]interface{} "Plan generation failed"
// @Failure 503 {object} map[string]interface{} "Planner not configured"
// @Security BearerAuth
// @Router /projects/{id}/plan/generate [post]
func (h *PhaseHandler) GeneratePlan(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phases, err := h.phaseService.GenerateFromPlan(c.Request.Context(), projectID, &req)
	if err != nil {
		phaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, phases)
}

// ApplyTemplateRequest selects a plan template to apply
type ApplyTemplateRequest struct {
	Template string `json:"template" binding:"required"`
}

// ApplyTemplate handles POST /projects/:id/plan/template
// @Summary Apply a plan template
// @Description Persist a named plan template as the project's phases
// @Tags phases
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param template body ApplyTemplateRequest true "Template name"
// @Success 201 {array} service.PhaseResponse "Phases created from the template"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Project or template not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/plan/template [post]
func (h *PhaseHandler) ApplyTemplate(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phases, err := h.phaseService.ApplyTemplate(projectID, req.Template)
	if err != nil {
		phaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, phases)
}
