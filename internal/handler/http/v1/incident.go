package v1

import (
	"net/http"
	"strconv"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Report a new incident
// @Description Report a new hazard incident. The verified flag carries the external AI verification verdict. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.ReportIncident(c.Request.Context(), actorFromContext(c), model); err != nil {
		log.WithError(err).Error("Failed to report incident in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, optionally filtered by sector city. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param city query string false "Sector city filter"
// @Param includeResolved query bool false "Include resolved incidents" default(false)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	filter := models.IncidentFilter{
		City:            c.Query("city"),
		IncludeResolved: c.Query("includeResolved") == "true",
		Page:            page,
		PageSize:        pageSize,
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident with its assignments, tasks and field reports. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Approve a reported incident
// @Description Validate a reported incident: status becomes active, verified becomes true. Approving an already active incident is a no-op. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Invalid lifecycle state"
// @Router /incidents/{id}/approve [post]
func (h *Handler) approveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "approveIncident").WithField("id", id)

	if err := h.incidentService.ApproveIncident(c.Request.Context(), actorFromContext(c), id); err != nil {
		log.WithError(err).Warn("Failed to approve incident in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve an active incident
// @Description Archive the mission: status becomes resolved, feedback becomes pending, all assignments are cleared. Field reports are retained. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Invalid lifecycle state"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	if err := h.incidentService.ResolveIncident(c.Request.Context(), actorFromContext(c), id); err != nil {
		log.WithError(err).Warn("Failed to resolve incident in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get the debrief queue
// @Description Get resolved incidents still waiting for a debrief. Requires API key.
// @Tags Debrief
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/debrief-queue [get]
func (h *Handler) debriefQueue(c *gin.Context) {
	log := h.logger.WithField("method", "debriefQueue")

	incidents, err := h.incidentService.DebriefQueue(c.Request.Context(), actorFromContext(c))
	if err != nil {
		log.WithError(err).Error("Failed to fetch debrief queue from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}
