package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/2023FHIT047/crisisLink2/internal/models"
)

// @Summary Push a field update
// @Description Volunteer reports mission progress and an optional situation report for an incident they are assigned to. Requires API key.
// @Tags Field
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param update body FieldUpdateRequest true "Field update"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Volunteer is not assigned to the incident"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/field-updates [post]
func (h *Handler) pushFieldUpdate(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "pushFieldUpdate").WithField("id", incidentID)

	var input FieldUpdateRequest
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

	if err := h.fieldService.PushFieldUpdate(c.Request.Context(), actorFromContext(c), incidentID, models.TaskStatus(input.Status), input.Report); err != nil {
		log.WithError(err).Warn("Failed to push field update in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Set volunteer presence
// @Description Toggle the caller's online flag used by the volunteer eligibility gate. Requires API key.
// @Tags Field
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param presence body PresenceRequest true "Presence flag"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /presence [post]
func (h *Handler) setPresence(c *gin.Context) {
	log := h.logger.WithField("method", "setPresence")

	var input PresenceRequest
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

	if err := h.fieldService.SetPresence(c.Request.Context(), actorFromContext(c), *input.Online); err != nil {
		log.WithError(err).Warn("Failed to set presence in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
