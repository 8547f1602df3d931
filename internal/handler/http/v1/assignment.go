package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Assign a volunteer to an incident
// @Description Assign an online, unengaged volunteer to an active incident. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignRequest true "Volunteer assignment request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident or volunteer not found"
// @Failure 409 {object} map[string]string "Eligibility, conflict or state violation"
// @Router /incidents/{id}/volunteers [post]
func (h *Handler) assignVolunteer(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "assignVolunteer").WithField("id", incidentID)

	var input AssignRequest
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

	if err := h.assignmentService.AssignVolunteer(c.Request.Context(), actorFromContext(c), incidentID, input.AssigneeID); err != nil {
		log.WithError(err).Warn("Failed to assign volunteer in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Unassign a volunteer from an incident
// @Description Remove a volunteer from an active incident. No eligibility gate. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param volunteerId path string true "Volunteer profile ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Invalid lifecycle state"
// @Router /incidents/{id}/volunteers/{volunteerId} [delete]
func (h *Handler) unassignVolunteer(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	volunteerID, err := uuid.Parse(c.Param("volunteerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer ID"})
		return
	}
	log := h.logger.WithField("method", "unassignVolunteer").WithField("id", incidentID)

	if err := h.assignmentService.UnassignVolunteer(c.Request.Context(), actorFromContext(c), incidentID, volunteerID); err != nil {
		log.WithError(err).Warn("Failed to unassign volunteer in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Assign a resource center to an incident
// @Description Link a logistics hub to an active incident, subject to the 4 concurrent mission cap. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignRequest true "Center assignment request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Capacity or state violation"
// @Router /incidents/{id}/centers [post]
func (h *Handler) assignCenter(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "assignCenter").WithField("id", incidentID)

	var input AssignRequest
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

	if err := h.assignmentService.AssignCenter(c.Request.Context(), actorFromContext(c), incidentID, input.AssigneeID); err != nil {
		log.WithError(err).Warn("Failed to assign center in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Unassign a resource center from an incident
// @Description Remove a logistics hub from an active incident. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param centerId path string true "Resource center ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Invalid lifecycle state"
// @Router /incidents/{id}/centers/{centerId} [delete]
func (h *Handler) unassignCenter(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	centerID, err := uuid.Parse(c.Param("centerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid center ID"})
		return
	}
	log := h.logger.WithField("method", "unassignCenter").WithField("id", incidentID)

	if err := h.assignmentService.UnassignCenter(c.Request.Context(), actorFromContext(c), incidentID, centerID); err != nil {
		log.WithError(err).Warn("Failed to unassign center in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rank nearby volunteers
// @Description Get sector volunteers ordered by ascending haversine distance from the incident. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} models.RankedVolunteer
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/nearby/volunteers [get]
func (h *Handler) rankNearbyVolunteers(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "rankNearbyVolunteers").WithField("id", incidentID)

	ranked, err := h.assignmentService.RankNearbyVolunteers(c.Request.Context(), actorFromContext(c), incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to rank volunteers in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

// @Summary Rank nearby resource centers
// @Description Get sector hubs ordered by ascending haversine distance with their current mission load. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} models.RankedCenter
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/nearby/centers [get]
func (h *Handler) rankNearbyCenters(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "rankNearbyCenters").WithField("id", incidentID)

	ranked, err := h.assignmentService.RankNearbyCenters(c.Request.Context(), actorFromContext(c), incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to rank centers in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}
