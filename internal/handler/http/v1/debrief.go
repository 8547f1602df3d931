package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Archive a debrief
// @Description Record the coordinator's debrief of a resolved incident as a verified review and close the feedback loop. Requires API key.
// @Tags Debriefs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param debrief body ArchiveDebriefRequest true "Debrief to archive"
// @Success 201 {object} ReviewResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident is not resolved"
// @Router /debriefs [post]
func (h *Handler) archiveDebrief(c *gin.Context) {
	log := h.logger.WithField("method", "archiveDebrief")

	var input ArchiveDebriefRequest
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

	review, err := h.debriefService.ArchiveDebrief(c.Request.Context(), actorFromContext(c), DTOToReviewModel(input))
	if err != nil {
		log.WithError(err).Warn("Failed to archive debrief in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToReviewResponse(review))
}

// @Summary Initiate a voice debrief call
// @Description Queue an outbound debrief call to the reporter of a resolved incident. Requires API key.
// @Tags Debriefs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident is not resolved"
// @Failure 422 {object} map[string]string "Reporter has no contact phone"
// @Router /incidents/{id}/voice-debrief [post]
func (h *Handler) initiateVoiceDebrief(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "initiateVoiceDebrief").WithField("id", incidentID)

	if err := h.debriefService.InitiateVoiceDebrief(c.Request.Context(), actorFromContext(c), incidentID); err != nil {
		log.WithError(err).Warn("Failed to initiate voice debrief in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary List reviews
// @Description Get archived debrief reviews, newest first. Requires API key.
// @Tags Debriefs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} ReviewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reviews [get]
func (h *Handler) listReviews(c *gin.Context) {
	log := h.logger.WithField("method", "listReviews")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	reviews, err := h.debriefService.ListReviews(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reviews in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToReviewResponses(reviews))
}
