package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Broadcast an emergency alert
// @Description Publish a sector-wide alert: persists a notification and queues a webhook for external delivery. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body BroadcastRequest true "Alert to broadcast"
// @Success 201 {object} models.Notification
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /broadcasts [post]
func (h *Handler) broadcastAlert(c *gin.Context) {
	log := h.logger.WithField("method", "broadcastAlert")

	var input BroadcastRequest
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

	notification, err := h.alertService.BroadcastAlert(c.Request.Context(), actorFromContext(c), input.Title, input.Message, input.Sector)
	if err != nil {
		log.WithError(err).Warn("Failed to broadcast alert in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

// @Summary List notifications
// @Description Get published alerts, optionally filtered by sector, newest first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sector query string false "Sector filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} models.Notification
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listNotifications")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	notifications, err := h.alertService.ListNotifications(c.Request.Context(), c.Query("sector"), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list notifications in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// @Summary Command statistics
// @Description Aggregated mission statistics for the command dashboard. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.alertService.CommandStats(c.Request.Context(), actorFromContext(c))
	if err != nil {
		log.WithError(err).Error("Failed to get stats in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}
