package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check остается открытым
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger), ActorMiddleware(h.logger))

	// Жизненный цикл инцидентов
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/debrief-queue", h.debriefQueue)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/approve", h.approveIncident)
		incidents.POST("/:id/resolve", h.resolveIncident)

		// Движок назначений
		incidents.POST("/:id/volunteers", h.assignVolunteer)
		incidents.DELETE("/:id/volunteers/:volunteerId", h.unassignVolunteer)
		incidents.POST("/:id/centers", h.assignCenter)
		incidents.DELETE("/:id/centers/:centerId", h.unassignCenter)
		incidents.GET("/:id/nearby/volunteers", h.rankNearbyVolunteers)
		incidents.GET("/:id/nearby/centers", h.rankNearbyCenters)

		// Полевые отчеты и голосовой дебрифинг
		incidents.POST("/:id/field-updates", h.pushFieldUpdate)
		incidents.POST("/:id/voice-debrief", h.initiateVoiceDebrief)
	}

	// Дебрифинг и отзывы
	protected.POST("/debriefs", h.archiveDebrief)
	protected.GET("/reviews", h.listReviews)

	// Трансляции, метрики, присутствие
	protected.POST("/broadcasts", h.broadcastAlert)
	protected.GET("/notifications", h.listNotifications)
	protected.GET("/stats", h.getStats)
	protected.POST("/presence", h.setPresence)
}
