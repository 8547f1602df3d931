package v1

import (
	"errors"
	"net/http"

	"github.com/2023FHIT047/crisisLink2/internal/config"
	"github.com/2023FHIT047/crisisLink2/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService   service.IncidentService
	assignmentService service.AssignmentService
	fieldService      service.FieldService
	debriefService    service.DebriefService
	alertService      service.AlertService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	assignmentService service.AssignmentService,
	fieldService service.FieldService,
	debriefService service.DebriefService,
	alertService service.AlertService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:   incidentService,
		assignmentService: assignmentService,
		fieldService:      fieldService,
		debriefService:    debriefService,
		alertService:      alertService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// respondServiceError сопоставляет доменные ошибки с HTTP-статусами.
// Сырые ошибки хранилища наружу не выходят.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "operation is not permitted for your role"})
	case errors.Is(err, service.ErrNotAssigned):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not assigned to this incident"})
	case errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "operation is not allowed for the current incident status"})
	case errors.Is(err, service.ErrVolunteerOffline):
		c.JSON(http.StatusConflict, gin.H{"error": "unit is offline and cannot receive mission parameters"})
	case errors.Is(err, service.ErrMissionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "unit is already engaged in an active mission"})
	case errors.Is(err, service.ErrCenterCapacity):
		c.JSON(http.StatusConflict, gin.H{"error": "hub has reached its 4-mission capacity"})
	case errors.Is(err, service.ErrNoReporterContact):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no phone contact available for the incident reporter"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
