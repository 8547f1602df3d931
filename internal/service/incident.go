package service

import (
	"context"
	"fmt"

	"github.com/2023FHIT047/crisisLink2/internal/config"
	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	DebriefQueue(ctx context.Context) ([]*models.Incident, error)
	Activate(ctx context.Context, id uuid.UUID) (bool, error)
	Resolve(ctx context.Context, id uuid.UUID) (bool, error)
	SetFeedbackStatus(ctx context.Context, id uuid.UUID, status models.FeedbackStatus) error
	Stats(ctx context.Context) (*models.IncidentStats, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// NotificationRepository определяет контракт для работы с бд оповещений
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListNotifications(ctx context.Context, sector string, page, pageSize int) ([]*models.Notification, error)
}

// IncidentService определяет контракт для бизнес-логики жизненного цикла инцидентов
type IncidentService interface {
	ReportIncident(ctx context.Context, actor models.Actor, incident *models.Incident) error
	ApproveIncident(ctx context.Context, actor models.Actor, id uuid.UUID) error
	ResolveIncident(ctx context.Context, actor models.Actor, id uuid.UUID) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	DebriefQueue(ctx context.Context, actor models.Actor) ([]*models.Incident, error)
}

type incidentService struct {
	repo          IncidentRepository
	notifications NotificationRepository
	logger        *logrus.Logger
	cfg           *config.Config
}

func NewIncidentService(repo IncidentRepository, notifications NotificationRepository, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:          repo,
		notifications: notifications,
		logger:        logger,
		cfg:           cfg,
	}
}

// ReportIncident создает инцидент от имени репортера.
// Флаг verified приходит готовым от внешнего ИИ-верификатора, ядро его
// не пересчитывает. Статус всегда стартует с reported.
func (s *incidentService) ReportIncident(ctx context.Context, actor models.Actor, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReportIncident",
		"title":   incident.Title,
		"actor":   actor.ID,
	})
	log.Info("Attempting to report a new incident")

	if !incident.Severity.Valid() {
		incident.Severity = models.SeverityMedium
	}

	incident.Status = models.StatusReported
	incident.FeedbackStatus = models.FeedbackNone
	incident.ReporterID = actor.ID
	if incident.ReporterName == "" {
		incident.ReporterName = actor.Name
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	// Секторное оповещение о новой угрозе. Его потеря не должна отменять сам репорт.
	notification := &models.Notification{
		Title:    "HAZARD REPORTED",
		Message:  fmt.Sprintf("%s (%s severity) reported in sector %s", incident.Title, incident.Severity, incident.City),
		Type:     "hazard",
		Sector:   incident.City,
		Priority: string(incident.Severity),
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		log.WithError(err).Warn("Failed to publish hazard notification")
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return nil
}

// ApproveIncident переводит инцидент reported/verifying -> active и выставляет verified.
// Повторное одобрение уже активного инцидента - no-op.
func (s *incidentService) ApproveIncident(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ApproveIncident",
		"incident_id": id,
		"actor":       actor.ID,
	})
	log.Info("Attempting to approve incident")

	if !actor.CanCommand() {
		return fmt.Errorf("service: approve incident: %w", ErrForbidden)
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to approve a non-existent incident")
		return fmt.Errorf("service: incident %s: %w", id, ErrNotFound)
	}

	if incident.Status == models.StatusActive {
		log.Info("Incident is already active, approve is a no-op")
		return nil
	}
	if !incident.Status.CanTransitionTo(models.StatusActive) {
		return fmt.Errorf("service: approve incident in status %q: %w", incident.Status, ErrInvalidState)
	}

	ok, err := s.repo.Activate(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to activate incident in repository")
		return fmt.Errorf("service: could not approve incident: %w", err)
	}
	if !ok {
		// Статус сменился между чтением и условным апдейтом
		return fmt.Errorf("service: approve incident: %w", ErrInvalidState)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident approved successfully")
	return nil
}

// ResolveIncident закрывает активный инцидент: status=resolved,
// feedback_status=pending, все назначения снимаются, полевые отчеты сохраняются.
// Повторный резолв отклоняется, чтобы не затереть продвинувшийся feedback_status.
func (s *incidentService) ResolveIncident(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveIncident",
		"incident_id": id,
		"actor":       actor.ID,
	})
	log.Info("Attempting to resolve incident")

	if !actor.CanCommand() {
		return fmt.Errorf("service: resolve incident: %w", ErrForbidden)
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent incident")
		return fmt.Errorf("service: incident %s: %w", id, ErrNotFound)
	}

	if !incident.Status.CanTransitionTo(models.StatusResolved) {
		return fmt.Errorf("service: resolve incident in status %q: %w", incident.Status, ErrInvalidState)
	}

	ok, err := s.repo.Resolve(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to resolve incident in repository")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}
	if !ok {
		return fmt.Errorf("service: resolve incident: %w", ErrInvalidState)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident resolved successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша, затем из бд
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", ErrNotFound)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to set incident cache")
	}

	return incident, nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"city":      filter.City,
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// DebriefQueue возвращает закрытые инциденты, ожидающие дебрифинга
func (s *incidentService) DebriefQueue(ctx context.Context, actor models.Actor) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "DebriefQueue",
		"actor":   actor.ID,
	})

	if !actor.CanCommand() {
		return nil, fmt.Errorf("service: debrief queue: %w", ErrForbidden)
	}

	incidents, err := s.repo.DebriefQueue(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch debrief queue from repository")
		return nil, fmt.Errorf("service: could not fetch debrief queue: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Debrief queue fetched")
	return incidents, nil
}
