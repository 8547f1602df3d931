package service

import (
	"context"
	"fmt"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertService определяет контракт для экстренных трансляций и командных метрик
type AlertService interface {
	BroadcastAlert(ctx context.Context, actor models.Actor, title, message, sector string) (*models.Notification, error)
	ListNotifications(ctx context.Context, sector string, page, pageSize int) ([]*models.Notification, error)
	CommandStats(ctx context.Context, actor models.Actor) (*models.IncidentStats, error)
}

type alertService struct {
	incidents     IncidentRepository
	notifications NotificationRepository
	reviews       ReviewRepository
	publisher     webhook.Publisher
	logger        *logrus.Logger
}

func NewAlertService(incidents IncidentRepository, notifications NotificationRepository, reviews ReviewRepository, publisher webhook.Publisher, logger *logrus.Logger) AlertService {
	return &alertService{
		incidents:     incidents,
		notifications: notifications,
		reviews:       reviews,
		publisher:     publisher,
		logger:        logger,
	}
}

// BroadcastAlert сохраняет экстренную секторную трансляцию и отдает ее
// во внешнюю доставку через очередь вебхуков
func (s *alertService) BroadcastAlert(ctx context.Context, actor models.Actor, title, message, sector string) (*models.Notification, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "BroadcastAlert",
		"sector":  sector,
		"actor":   actor.ID,
	})
	log.Info("Attempting to broadcast emergency alert")

	if !actor.CanCommand() {
		return nil, fmt.Errorf("service: broadcast alert: %w", ErrForbidden)
	}

	notification := &models.Notification{
		Title:    title,
		Message:  message,
		Type:     "hazard",
		Sector:   sector,
		Priority: "critical",
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		log.WithError(err).Error("Failed to create notification in repository")
		return nil, fmt.Errorf("service: could not broadcast alert: %w", err)
	}

	event := webhook.Event{
		Type:    webhook.EventBroadcast,
		Title:   title,
		Message: message,
		Sector:  sector,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Трансляция уже сохранена, потеря вебхука не откатывает ее
		log.WithError(err).Warn("Failed to publish broadcast event")
	}

	log.WithField("notification_id", notification.ID).Info("Emergency alert broadcast successfully")
	return notification, nil
}

// ListNotifications возвращает секторные оповещения с пагинацией
func (s *alertService) ListNotifications(ctx context.Context, sector string, page, pageSize int) ([]*models.Notification, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListNotifications",
		"sector":  sector,
	})

	notifications, err := s.notifications.ListNotifications(ctx, sector, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list notifications from repository")
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}

	log.WithField("count", len(notifications)).Info("Notifications listed successfully")
	return notifications, nil
}

// CommandStats собирает сводные метрики для командной панели
func (s *alertService) CommandStats(ctx context.Context, actor models.Actor) (*models.IncidentStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CommandStats",
		"actor":   actor.ID,
	})

	if !actor.CanCommand() {
		return nil, fmt.Errorf("service: command stats: %w", ErrForbidden)
	}

	stats, err := s.incidents.Stats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch incident stats from repository")
		return nil, fmt.Errorf("service: could not fetch stats: %w", err)
	}

	rating, err := s.reviews.AverageRating(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch average review rating")
		return nil, fmt.Errorf("service: could not fetch average rating: %w", err)
	}
	stats.AverageReviewRating = rating

	if stats.TotalIncidents > 0 {
		stats.SuccessRate = stats.TotalResolved * 100 / stats.TotalIncidents
	}

	log.Info("Command stats collected")
	return stats, nil
}
