package service

import (
	"context"
	"fmt"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/webhook"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ReviewRepository определяет контракт для работы с бд отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListReviews(ctx context.Context, page, pageSize int) ([]*models.Review, error)
	AverageRating(ctx context.Context) (float64, error)
}

// DebriefService определяет контракт закрытия инцидента через дебрифинг
type DebriefService interface {
	ArchiveDebrief(ctx context.Context, actor models.Actor, review *models.Review) (*models.Review, error)
	InitiateVoiceDebrief(ctx context.Context, actor models.Actor, incidentID uuid.UUID) error
	ListReviews(ctx context.Context, page, pageSize int) ([]*models.Review, error)
}

type debriefService struct {
	incidents IncidentRepository
	reviews   ReviewRepository
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewDebriefService(incidents IncidentRepository, reviews ReviewRepository, publisher webhook.Publisher, logger *logrus.Logger) DebriefService {
	return &debriefService{
		incidents: incidents,
		reviews:   reviews,
		publisher: publisher,
		logger:    logger,
	}
}

// ArchiveDebrief записывает отзыв по закрытому инциденту ровно один раз
// с точки зрения вызывающего: отзыв всегда создается заново, дедупликации
// нет, повторный вызов по уже завершенному feedback_status лишь логируется.
// Отзывы координаторов считаются заранее проверенными: is_verified всегда true.
func (s *debriefService) ArchiveDebrief(ctx context.Context, actor models.Actor, review *models.Review) (*models.Review, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "debrief",
		"method":  "ArchiveDebrief",
		"actor":   actor.ID,
	})
	log.Info("Attempting to archive mission debrief")

	if !actor.CanCommand() {
		return nil, fmt.Errorf("service: archive debrief: %w", ErrForbidden)
	}

	if review.IncidentID != nil {
		incident, err := s.incidents.GetByID(ctx, *review.IncidentID)
		if err != nil {
			log.WithError(err).Warn("Debrief references a non-existent incident")
			return nil, fmt.Errorf("service: incident %s: %w", *review.IncidentID, ErrNotFound)
		}
		if incident.Status != models.StatusResolved {
			return nil, fmt.Errorf("service: debrief incident in status %q: %w", incident.Status, ErrInvalidState)
		}
		if incident.FeedbackStatus == models.FeedbackCompleted {
			log.WithField("incident_id", incident.ID).Warn("Debrief already archived for this incident, creating another review")
		}
	}

	review.IsVerified = true
	if err := s.reviews.Create(ctx, review); err != nil {
		log.WithError(err).Error("Failed to create review in repository")
		return nil, fmt.Errorf("service: could not archive debrief: %w", err)
	}

	if review.IncidentID != nil {
		if err := s.incidents.SetFeedbackStatus(ctx, *review.IncidentID, models.FeedbackCompleted); err != nil {
			log.WithError(err).Error("Failed to complete incident feedback status")
			return nil, fmt.Errorf("service: could not complete feedback: %w", err)
		}
		if err := s.incidents.InvalidateIncidentCache(ctx, *review.IncidentID); err != nil {
			log.WithError(err).Warn("Failed to invalidate incident cache")
		}
	}

	log.WithField("review_id", review.ID).Info("Mission debrief archived successfully")
	return review, nil
}

// InitiateVoiceDebrief публикует запрос исходящего звонка репортеру
// закрытого инцидента. Состояние инцидента не меняется - результат звонка
// попадет в систему позже через ArchiveDebrief.
func (s *debriefService) InitiateVoiceDebrief(ctx context.Context, actor models.Actor, incidentID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "debrief",
		"method":      "InitiateVoiceDebrief",
		"incident_id": incidentID,
		"actor":       actor.ID,
	})
	log.Info("Attempting to initiate voice debrief")

	if !actor.CanCommand() {
		return fmt.Errorf("service: voice debrief: %w", ErrForbidden)
	}

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Voice debrief requested for a non-existent incident")
		return fmt.Errorf("service: incident %s: %w", incidentID, ErrNotFound)
	}
	if incident.Status != models.StatusResolved {
		return fmt.Errorf("service: voice debrief incident in status %q: %w", incident.Status, ErrInvalidState)
	}
	if incident.ReporterPhone == "" {
		log.Info("Reporter has no phone contact, voice debrief rejected")
		return fmt.Errorf("service: voice debrief: %w", ErrNoReporterContact)
	}

	event := webhook.Event{
		Type:       webhook.EventVoiceDebrief,
		IncidentID: &incident.ID,
		Name:       incident.ReporterName,
		Phone:      incident.ReporterPhone,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish voice debrief event")
		return fmt.Errorf("service: could not request outbound call: %w", err)
	}

	log.Info("Voice debrief call requested")
	return nil
}

// ListReviews возвращает отзывы, новые первыми
func (s *debriefService) ListReviews(ctx context.Context, page, pageSize int) ([]*models.Review, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "debrief",
		"method":    "ListReviews",
		"page":      page,
		"page_size": pageSize,
	})

	reviews, err := s.reviews.ListReviews(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reviews from repository")
		return nil, fmt.Errorf("service: could not list reviews: %w", err)
	}

	log.WithField("count", len(reviews)).Info("Reviews listed successfully")
	return reviews, nil
}
