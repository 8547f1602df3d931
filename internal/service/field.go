package service

import (
	"context"
	"fmt"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FieldService определяет контракт для полевых операций волонтера:
// трекинг задач, SitRep-отчеты и флаг присутствия
type FieldService interface {
	PushFieldUpdate(ctx context.Context, actor models.Actor, incidentID uuid.UUID, status models.TaskStatus, reportText string) error
	SetPresence(ctx context.Context, actor models.Actor, online bool) error
}

type fieldService struct {
	incidents   IncidentRepository
	assignments AssignmentRepository
	directory   DirectoryRepository
	logger      *logrus.Logger
}

func NewFieldService(incidents IncidentRepository, assignments AssignmentRepository, directory DirectoryRepository, logger *logrus.Logger) FieldService {
	return &fieldService{
		incidents:   incidents,
		assignments: assignments,
		directory:   directory,
		logger:      logger,
	}
}

// PushFieldUpdate записывает прогресс назначенного волонтера.
// Статус задачи перезаписывается целиком при каждом вызове. Непустой текст
// добавляет запись в журнал полевых отчетов (только append). Отчет по
// инциденту в статусе reported/verifying дополнительно активирует инцидент -
// единственный путь, где не-координатор двигает жизненный цикл. Все записи -
// одиночные атомарные операции над дочерними строками, гонки read-modify-write
// на уровне ядра нет.
func (s *fieldService) PushFieldUpdate(ctx context.Context, actor models.Actor, incidentID uuid.UUID, status models.TaskStatus, reportText string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "field",
		"method":       "PushFieldUpdate",
		"incident_id":  incidentID,
		"volunteer_id": actor.ID,
	})
	log.Info("Attempting to push field update")

	if !status.Valid() {
		return fmt.Errorf("service: unknown task status %q", status)
	}

	assigned, err := s.assignments.IsAssigned(ctx, incidentID, actor.ID, models.AssigneeVolunteer)
	if err != nil {
		log.WithError(err).Error("Failed to check assignment membership")
		return fmt.Errorf("service: could not check assignment: %w", err)
	}
	if !assigned {
		log.Info("Volunteer is not assigned to the incident, update rejected")
		return fmt.Errorf("service: push field update: %w", ErrNotAssigned)
	}

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: incident %s: %w", incidentID, ErrNotFound)
	}

	if err := s.assignments.UpsertTask(ctx, incidentID, actor.ID, status); err != nil {
		log.WithError(err).Error("Failed to upsert volunteer task")
		return fmt.Errorf("service: could not update task: %w", err)
	}

	if reportText != "" {
		report := &models.FieldReport{
			IncidentID:    incidentID,
			VolunteerID:   actor.ID,
			VolunteerName: actor.Name,
			Text:          reportText,
		}
		if err := s.assignments.AppendFieldReport(ctx, report); err != nil {
			log.WithError(err).Error("Failed to append field report")
			return fmt.Errorf("service: could not append field report: %w", err)
		}
	}

	// Неявная валидация: полевой отчет по еще не подтвержденному инциденту
	// активирует его через ту же таблицу переходов, что и одобрение координатором
	if incident.Status.CanTransitionTo(models.StatusActive) {
		if _, err := s.incidents.Activate(ctx, incidentID); err != nil {
			log.WithError(err).Error("Failed to activate incident on field update")
			return fmt.Errorf("service: could not activate incident: %w", err)
		}
		log.Info("Incident implicitly activated by field update")
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Field update pushed successfully")
	return nil
}

// SetPresence переключает флаг присутствия волонтера - гейт пригодности
// для движка назначений
func (s *fieldService) SetPresence(ctx context.Context, actor models.Actor, online bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "field",
		"method":  "SetPresence",
		"actor":   actor.ID,
		"online":  online,
	})
	log.Info("Updating volunteer presence")

	if err := s.directory.SetPresence(ctx, actor.ID, online); err != nil {
		log.WithError(err).Error("Failed to update presence in repository")
		return fmt.Errorf("service: could not update presence: %w", err)
	}
	return nil
}
