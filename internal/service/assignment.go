package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// centerMissionCap - жесткий лимит одновременных незакрытых миссий на один хаб
const centerMissionCap = 4

// earthRadiusKm - радиус сферической Земли для формулы гаверсинуса
const earthRadiusKm = 6371

// AssignmentRepository определяет контракт для работы с назначениями,
// задачами волонтеров и полевыми отчетами (дочерние строки инцидента)
type AssignmentRepository interface {
	AddAssignment(ctx context.Context, incidentID, assigneeID uuid.UUID, kind models.AssigneeKind) error
	RemoveAssignment(ctx context.Context, incidentID, assigneeID uuid.UUID, kind models.AssigneeKind) error
	IsAssigned(ctx context.Context, incidentID, assigneeID uuid.UUID, kind models.AssigneeKind) (bool, error)
	CountActiveMissions(ctx context.Context, assigneeID uuid.UUID, kind models.AssigneeKind, excludeIncident uuid.UUID) (int, error)
	BusyVolunteers(ctx context.Context, excludeIncident uuid.UUID) (map[uuid.UUID]bool, error)
	CenterMissionLoads(ctx context.Context) (map[uuid.UUID]int, error)
	UpsertTask(ctx context.Context, incidentID, volunteerID uuid.UUID, status models.TaskStatus) error
	AppendFieldReport(ctx context.Context, report *models.FieldReport) error
}

// DirectoryRepository определяет контракт для чтения реестров
// профилей, волонтеров и ресурсных центров
type DirectoryRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	SetPresence(ctx context.Context, profileID uuid.UUID, online bool) error
	ListVolunteersByCity(ctx context.Context, city string) ([]*models.Volunteer, error)
	ListCentersByCity(ctx context.Context, city string) ([]*models.ResourceCenter, error)
}

// AssignmentService определяет контракт для движка назначений
type AssignmentService interface {
	AssignVolunteer(ctx context.Context, actor models.Actor, incidentID, volunteerID uuid.UUID) error
	UnassignVolunteer(ctx context.Context, actor models.Actor, incidentID, volunteerID uuid.UUID) error
	AssignCenter(ctx context.Context, actor models.Actor, incidentID, centerID uuid.UUID) error
	UnassignCenter(ctx context.Context, actor models.Actor, incidentID, centerID uuid.UUID) error
	RankNearbyVolunteers(ctx context.Context, actor models.Actor, incidentID uuid.UUID) ([]*models.RankedVolunteer, error)
	RankNearbyCenters(ctx context.Context, actor models.Actor, incidentID uuid.UUID) ([]*models.RankedCenter, error)
}

type assignmentService struct {
	incidents   IncidentRepository
	assignments AssignmentRepository
	directory   DirectoryRepository
	logger      *logrus.Logger
}

func NewAssignmentService(incidents IncidentRepository, assignments AssignmentRepository, directory DirectoryRepository, logger *logrus.Logger) AssignmentService {
	return &assignmentService{
		incidents:   incidents,
		assignments: assignments,
		directory:   directory,
		logger:      logger,
	}
}

// activeIncident загружает инцидент и проверяет, что он в статусе active.
// Назначения имеют смысл только для активных инцидентов.
func (s *assignmentService) activeIncident(ctx context.Context, incidentID uuid.UUID) (*models.Incident, error) {
	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: incident %s: %w", incidentID, ErrNotFound)
	}
	if incident.Status != models.StatusActive {
		return nil, fmt.Errorf("service: incident in status %q: %w", incident.Status, ErrInvalidState)
	}
	return incident, nil
}

// AssignVolunteer добавляет волонтера в назначения активного инцидента.
// Гейты: волонтер онлайн и не занят в другом незакрытом инциденте.
// Вставка идемпотентна (ON CONFLICT DO NOTHING в репозитории).
func (s *assignmentService) AssignVolunteer(ctx context.Context, actor models.Actor, incidentID, volunteerID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assignment",
		"method":       "AssignVolunteer",
		"incident_id":  incidentID,
		"volunteer_id": volunteerID,
		"actor":        actor.ID,
	})
	log.Info("Attempting to assign volunteer")

	if !actor.CanCommand() {
		return fmt.Errorf("service: assign volunteer: %w", ErrForbidden)
	}

	if _, err := s.activeIncident(ctx, incidentID); err != nil {
		return err
	}

	profile, err := s.directory.GetProfile(ctx, volunteerID)
	if err != nil {
		log.WithError(err).Warn("Volunteer profile not found")
		return fmt.Errorf("service: volunteer %s: %w", volunteerID, ErrNotFound)
	}
	if !profile.IsOnline {
		log.Info("Volunteer is offline, assignment rejected")
		return fmt.Errorf("service: assign volunteer: %w", ErrVolunteerOffline)
	}

	busy, err := s.assignments.CountActiveMissions(ctx, volunteerID, models.AssigneeVolunteer, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to count active missions")
		return fmt.Errorf("service: could not check mission load: %w", err)
	}
	if busy > 0 {
		log.Info("Volunteer is engaged elsewhere, assignment rejected")
		return fmt.Errorf("service: assign volunteer: %w", ErrMissionConflict)
	}

	if err := s.assignments.AddAssignment(ctx, incidentID, volunteerID, models.AssigneeVolunteer); err != nil {
		log.WithError(err).Error("Failed to add assignment in repository")
		return fmt.Errorf("service: could not assign volunteer: %w", err)
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Volunteer assigned successfully")
	return nil
}

// UnassignVolunteer снимает волонтера с инцидента. Гейтов пригодности нет,
// операция разрешена пока инцидент не закрыт.
func (s *assignmentService) UnassignVolunteer(ctx context.Context, actor models.Actor, incidentID, volunteerID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assignment",
		"method":       "UnassignVolunteer",
		"incident_id":  incidentID,
		"volunteer_id": volunteerID,
		"actor":        actor.ID,
	})
	log.Info("Attempting to unassign volunteer")

	if !actor.CanCommand() {
		return fmt.Errorf("service: unassign volunteer: %w", ErrForbidden)
	}

	if _, err := s.activeIncident(ctx, incidentID); err != nil {
		return err
	}

	if err := s.assignments.RemoveAssignment(ctx, incidentID, volunteerID, models.AssigneeVolunteer); err != nil {
		log.WithError(err).Error("Failed to remove assignment in repository")
		return fmt.Errorf("service: could not unassign volunteer: %w", err)
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Volunteer unassigned successfully")
	return nil
}

// AssignCenter привязывает ресурсный центр к активному инциденту.
// У центров нет понятия присутствия, гейт один: не больше
// centerMissionCap незакрытых миссий одновременно.
func (s *assignmentService) AssignCenter(ctx context.Context, actor models.Actor, incidentID, centerID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "AssignCenter",
		"incident_id": incidentID,
		"center_id":   centerID,
		"actor":       actor.ID,
	})
	log.Info("Attempting to assign resource center")

	if !actor.CanCommand() {
		return fmt.Errorf("service: assign center: %w", ErrForbidden)
	}

	if _, err := s.activeIncident(ctx, incidentID); err != nil {
		return err
	}

	load, err := s.assignments.CountActiveMissions(ctx, centerID, models.AssigneeCenter, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to count center mission load")
		return fmt.Errorf("service: could not check hub load: %w", err)
	}
	if load >= centerMissionCap {
		log.WithField("mission_load", load).Info("Center is at capacity, assignment rejected")
		return fmt.Errorf("service: assign center: %w", ErrCenterCapacity)
	}

	if err := s.assignments.AddAssignment(ctx, incidentID, centerID, models.AssigneeCenter); err != nil {
		log.WithError(err).Error("Failed to add center assignment in repository")
		return fmt.Errorf("service: could not assign center: %w", err)
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Resource center assigned successfully")
	return nil
}

// UnassignCenter снимает ресурсный центр с инцидента
func (s *assignmentService) UnassignCenter(ctx context.Context, actor models.Actor, incidentID, centerID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "UnassignCenter",
		"incident_id": incidentID,
		"center_id":   centerID,
		"actor":       actor.ID,
	})
	log.Info("Attempting to unassign resource center")

	if !actor.CanCommand() {
		return fmt.Errorf("service: unassign center: %w", ErrForbidden)
	}

	if _, err := s.activeIncident(ctx, incidentID); err != nil {
		return err
	}

	if err := s.assignments.RemoveAssignment(ctx, incidentID, centerID, models.AssigneeCenter); err != nil {
		log.WithError(err).Error("Failed to remove center assignment in repository")
		return fmt.Errorf("service: could not unassign center: %w", err)
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Resource center unassigned successfully")
	return nil
}

// RankNearbyVolunteers возвращает волонтеров сектора, отсортированных по
// удаленности от инцидента. Read-only операция, мутаций нет.
func (s *assignmentService) RankNearbyVolunteers(ctx context.Context, actor models.Actor, incidentID uuid.UUID) ([]*models.RankedVolunteer, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "RankNearbyVolunteers",
		"incident_id": incidentID,
	})

	if !actor.CanCommand() {
		return nil, fmt.Errorf("service: rank volunteers: %w", ErrForbidden)
	}

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: incident %s: %w", incidentID, ErrNotFound)
	}

	volunteers, err := s.directory.ListVolunteersByCity(ctx, incident.City)
	if err != nil {
		log.WithError(err).Error("Failed to list sector volunteers")
		return nil, fmt.Errorf("service: could not list volunteers: %w", err)
	}

	busy, err := s.assignments.BusyVolunteers(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to load volunteer mission map")
		return nil, fmt.Errorf("service: could not load mission map: %w", err)
	}

	ranked := make([]*models.RankedVolunteer, 0, len(volunteers))
	for _, v := range volunteers {
		ranked = append(ranked, &models.RankedVolunteer{
			Volunteer:     *v,
			DistanceKm:    haversineKm(incident.Latitude, incident.Longitude, v.Latitude, v.Longitude),
			BusyElsewhere: busy[v.ProfileID],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	log.WithField("count", len(ranked)).Info("Nearby volunteers ranked")
	return ranked, nil
}

// RankNearbyCenters возвращает хабы сектора по возрастанию дистанции
// с текущей миссионной нагрузкой каждого
func (s *assignmentService) RankNearbyCenters(ctx context.Context, actor models.Actor, incidentID uuid.UUID) ([]*models.RankedCenter, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "RankNearbyCenters",
		"incident_id": incidentID,
	})

	if !actor.CanCommand() {
		return nil, fmt.Errorf("service: rank centers: %w", ErrForbidden)
	}

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: incident %s: %w", incidentID, ErrNotFound)
	}

	centers, err := s.directory.ListCentersByCity(ctx, incident.City)
	if err != nil {
		log.WithError(err).Error("Failed to list sector centers")
		return nil, fmt.Errorf("service: could not list centers: %w", err)
	}

	loads, err := s.assignments.CenterMissionLoads(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load center mission loads")
		return nil, fmt.Errorf("service: could not load hub loads: %w", err)
	}

	ranked := make([]*models.RankedCenter, 0, len(centers))
	for _, c := range centers {
		ranked = append(ranked, &models.RankedCenter{
			ResourceCenter: *c,
			DistanceKm:     haversineKm(incident.Latitude, incident.Longitude, c.Latitude, c.Longitude),
			MissionLoad:    loads[c.ID],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	log.WithField("count", len(ranked)).Info("Nearby centers ranked")
	return ranked, nil
}

// haversineKm считает дистанцию по большому кругу между двумя координатами
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
