package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const incidentColumns = `
	id,
	title,
	description,
	COALESCE(address, ''),
	city,
	latitude,
	longitude,
	COALESCE(image_url, ''),
	severity,
	status,
	verified,
	reporter_id,
	COALESCE(reporter_name, ''),
	COALESCE(reporter_phone, ''),
	feedback_status,
	created_at,
	updated_at`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.Address,
		&incident.City,
		&incident.Latitude,
		&incident.Longitude,
		&incident.ImageURL,
		&incident.Severity,
		&incident.Status,
		&incident.Verified,
		&incident.ReporterID,
		&incident.ReporterName,
		&incident.ReporterPhone,
		&incident.FeedbackStatus,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (title, description, address, city, latitude, longitude, image_url,
			severity, status, verified, reporter_id, reporter_name, reporter_phone, feedback_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Title,
		incident.Description,
		incident.Address,
		incident.City,
		incident.Latitude,
		incident.Longitude,
		incident.ImageURL,
		incident.Severity,
		incident.Status,
		incident.Verified,
		incident.ReporterID,
		incident.ReporterName,
		incident.ReporterPhone,
		incident.FeedbackStatus,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID вместе с дочерними строками:
// назначениями, задачами волонтеров и полевыми отчетами
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}

	if err := r.hydrate(ctx, incident); err != nil {
		return nil, err
	}
	return incident, nil
}

// hydrate догружает дочерние строки инцидента
func (r *IncidentRepository) hydrate(ctx context.Context, incident *models.Incident) error {
	incident.AssignedVolunteers = make([]uuid.UUID, 0)
	incident.AssignedCenters = make([]uuid.UUID, 0)
	incident.VolunteerTasks = make(map[uuid.UUID]models.TaskStatus)
	incident.FieldReports = make([]*models.FieldReport, 0)

	rows, err := r.db.Query(ctx,
		`SELECT assignee_id, kind FROM incident_assignments WHERE incident_id = $1 ORDER BY created_at;`,
		incident.ID)
	if err != nil {
		return fmt.Errorf("failed to load incident assignments: %w", err)
	}
	for rows.Next() {
		var assigneeID uuid.UUID
		var kind models.AssigneeKind
		if err := rows.Scan(&assigneeID, &kind); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan assignment row: %w", err)
		}
		if kind == models.AssigneeCenter {
			incident.AssignedCenters = append(incident.AssignedCenters, assigneeID)
		} else {
			incident.AssignedVolunteers = append(incident.AssignedVolunteers, assigneeID)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating assignments: %w", err)
	}

	rows, err = r.db.Query(ctx,
		`SELECT volunteer_id, status FROM volunteer_tasks WHERE incident_id = $1;`,
		incident.ID)
	if err != nil {
		return fmt.Errorf("failed to load volunteer tasks: %w", err)
	}
	for rows.Next() {
		var volunteerID uuid.UUID
		var status models.TaskStatus
		if err := rows.Scan(&volunteerID, &status); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan task row: %w", err)
		}
		incident.VolunteerTasks[volunteerID] = status
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating tasks: %w", err)
	}

	rows, err = r.db.Query(ctx,
		`SELECT id, incident_id, volunteer_id, volunteer_name, text, created_at
		 FROM field_reports WHERE incident_id = $1 ORDER BY id;`,
		incident.ID)
	if err != nil {
		return fmt.Errorf("failed to load field reports: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		report := &models.FieldReport{}
		if err := rows.Scan(&report.ID, &report.IncidentID, &report.VolunteerID,
			&report.VolunteerName, &report.Text, &report.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan field report row: %w", err)
		}
		incident.FieldReports = append(incident.FieldReports, report)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating field reports: %w", err)
	}
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией.
// Дочерние строки в списках не гидрируются, полная картина - через GetByID.
func (r *IncidentRepository) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE 1=1`
	args := []any{}
	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if !filter.IncludeResolved {
		query += " AND status <> 'resolved'"
	}
	args = append(args, filter.PageSize, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// DebriefQueue возвращает закрытые инциденты, ожидающие дебрифинга
func (r *IncidentRepository) DebriefQueue(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE status = 'resolved' AND feedback_status = 'pending'
		ORDER BY updated_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch debrief queue: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in DebriefQueue: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error debrief queue iteration: %w", err)
	}
	return incidents, nil
}

// Activate условно переводит инцидент в active и выставляет verified.
// Возвращает false, если статус уже не допускает активацию (CAS-семантика).
func (r *IncidentRepository) Activate(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE incidents SET
			status = 'active',
			verified = TRUE,
			updated_at = NOW()
		WHERE id = $1 AND status IN ('reported', 'verifying');
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to activate incident: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Resolve условно закрывает активный инцидент и в той же транзакции
// снимает все назначения. Полевые отчеты и задачи не трогаются.
func (r *IncidentRepository) Resolve(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin resolve transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE incidents SET
			status = 'resolved',
			feedback_status = 'pending',
			updated_at = NOW()
		WHERE id = $1 AND status = 'active';
	`
	cmdTag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to resolve incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := tx.Exec(ctx, `DELETE FROM incident_assignments WHERE incident_id = $1;`, id); err != nil {
		return false, fmt.Errorf("failed to clear incident assignments: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit resolve transaction: %w", err)
	}
	return true, nil
}

// SetFeedbackStatus выставляет статус обратной связи инцидента
func (r *IncidentRepository) SetFeedbackStatus(ctx context.Context, id uuid.UUID, status models.FeedbackStatus) error {
	query := `
		UPDATE incidents SET
			feedback_status = $2,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to set feedback status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for feedback update", id)
	}
	return nil
}

// Stats возвращает сводные счетчики инцидентов
func (r *IncidentRepository) Stats(ctx context.Context) (*models.IncidentStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'resolved'),
			COUNT(*) FILTER (WHERE status = 'resolved' AND severity = 'critical')
		FROM incidents;
	`
	stats := &models.IncidentStats{}
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalIncidents, &stats.TotalResolved, &stats.CriticalStabilized)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident stats: %w", err)
	}
	return stats, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
