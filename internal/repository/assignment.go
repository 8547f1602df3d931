package repository

import (
	"context"
	"fmt"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssignmentRepository хранит назначения, задачи и полевые отчеты
// дочерними строками инцидента. Каждая мутация - одиночный атомарный
// оператор, потерянных обновлений при конкурентных записях нет.
type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) service.AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// AddAssignment добавляет назначение. Повторная вставка той же пары -
// no-op, множество без дубликатов обеспечивает первичный ключ.
func (r *AssignmentRepository) AddAssignment(ctx context.Context, incidentID, assigneeID uuid.UUID, kind models.AssigneeKind) error {
	query := `
		INSERT INTO incident_assignments (incident_id, assignee_id, kind)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, incidentID, assigneeID, kind); err != nil {
		return fmt.Errorf("failed to add assignment: %w", err)
	}
	return nil
}

// RemoveAssignment снимает назначение
func (r *AssignmentRepository) RemoveAssignment(ctx context.Context, incidentID, assigneeID uuid.UUID, kind models.AssigneeKind) error {
	query := `
		DELETE FROM incident_assignments
		WHERE incident_id = $1 AND assignee_id = $2 AND kind = $3;
	`
	if _, err := r.db.Exec(ctx, query, incidentID, assigneeID, kind); err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}

// IsAssigned проверяет членство в назначениях инцидента
func (r *AssignmentRepository) IsAssigned(ctx context.Context, incidentID, assigneeID uuid.UUID, kind models.AssigneeKind) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM incident_assignments
			WHERE incident_id = $1 AND assignee_id = $2 AND kind = $3
		);
	`
	var assigned bool
	if err := r.db.QueryRow(ctx, query, incidentID, assigneeID, kind).Scan(&assigned); err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return assigned, nil
}

// CountActiveMissions считает незакрытые инциденты, в которых занят
// волонтер или центр, исключая указанный инцидент
func (r *AssignmentRepository) CountActiveMissions(ctx context.Context, assigneeID uuid.UUID, kind models.AssigneeKind, excludeIncident uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM incident_assignments a
		JOIN incidents i ON i.id = a.incident_id
		WHERE a.assignee_id = $1
			AND a.kind = $2
			AND a.incident_id <> $3
			AND i.status <> 'resolved';
	`
	var count int
	if err := r.db.QueryRow(ctx, query, assigneeID, kind, excludeIncident).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active missions: %w", err)
	}
	return count, nil
}

// BusyVolunteers возвращает волонтеров, занятых в незакрытых инцидентах,
// кроме указанного
func (r *AssignmentRepository) BusyVolunteers(ctx context.Context, excludeIncident uuid.UUID) (map[uuid.UUID]bool, error) {
	query := `
		SELECT DISTINCT a.assignee_id
		FROM incident_assignments a
		JOIN incidents i ON i.id = a.incident_id
		WHERE a.kind = 'volunteer'
			AND a.incident_id <> $1
			AND i.status <> 'resolved';
	`
	rows, err := r.db.Query(ctx, query, excludeIncident)
	if err != nil {
		return nil, fmt.Errorf("failed to load busy volunteers: %w", err)
	}
	defer rows.Close()

	busy := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan busy volunteer row: %w", err)
		}
		busy[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error busy volunteers iteration: %w", err)
	}
	return busy, nil
}

// CenterMissionLoads возвращает количество незакрытых миссий на каждый хаб
func (r *AssignmentRepository) CenterMissionLoads(ctx context.Context) (map[uuid.UUID]int, error) {
	query := `
		SELECT a.assignee_id, COUNT(*)
		FROM incident_assignments a
		JOIN incidents i ON i.id = a.incident_id
		WHERE a.kind = 'center' AND i.status <> 'resolved'
		GROUP BY a.assignee_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load center mission loads: %w", err)
	}
	defer rows.Close()

	loads := make(map[uuid.UUID]int)
	for rows.Next() {
		var id uuid.UUID
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan center load row: %w", err)
		}
		loads[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error center loads iteration: %w", err)
	}
	return loads, nil
}

// UpsertTask перезаписывает статус задачи волонтера по инциденту
func (r *AssignmentRepository) UpsertTask(ctx context.Context, incidentID, volunteerID uuid.UUID, status models.TaskStatus) error {
	query := `
		INSERT INTO volunteer_tasks (incident_id, volunteer_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (incident_id, volunteer_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, incidentID, volunteerID, status); err != nil {
		return fmt.Errorf("failed to upsert volunteer task: %w", err)
	}
	return nil
}

// AppendFieldReport добавляет запись в журнал полевых отчетов.
// UPDATE и DELETE по этой таблице в коде отсутствуют, журнал только растет.
func (r *AssignmentRepository) AppendFieldReport(ctx context.Context, report *models.FieldReport) error {
	query := `
		INSERT INTO field_reports (incident_id, volunteer_id, volunteer_name, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.IncidentID,
		report.VolunteerID,
		report.VolunteerName,
		report.Text,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append field report: %w", err)
	}
	return nil
}
