package repository

import (
	"context"
	"fmt"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) service.NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create создает новую запись оповещения в бд
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (title, message, type, sector, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.Sector,
		notification.Priority,
	).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListNotifications возвращает оповещения сектора с пагинацией
func (r *NotificationRepository) ListNotifications(ctx context.Context, sector string, page, pageSize int) ([]*models.Notification, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, title, message, type, COALESCE(sector, ''), COALESCE(priority, ''), created_at
		FROM notifications
		WHERE ($1 = '' OR sector = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, sector, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.Sector,
			&n.Priority,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error notifications iteration: %w", err)
	}
	return notifications, nil
}
