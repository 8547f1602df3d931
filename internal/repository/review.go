package repository

import (
	"context"
	"fmt"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) service.ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create создает новую запись отзыва в бд
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (full_name, role, content, rating, is_verified, incident_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		review.FullName,
		review.Role,
		review.Content,
		review.Rating,
		review.IsVerified,
		review.IncidentID,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListReviews возвращает отзывы с пагинацией, новые первыми
func (r *ReviewRepository) ListReviews(ctx context.Context, page, pageSize int) ([]*models.Review, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, full_name, role, content, rating, is_verified, incident_id, created_at
		FROM reviews
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*models.Review, 0)
	for rows.Next() {
		review := &models.Review{}
		err := rows.Scan(
			&review.ID,
			&review.FullName,
			&review.Role,
			&review.Content,
			&review.Rating,
			&review.IsVerified,
			&review.IncidentID,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reviews iteration: %w", err)
	}
	return reviews, nil
}

// AverageRating возвращает средний рейтинг всех отзывов
func (r *ReviewRepository) AverageRating(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews;`

	var rating float64
	if err := r.db.QueryRow(ctx, query).Scan(&rating); err != nil {
		return 0, fmt.Errorf("failed to get average rating: %w", err)
	}
	return rating, nil
}
