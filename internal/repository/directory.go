package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DirectoryRepository читает реестры профилей, волонтеров и ресурсных
// центров. Записи принадлежат внешнему провайдеру идентичности, ядро
// мутирует только флаг присутствия.
type DirectoryRepository struct {
	db *pgxpool.Pool
}

func NewDirectoryRepository(db *pgxpool.Pool) service.DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// GetProfile возвращает профиль пользователя по его UUID
func (r *DirectoryRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT
			id,
			email,
			role,
			city,
			COALESCE(full_name, ''),
			COALESCE(phone_number, ''),
			is_approved,
			is_online,
			COALESCE(specialization, ''),
			COALESCE(experience_years, 0),
			COALESCE(blood_group, '')
		FROM profiles
		WHERE id = $1;
	`
	profile := &models.Profile{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Email,
		&profile.Role,
		&profile.City,
		&profile.FullName,
		&profile.PhoneNumber,
		&profile.IsApproved,
		&profile.IsOnline,
		&profile.Specialization,
		&profile.ExperienceYears,
		&profile.BloodGroup,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return profile, nil
}

// SetPresence переключает флаг присутствия профиля
func (r *DirectoryRepository) SetPresence(ctx context.Context, profileID uuid.UUID, online bool) error {
	query := `UPDATE profiles SET is_online = $2 WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, profileID, online)
	if err != nil {
		return fmt.Errorf("failed to set presence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile with id %s not found for presence update", profileID)
	}
	return nil
}

// ListVolunteersByCity возвращает полевые единицы сектора с их флагом присутствия
func (r *DirectoryRepository) ListVolunteersByCity(ctx context.Context, city string) ([]*models.Volunteer, error) {
	query := `
		SELECT
			v.id,
			v.profile_id,
			v.full_name,
			v.city,
			v.status,
			v.skills,
			COALESCE(v.latitude, 0),
			COALESCE(v.longitude, 0),
			p.is_online
		FROM volunteers v
		JOIN profiles p ON p.id = v.profile_id
		WHERE v.city = $1;
	`
	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := make([]*models.Volunteer, 0)
	for rows.Next() {
		v := &models.Volunteer{}
		err := rows.Scan(
			&v.ID,
			&v.ProfileID,
			&v.FullName,
			&v.City,
			&v.Status,
			&v.Skills,
			&v.Latitude,
			&v.Longitude,
			&v.IsOnline,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error volunteers iteration: %w", err)
	}
	return volunteers, nil
}

// ListCentersByCity возвращает ресурсные центры сектора
func (r *DirectoryRepository) ListCentersByCity(ctx context.Context, city string) ([]*models.ResourceCenter, error) {
	query := `
		SELECT id, name, city, address, latitude, longitude, type
		FROM resource_centers
		WHERE city = $1;
	`
	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource centers: %w", err)
	}
	defer rows.Close()

	centers := make([]*models.ResourceCenter, 0)
	for rows.Next() {
		c := &models.ResourceCenter{}
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.City,
			&c.Address,
			&c.Latitude,
			&c.Longitude,
			&c.Type,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource center row: %w", err)
		}
		centers = append(centers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error centers iteration: %w", err)
	}
	return centers, nil
}
