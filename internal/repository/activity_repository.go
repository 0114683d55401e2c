package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// ActivityRepository persists the dashboard activity feed.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	ListRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository instantiates the repository.
func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	const query = `
        INSERT INTO activities (type, message, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		activity.Type,
		activity.Message,
		activity.Status,
	).Scan(&activity.ID, &activity.CreatedAt)
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
        SELECT id, type, message, status, created_at
        FROM activities ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Message, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
