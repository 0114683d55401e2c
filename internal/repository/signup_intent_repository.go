package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// SignupIntentRepository records registration saga progress.
type SignupIntentRepository interface {
	Create(ctx context.Context, intent *domain.SignupIntent) error
	SetIdentity(ctx context.Context, id, identityID string) error
	SetStatus(ctx context.Context, id string, status domain.IntentStatus) error
	ListStalePending(ctx context.Context, olderThan time.Time) ([]domain.SignupIntent, error)
}

type signupIntentRepository struct {
	pool *pgxpool.Pool
}

// NewSignupIntentRepository instantiates the repository.
func NewSignupIntentRepository(pool *pgxpool.Pool) SignupIntentRepository {
	return &signupIntentRepository{pool: pool}
}

func (r *signupIntentRepository) Create(ctx context.Context, intent *domain.SignupIntent) error {
	const query = `
        INSERT INTO signup_intents (email, status)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, intent.Email, intent.Status).
		Scan(&intent.ID, &intent.CreatedAt, &intent.UpdatedAt)
}

func (r *signupIntentRepository) SetIdentity(ctx context.Context, id, identityID string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE signup_intents SET identity_id=$1, updated_at=NOW() WHERE id=$2`,
		identityID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *signupIntentRepository) SetStatus(ctx context.Context, id string, status domain.IntentStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE signup_intents SET status=$1, updated_at=NOW() WHERE id=$2`,
		status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *signupIntentRepository) ListStalePending(ctx context.Context, olderThan time.Time) ([]domain.SignupIntent, error) {
	const query = `
        SELECT id, email, identity_id, status, created_at, updated_at
        FROM signup_intents
        WHERE status=$1 AND created_at < $2
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, domain.IntentPending, olderThan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SignupIntent
	for rows.Next() {
		var intent domain.SignupIntent
		if err := rows.Scan(
			&intent.ID,
			&intent.Email,
			&intent.IdentityID,
			&intent.Status,
			&intent.CreatedAt,
			&intent.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, intent)
	}
	return result, rows.Err()
}
