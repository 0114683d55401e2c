package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// SMTPConfigRepository encapsulates SMTP sender config persistence.
type SMTPConfigRepository interface {
	Create(ctx context.Context, cfg *domain.SMTPConfig) error
	Update(ctx context.Context, cfg *domain.SMTPConfig) error
	GetByID(ctx context.Context, id string) (*domain.SMTPConfig, error)
	List(ctx context.Context) ([]domain.SMTPConfig, error)
}

type smtpConfigRepository struct {
	pool *pgxpool.Pool
}

// NewSMTPConfigRepository instantiates the repository.
func NewSMTPConfigRepository(pool *pgxpool.Pool) SMTPConfigRepository {
	return &smtpConfigRepository{pool: pool}
}

func (r *smtpConfigRepository) Create(ctx context.Context, cfg *domain.SMTPConfig) error {
	const query = `
        INSERT INTO smtp_configs (name, provider, host, port, username, password, daily_limit, sent_today, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		cfg.Name,
		cfg.Provider,
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.DailyLimit,
		cfg.SentToday,
		cfg.Status,
	).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
}

func (r *smtpConfigRepository) Update(ctx context.Context, cfg *domain.SMTPConfig) error {
	const query = `
        UPDATE smtp_configs SET name=$1, provider=$2, host=$3, port=$4, username=$5, password=$6,
            daily_limit=$7, sent_today=$8, status=$9, last_used_at=$10, updated_at=NOW()
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		cfg.Name,
		cfg.Provider,
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.DailyLimit,
		cfg.SentToday,
		cfg.Status,
		cfg.LastUsedAt,
		cfg.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *smtpConfigRepository) GetByID(ctx context.Context, id string) (*domain.SMTPConfig, error) {
	const query = `
        SELECT id, name, provider, host, port, username, password, daily_limit, sent_today, status, last_used_at, created_at, updated_at
        FROM smtp_configs WHERE id=$1`
	var cfg domain.SMTPConfig
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&cfg.ID, &cfg.Name, &cfg.Provider, &cfg.Host, &cfg.Port, &cfg.Username, &cfg.Password,
		&cfg.DailyLimit, &cfg.SentToday, &cfg.Status, &cfg.LastUsedAt,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *smtpConfigRepository) List(ctx context.Context) ([]domain.SMTPConfig, error) {
	const query = `
        SELECT id, name, provider, host, port, username, password, daily_limit, sent_today, status, last_used_at, created_at, updated_at
        FROM smtp_configs ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SMTPConfig
	for rows.Next() {
		var cfg domain.SMTPConfig
		if err := rows.Scan(
			&cfg.ID, &cfg.Name, &cfg.Provider, &cfg.Host, &cfg.Port, &cfg.Username, &cfg.Password,
			&cfg.DailyLimit, &cfg.SentToday, &cfg.Status, &cfg.LastUsedAt,
			&cfg.CreatedAt, &cfg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, cfg)
	}
	return result, rows.Err()
}
