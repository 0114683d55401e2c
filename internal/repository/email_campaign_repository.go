package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// EmailCampaignTotals aggregates delivery counters across campaigns.
type EmailCampaignTotals struct {
	Sent    int
	Opened  int
	Replied int
}

// EmailCampaignRepository encapsulates email campaign persistence.
type EmailCampaignRepository interface {
	Create(ctx context.Context, campaign *domain.EmailCampaign) error
	Update(ctx context.Context, campaign *domain.EmailCampaign) error
	GetByID(ctx context.Context, id string) (*domain.EmailCampaign, error)
	List(ctx context.Context, limit, offset int) ([]domain.EmailCampaign, error)
	Totals(ctx context.Context) (EmailCampaignTotals, error)
}

type emailCampaignRepository struct {
	pool *pgxpool.Pool
}

// NewEmailCampaignRepository instantiates the repository.
func NewEmailCampaignRepository(pool *pgxpool.Pool) EmailCampaignRepository {
	return &emailCampaignRepository{pool: pool}
}

func (r *emailCampaignRepository) Create(ctx context.Context, campaign *domain.EmailCampaign) error {
	const query = `
        INSERT INTO email_campaigns (name, subject, template, status, recipients, sent, delivered, opened, replied, bounced)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		campaign.Name,
		campaign.Subject,
		campaign.Template,
		campaign.Status,
		campaign.Recipients,
		campaign.Sent,
		campaign.Delivered,
		campaign.Opened,
		campaign.Replied,
		campaign.Bounced,
	).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
}

func (r *emailCampaignRepository) Update(ctx context.Context, campaign *domain.EmailCampaign) error {
	const query = `
        UPDATE email_campaigns SET name=$1, subject=$2, template=$3, status=$4, recipients=$5,
            sent=$6, delivered=$7, opened=$8, replied=$9, bounced=$10, updated_at=NOW()
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		campaign.Name,
		campaign.Subject,
		campaign.Template,
		campaign.Status,
		campaign.Recipients,
		campaign.Sent,
		campaign.Delivered,
		campaign.Opened,
		campaign.Replied,
		campaign.Bounced,
		campaign.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *emailCampaignRepository) GetByID(ctx context.Context, id string) (*domain.EmailCampaign, error) {
	const query = `
        SELECT id, name, subject, template, status, recipients, sent, delivered, opened, replied, bounced, created_at, updated_at
        FROM email_campaigns WHERE id=$1`
	var c domain.EmailCampaign
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Subject, &c.Template, &c.Status, &c.Recipients,
		&c.Sent, &c.Delivered, &c.Opened, &c.Replied, &c.Bounced,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *emailCampaignRepository) List(ctx context.Context, limit, offset int) ([]domain.EmailCampaign, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, name, subject, template, status, recipients, sent, delivered, opened, replied, bounced, created_at, updated_at
        FROM email_campaigns ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EmailCampaign
	for rows.Next() {
		var c domain.EmailCampaign
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Subject, &c.Template, &c.Status, &c.Recipients,
			&c.Sent, &c.Delivered, &c.Opened, &c.Replied, &c.Bounced,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *emailCampaignRepository) Totals(ctx context.Context) (EmailCampaignTotals, error) {
	const query = `
        SELECT COALESCE(SUM(sent),0), COALESCE(SUM(opened),0), COALESCE(SUM(replied),0)
        FROM email_campaigns`
	var totals EmailCampaignTotals
	err := r.pool.QueryRow(ctx, query).Scan(&totals.Sent, &totals.Opened, &totals.Replied)
	return totals, err
}
