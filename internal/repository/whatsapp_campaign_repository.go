package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// WhatsAppCampaignRepository encapsulates WhatsApp campaign persistence.
type WhatsAppCampaignRepository interface {
	Create(ctx context.Context, campaign *domain.WhatsAppCampaign) error
	Update(ctx context.Context, campaign *domain.WhatsAppCampaign) error
	GetByID(ctx context.Context, id string) (*domain.WhatsAppCampaign, error)
	List(ctx context.Context, limit, offset int) ([]domain.WhatsAppCampaign, error)
}

type whatsappCampaignRepository struct {
	pool *pgxpool.Pool
}

// NewWhatsAppCampaignRepository instantiates the repository.
func NewWhatsAppCampaignRepository(pool *pgxpool.Pool) WhatsAppCampaignRepository {
	return &whatsappCampaignRepository{pool: pool}
}

func (r *whatsappCampaignRepository) Create(ctx context.Context, campaign *domain.WhatsAppCampaign) error {
	const query = `
        INSERT INTO whatsapp_campaigns (name, message, status, recipients, sent, delivered, read, replied, failed)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		campaign.Name,
		campaign.Message,
		campaign.Status,
		campaign.Recipients,
		campaign.Sent,
		campaign.Delivered,
		campaign.Read,
		campaign.Replied,
		campaign.Failed,
	).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
}

func (r *whatsappCampaignRepository) Update(ctx context.Context, campaign *domain.WhatsAppCampaign) error {
	const query = `
        UPDATE whatsapp_campaigns SET name=$1, message=$2, status=$3, recipients=$4,
            sent=$5, delivered=$6, read=$7, replied=$8, failed=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		campaign.Name,
		campaign.Message,
		campaign.Status,
		campaign.Recipients,
		campaign.Sent,
		campaign.Delivered,
		campaign.Read,
		campaign.Replied,
		campaign.Failed,
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

func (r *whatsappCampaignRepository) GetByID(ctx context.Context, id string) (*domain.WhatsAppCampaign, error) {
	const query = `
        SELECT id, name, message, status, recipients, sent, delivered, read, replied, failed, created_at, updated_at
        FROM whatsapp_campaigns WHERE id=$1`
	var c domain.WhatsAppCampaign
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Message, &c.Status, &c.Recipients,
		&c.Sent, &c.Delivered, &c.Read, &c.Replied, &c.Failed,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *whatsappCampaignRepository) List(ctx context.Context, limit, offset int) ([]domain.WhatsAppCampaign, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, name, message, status, recipients, sent, delivered, read, replied, failed, created_at, updated_at
        FROM whatsapp_campaigns ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.WhatsAppCampaign
	for rows.Next() {
		var c domain.WhatsAppCampaign
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Message, &c.Status, &c.Recipients,
			&c.Sent, &c.Delivered, &c.Read, &c.Replied, &c.Failed,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
