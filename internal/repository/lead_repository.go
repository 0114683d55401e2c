package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// LeadFilter captures list query parameters. Nil fields mean "no filter".
type LeadFilter struct {
	Search *string
	Status *domain.LeadStatus
	Source *string
	Limit  int
	Offset int
}

// LeadRepository encapsulates lead persistence.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]domain.Lead, error)
	Count(ctx context.Context, filter LeadFilter) (int, error)
	CountAll(ctx context.Context) (int, error)
	CountVerified(ctx context.Context) (int, error)
	CountFollowUpsToday(ctx context.Context) (int, error)
}

type leadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository instantiates the repository.
func NewLeadRepository(pool *pgxpool.Pool) LeadRepository {
	return &leadRepository{pool: pool}
}

const leadColumns = `id, name, company, email, phone, address, website, status, source,
               tags, score, notes, verified, last_contact, next_follow_up, created_at, updated_at`

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	const query = `
        INSERT INTO leads (name, company, email, phone, address, website, status, source, tags, score, notes, verified, last_contact, next_follow_up)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		lead.Name,
		lead.Company,
		lead.Email,
		lead.Phone,
		lead.Address,
		lead.Website,
		lead.Status,
		lead.Source,
		lead.Tags,
		lead.Score,
		lead.Notes,
		lead.Verified,
		lead.LastContact,
		lead.NextFollowUp,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
}

func (r *leadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	const query = `
        UPDATE leads SET name=$1, company=$2, email=$3, phone=$4, address=$5, website=$6,
            status=$7, source=$8, tags=$9, score=$10, notes=$11, verified=$12,
            last_contact=$13, next_follow_up=$14, updated_at=NOW()
        WHERE id=$15`
	cmd, err := r.pool.Exec(ctx, query,
		lead.Name,
		lead.Company,
		lead.Email,
		lead.Phone,
		lead.Address,
		lead.Website,
		lead.Status,
		lead.Source,
		lead.Tags,
		lead.Score,
		lead.Notes,
		lead.Verified,
		lead.LastContact,
		lead.NextFollowUp,
		lead.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leadRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id=$1`, leadColumns)
	var lead domain.Lead
	if err := r.pool.QueryRow(ctx, query, id).Scan(leadFields(&lead)...); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) List(ctx context.Context, filter LeadFilter) ([]domain.Lead, error) {
	clauses, args := leadClauses(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM leads WHERE %s ORDER BY created_at ASC, id ASC LIMIT %d OFFSET %d`,
		leadColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeads(rows)
}

func (r *leadRepository) Count(ctx context.Context, filter LeadFilter) (int, error) {
	clauses, args := leadClauses(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM leads WHERE %s`, strings.Join(clauses, " AND "))

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *leadRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, err
}

func (r *leadRepository) CountVerified(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads WHERE verified = TRUE`).Scan(&count)
	return count, err
}

func (r *leadRepository) CountFollowUpsToday(ctx context.Context) (int, error) {
	const query = `
        SELECT COUNT(*) FROM leads
        WHERE next_follow_up >= date_trunc('day', NOW())
          AND next_follow_up < date_trunc('day', NOW()) + INTERVAL '1 day'`
	var count int
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}

func leadClauses(filter LeadFilter) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(name) LIKE %s OR LOWER(company) LIKE %s OR LOWER(email) LIKE %s)",
			placeholder, placeholder, placeholder))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Source != nil {
		args = append(args, *filter.Source)
		clauses = append(clauses, fmt.Sprintf("source=$%d", len(args)))
	}
	return clauses, args
}

func leadFields(lead *domain.Lead) []any {
	return []any{
		&lead.ID,
		&lead.Name,
		&lead.Company,
		&lead.Email,
		&lead.Phone,
		&lead.Address,
		&lead.Website,
		&lead.Status,
		&lead.Source,
		&lead.Tags,
		&lead.Score,
		&lead.Notes,
		&lead.Verified,
		&lead.LastContact,
		&lead.NextFollowUp,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	}
}

func scanLeads(rows pgx.Rows) ([]domain.Lead, error) {
	var result []domain.Lead
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(leadFields(&lead)...); err != nil {
			return nil, err
		}
		result = append(result, lead)
	}
	return result, rows.Err()
}
