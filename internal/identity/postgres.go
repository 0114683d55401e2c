package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadsfynder/leadsfynder-api/internal/auth"
)

const uniqueViolation = "23505"

type postgresProvider struct {
	pool       *pgxpool.Pool
	bcryptCost int
}

// NewPostgresProvider returns a Provider backed by the auth_accounts table.
func NewPostgresProvider(pool *pgxpool.Pool, bcryptCost int) Provider {
	return &postgresProvider{pool: pool, bcryptCost: bcryptCost}
}

func (p *postgresProvider) CreateAccount(ctx context.Context, email, password string, emailVerified bool) (*Account, error) {
	hash, err := auth.HashPassword(password, p.bcryptCost)
	if err != nil {
		return nil, err
	}

	const query = `
        INSERT INTO auth_accounts (email, password_hash, email_verified)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	account := &Account{Email: email, EmailVerified: emailVerified}
	if err := p.pool.QueryRow(ctx, query, email, hash, emailVerified).Scan(
		&account.ID,
		&account.CreatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return account, nil
}

func (p *postgresProvider) Authenticate(ctx context.Context, email, password string) (*Account, error) {
	const query = `
        SELECT id, email, password_hash, email_verified, created_at
        FROM auth_accounts WHERE email=$1`

	var account Account
	var hash string
	if err := p.pool.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&hash,
		&account.EmailVerified,
		&account.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.ComparePassword(hash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &account, nil
}

func (p *postgresProvider) FindByEmail(ctx context.Context, email string) (*Account, error) {
	const query = `
        SELECT id, email, email_verified, created_at
        FROM auth_accounts WHERE email=$1`

	var account Account
	if err := p.pool.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.EmailVerified,
		&account.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (p *postgresProvider) DeleteAccount(ctx context.Context, id string) error {
	cmd, err := p.pool.Exec(ctx, `DELETE FROM auth_accounts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}
