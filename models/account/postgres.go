package account

import (
	"context"
	"errors"

	"github.com/Haven-Estates/haven-api/connections"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres is the PostgreSQL repository for accounts
type Postgres struct{}

// Create creates a new account
func (p *Postgres) Create(email, passwordHash, role string) (*Account, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	var account Account
	err := pool.QueryRow(ctx, `
		INSERT INTO accounts (email, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, role, created_at, updated_at
	`, email, passwordHash, role).Scan(
		&account.ID,
		&account.Email,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return &account, nil
}

// FindByEmail finds an account by email
func (p *Postgres) FindByEmail(email string) (*Account, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	var account Account
	err := pool.QueryRow(ctx, `
		SELECT id, email, password, role, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`, email).Scan(
		&account.ID,
		&account.Email,
		&account.Password,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

// FindByID finds an account by ID
func (p *Postgres) FindByID(id int) (*Account, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	var account Account
	err := pool.QueryRow(ctx, `
		SELECT id, email, password, role, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`, id).Scan(
		&account.ID,
		&account.Email,
		&account.Password,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}
