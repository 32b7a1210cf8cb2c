package page

import (
	"context"
	"errors"

	"github.com/Haven-Estates/haven-api/connections"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres is the PostgreSQL repository for pages
type Postgres struct{}

const pageColumns = `id, name, title, description, keywords, sections, created_at, updated_at`

func scanPage(row pgx.Row) (*Page, error) {
	var p Page
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Description,
		&p.Keywords,
		&p.Sections,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	if p.Sections == nil {
		p.Sections = []Section{}
	}
	return &p, nil
}

// List returns all pages
func (pg *Postgres) List() ([]*Page, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	rows, err := pool.Query(ctx, `
		SELECT `+pageColumns+`
		FROM pages
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*Page{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, rows.Err()
}

// FindByName finds a page by its slug
func (pg *Postgres) FindByName(name string) (*Page, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		SELECT `+pageColumns+`
		FROM pages
		WHERE name = $1
	`, name)

	return scanPage(row)
}

// Create inserts a new page; the slug must be unique
func (pg *Postgres) Create(p *Page) (*Page, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		INSERT INTO pages (name, title, description, keywords, sections)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+pageColumns+`
	`, p.Name, p.Title, p.Description, p.Keywords, p.Sections)

	created, err := scanPage(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrNameExists
		}
		return nil, err
	}
	return created, nil
}

// Update replaces the page content and metadata for a slug
func (pg *Postgres) Update(name string, p *Page) (*Page, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		UPDATE pages
		SET title = $1, description = $2, keywords = $3, sections = $4, updated_at = NOW()
		WHERE name = $5
		RETURNING `+pageColumns+`
	`, p.Title, p.Description, p.Keywords, p.Sections, name)

	return scanPage(row)
}

// Delete deletes a page. Deleting an absent slug is a no-op, matching
// the admin dashboard's idempotent delete.
func (pg *Postgres) Delete(name string) error {
	ctx := context.Background()
	pool := connections.Postgres()

	_, err := pool.Exec(ctx, `DELETE FROM pages WHERE name = $1`, name)
	return err
}
