package contact

import (
	"context"
	"errors"

	"github.com/Haven-Estates/haven-api/connections"
	"github.com/jackc/pgx/v5"
)

// Postgres is the PostgreSQL repository for the contact record
type Postgres struct{}

const contactColumns = `id, phone, email, address, social_links, youtube, map_link, about_text, working_hours, created_at, updated_at`

func scanInfo(row pgx.Row) (*Info, error) {
	var info Info
	err := row.Scan(
		&info.ID,
		&info.Phone,
		&info.Email,
		&info.Address,
		&info.SocialLinks,
		&info.YouTube,
		&info.MapLink,
		&info.AboutText,
		&info.WorkingHours,
		&info.CreatedAt,
		&info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactNotSet
		}
		return nil, err
	}
	if info.Phone == nil {
		info.Phone = []string{}
	}
	if info.Email == nil {
		info.Email = []string{}
	}
	if info.Address == nil {
		info.Address = []string{}
	}
	if info.SocialLinks == nil {
		info.SocialLinks = []SocialLink{}
	}
	return &info, nil
}

// Get returns the contact record
func (pg *Postgres) Get() (*Info, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		SELECT `+contactColumns+`
		FROM contact_info
		ORDER BY id
		LIMIT 1
	`)

	return scanInfo(row)
}

// Upsert creates the contact record or replaces the existing one
func (pg *Postgres) Upsert(info *Info) (*Info, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	current, err := pg.Get()
	if err != nil && !errors.Is(err, ErrContactNotSet) {
		return nil, err
	}

	var row pgx.Row
	if current == nil {
		row = pool.QueryRow(ctx, `
			INSERT INTO contact_info (phone, email, address, social_links, youtube, map_link, about_text, working_hours)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+contactColumns+`
		`, info.Phone, info.Email, info.Address, info.SocialLinks,
			info.YouTube, info.MapLink, info.AboutText, info.WorkingHours)
	} else {
		row = pool.QueryRow(ctx, `
			UPDATE contact_info
			SET phone = $1, email = $2, address = $3, social_links = $4,
			    youtube = $5, map_link = $6, about_text = $7, working_hours = $8,
			    updated_at = NOW()
			WHERE id = $9
			RETURNING `+contactColumns+`
		`, info.Phone, info.Email, info.Address, info.SocialLinks,
			info.YouTube, info.MapLink, info.AboutText, info.WorkingHours, current.ID)
	}

	return scanInfo(row)
}

// Delete removes the contact record
func (pg *Postgres) Delete() error {
	ctx := context.Background()
	pool := connections.Postgres()

	_, err := pool.Exec(ctx, `DELETE FROM contact_info`)
	return err
}
