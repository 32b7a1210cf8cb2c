package property

import (
	"context"
	"errors"

	"github.com/Haven-Estates/haven-api/connections"
	"github.com/jackc/pgx/v5"
)

// Postgres is the PostgreSQL repository for properties
type Postgres struct{}

const propertyColumns = `id, title, description, price, location, images, video, created_at, updated_at`

func scanProperty(row pgx.Row) (*Property, error) {
	var p Property
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Location,
		&p.Images,
		&p.Video,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

// Create inserts a new listing
func (pg *Postgres) Create(p *Property) (*Property, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		INSERT INTO properties (title, description, price, location, images, video)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+propertyColumns+`
	`, p.Title, p.Description, p.Price, p.Location, p.Images, p.Video)

	return scanProperty(row)
}

// List returns all listings, newest first
func (pg *Postgres) List() ([]*Property, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	rows, err := pool.Query(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []*Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}

// FindByID finds a listing by ID
func (pg *Postgres) FindByID(id int) (*Property, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE id = $1
	`, id)

	return scanProperty(row)
}

// Update applies a partial update. New images either replace or extend
// the stored set; a non-nil video replaces the stored one.
func (pg *Postgres) Update(id int, upd Update, images []string, replaceImages bool, video *string) (*Property, error) {
	current, err := pg.FindByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		current.Title = *upd.Title
	}
	if upd.Description != nil {
		current.Description = *upd.Description
	}
	if upd.Price != nil {
		current.Price = *upd.Price
	}
	if upd.Location != nil {
		current.Location = *upd.Location
	}
	if len(images) > 0 {
		if replaceImages {
			current.Images = images
		} else {
			current.Images = append(current.Images, images...)
		}
	}
	if video != nil {
		current.Video = video
	}

	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		UPDATE properties
		SET title = $1, description = $2, price = $3, location = $4,
		    images = $5, video = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+propertyColumns+`
	`, current.Title, current.Description, current.Price, current.Location,
		current.Images, current.Video, id)

	return scanProperty(row)
}

// Delete deletes a listing
func (pg *Postgres) Delete(id int) error {
	ctx := context.Background()
	pool := connections.Postgres()

	tag, err := pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// RemoveImage removes a single image by position
func (pg *Postgres) RemoveImage(id, index int) (*Property, error) {
	current, err := pg.FindByID(id)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(current.Images) {
		return nil, ErrImageNotFound
	}
	current.Images = append(current.Images[:index], current.Images[index+1:]...)

	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		UPDATE properties
		SET images = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+propertyColumns+`
	`, current.Images, id)

	return scanProperty(row)
}

// RemoveVideo clears the stored video
func (pg *Postgres) RemoveVideo(id int) (*Property, error) {
	if _, err := pg.FindByID(id); err != nil {
		return nil, err
	}

	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		UPDATE properties
		SET video = NULL, updated_at = NOW()
		WHERE id = $1
		RETURNING `+propertyColumns+`
	`, id)

	return scanProperty(row)
}
