package blog

import (
	"context"
	"errors"

	"github.com/Haven-Estates/haven-api/connections"
	"github.com/jackc/pgx/v5"
)

// Postgres is the PostgreSQL repository for blogs
type Postgres struct{}

const blogColumns = `id, title, content, image, created_at, updated_at`

func scanBlog(row pgx.Row) (*Blog, error) {
	var b Blog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Content,
		&b.Image,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a new post
func (pg *Postgres) Create(b *Blog) (*Blog, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		INSERT INTO blogs (title, content, image)
		VALUES ($1, $2, $3)
		RETURNING `+blogColumns+`
	`, b.Title, b.Content, b.Image)

	return scanBlog(row)
}

// List returns all posts, newest first
func (pg *Postgres) List() ([]*Blog, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	rows, err := pool.Query(ctx, `
		SELECT `+blogColumns+`
		FROM blogs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []*Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}

	return blogs, rows.Err()
}

// FindByID finds a post by ID
func (pg *Postgres) FindByID(id int) (*Blog, error) {
	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		SELECT `+blogColumns+`
		FROM blogs
		WHERE id = $1
	`, id)

	return scanBlog(row)
}

// Update applies a partial update
func (pg *Postgres) Update(id int, upd Update) (*Blog, error) {
	current, err := pg.FindByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		current.Title = *upd.Title
	}
	if upd.Content != nil {
		current.Content = *upd.Content
	}
	if upd.Image != nil {
		current.Image = upd.Image
	}

	ctx := context.Background()
	pool := connections.Postgres()

	row := pool.QueryRow(ctx, `
		UPDATE blogs
		SET title = $1, content = $2, image = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+blogColumns+`
	`, current.Title, current.Content, current.Image, id)

	return scanBlog(row)
}

// Delete deletes a post
func (pg *Postgres) Delete(id int) error {
	ctx := context.Background()
	pool := connections.Postgres()

	tag, err := pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBlogNotFound
	}
	return nil
}
