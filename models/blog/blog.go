package blog

import (
	"errors"
	"time"
)

var ErrBlogNotFound = errors.New("blog not found")

// Blog represents a blog post
type Blog struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update carries the mutable post fields; nil keeps the stored value.
type Update struct {
	Title   *string
	Content *string
	Image   *string
}

// Repository is the blog persistence interface
type Repository interface {
	Create(b *Blog) (*Blog, error)
	List() ([]*Blog, error)
	FindByID(id int) (*Blog, error)
	Update(id int, upd Update) (*Blog, error)
	Delete(id int) error
}
