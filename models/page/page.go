package page

import (
	"errors"
	"time"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrNameExists   = errors.New("page name already exists")
)

// Section is one content block of a page
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Page represents a site page with its SEO metadata. Name is the slug
// the frontend routes on and is unique.
type Page struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords"`
	Sections    []Section `json:"sections"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Repository is the page persistence interface
type Repository interface {
	List() ([]*Page, error)
	FindByName(name string) (*Page, error)
	Create(p *Page) (*Page, error)
	Update(name string, p *Page) (*Page, error)
	Delete(name string) error
}
