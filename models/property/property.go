package property

import (
	"errors"
	"time"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrImageNotFound    = errors.New("image not found")
)

// Property represents a real-estate listing
type Property struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Images      []string  `json:"images"`
	Video       *string   `json:"video"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Update carries the mutable listing fields. Nil means keep the stored
// value, matching the partial-update behavior of the admin dashboard.
type Update struct {
	Title       *string
	Description *string
	Price       *float64
	Location    *string
}

// Repository is the property persistence interface
type Repository interface {
	Create(p *Property) (*Property, error)
	List() ([]*Property, error)
	FindByID(id int) (*Property, error)
	Update(id int, upd Update, images []string, replaceImages bool, video *string) (*Property, error)
	Delete(id int) error
	RemoveImage(id, index int) (*Property, error)
	RemoveVideo(id int) (*Property, error)
}
