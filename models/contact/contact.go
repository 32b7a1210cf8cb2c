package contact

import (
	"errors"
	"time"
)

var ErrContactNotSet = errors.New("contact info not set")

// SocialLink is one social media entry in the site footer
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Info is the site-wide contact record. There is at most one row; the
// admin dashboard updates the fields it sends and leaves the rest.
type Info struct {
	ID           int          `json:"id"`
	Phone        []string     `json:"phone"`
	Email        []string     `json:"email"`
	Address      []string     `json:"address"`
	SocialLinks  []SocialLink `json:"socialLinks"`
	YouTube      string       `json:"youtube"`
	MapLink      string       `json:"mapLink"`
	AboutText    string       `json:"aboutText"`
	WorkingHours string       `json:"workingHours"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Repository is the contact persistence interface
type Repository interface {
	Get() (*Info, error)
	Upsert(info *Info) (*Info, error)
	Delete() error
}
