package account

import (
	"errors"
	"time"
)

var (
	ErrEmailExists     = errors.New("email already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// Account represents an admin account. The password hash is excluded
// from every JSON representation at the type level.
type Account struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository is the account persistence interface
type Repository interface {
	Create(email, passwordHash, role string) (*Account, error)
	FindByEmail(email string) (*Account, error)
	FindByID(id int) (*Account, error)
}
