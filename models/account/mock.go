package account

import (
	"sync"
	"time"
)

// Mock is an in-memory Repository for tests
type Mock struct {
	mu       sync.Mutex
	nextID   int
	accounts map[int]*Account
}

// NewMock creates an empty in-memory repository
func NewMock() *Mock {
	return &Mock{nextID: 1, accounts: map[int]*Account{}}
}

func (m *Mock) Create(email, passwordHash, role string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, acc := range m.accounts {
		if acc.Email == email {
			return nil, ErrEmailExists
		}
	}

	now := time.Now()
	acc := &Account{
		ID:        m.nextID,
		Email:     email,
		Password:  passwordHash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.accounts[acc.ID] = acc
	m.nextID++

	copy := *acc
	return &copy, nil
}

func (m *Mock) FindByEmail(email string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, acc := range m.accounts {
		if acc.Email == email {
			copy := *acc
			return &copy, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (m *Mock) FindByID(id int) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	copy := *acc
	return &copy, nil
}

// Delete removes an account; tests use it to simulate out-of-band removal.
func (m *Mock) Delete(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
}
