package contact

import (
	"sync"
	"time"
)

// Mock is an in-memory Repository for tests
type Mock struct {
	mu   sync.Mutex
	info *Info
}

// NewMock creates an empty in-memory repository
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Get() (*Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.info == nil {
		return nil, ErrContactNotSet
	}
	copy := *m.info
	return &copy, nil
}

func (m *Mock) Upsert(info *Info) (*Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	stored := *info
	if m.info == nil {
		stored.ID = 1
		stored.CreatedAt = now
	} else {
		stored.ID = m.info.ID
		stored.CreatedAt = m.info.CreatedAt
	}
	stored.UpdatedAt = now
	m.info = &stored

	copy := stored
	return &copy, nil
}

func (m *Mock) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.info = nil
	return nil
}
