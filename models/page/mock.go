package page

import (
	"sort"
	"sync"
	"time"
)

// Mock is an in-memory Repository for tests
type Mock struct {
	mu     sync.Mutex
	nextID int
	pages  map[string]*Page
}

// NewMock creates an empty in-memory repository
func NewMock() *Mock {
	return &Mock{nextID: 1, pages: map[string]*Page{}}
}

func (m *Mock) List() ([]*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pages := []*Page{}
	for _, p := range m.pages {
		copy := *p
		pages = append(pages, &copy)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Name < pages[j].Name })
	return pages, nil
}

func (m *Mock) FindByName(name string) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pages[name]
	if !ok {
		return nil, ErrPageNotFound
	}
	copy := *p
	return &copy, nil
}

func (m *Mock) Create(p *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pages[p.Name]; ok {
		return nil, ErrNameExists
	}

	now := time.Now()
	stored := *p
	stored.ID = m.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if stored.Sections == nil {
		stored.Sections = []Section{}
	}
	m.pages[stored.Name] = &stored
	m.nextID++

	copy := stored
	return &copy, nil
}

func (m *Mock) Update(name string, p *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.pages[name]
	if !ok {
		return nil, ErrPageNotFound
	}

	stored.Title = p.Title
	stored.Description = p.Description
	stored.Keywords = p.Keywords
	stored.Sections = p.Sections
	stored.UpdatedAt = time.Now()

	copy := *stored
	return &copy, nil
}

func (m *Mock) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pages, name)
	return nil
}
