package blog

import (
	"sort"
	"sync"
	"time"
)

// Mock is an in-memory Repository for tests
type Mock struct {
	mu     sync.Mutex
	nextID int
	blogs  map[int]*Blog
}

// NewMock creates an empty in-memory repository
func NewMock() *Mock {
	return &Mock{nextID: 1, blogs: map[int]*Blog{}}
}

func (m *Mock) Create(b *Blog) (*Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	stored := *b
	stored.ID = m.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.blogs[stored.ID] = &stored
	m.nextID++

	copy := stored
	return &copy, nil
}

func (m *Mock) List() ([]*Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blogs := []*Blog{}
	for _, b := range m.blogs {
		copy := *b
		blogs = append(blogs, &copy)
	}
	sort.Slice(blogs, func(i, j int) bool {
		if blogs[i].CreatedAt.Equal(blogs[j].CreatedAt) {
			return blogs[i].ID > blogs[j].ID
		}
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
	return blogs, nil
}

func (m *Mock) FindByID(id int) (*Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.blogs[id]
	if !ok {
		return nil, ErrBlogNotFound
	}
	copy := *b
	return &copy, nil
}

func (m *Mock) Update(id int, upd Update) (*Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.blogs[id]
	if !ok {
		return nil, ErrBlogNotFound
	}

	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Content != nil {
		b.Content = *upd.Content
	}
	if upd.Image != nil {
		b.Image = upd.Image
	}
	b.UpdatedAt = time.Now()

	copy := *b
	return &copy, nil
}

func (m *Mock) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blogs[id]; !ok {
		return ErrBlogNotFound
	}
	delete(m.blogs, id)
	return nil
}
