package property

import (
	"sort"
	"sync"
	"time"
)

// Mock is an in-memory Repository for tests
type Mock struct {
	mu         sync.Mutex
	nextID     int
	properties map[int]*Property
}

// NewMock creates an empty in-memory repository
func NewMock() *Mock {
	return &Mock{nextID: 1, properties: map[int]*Property{}}
}

func (m *Mock) Create(p *Property) (*Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	stored := *p
	stored.ID = m.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if stored.Images == nil {
		stored.Images = []string{}
	}
	m.properties[stored.ID] = &stored
	m.nextID++

	copy := stored
	return &copy, nil
}

func (m *Mock) List() ([]*Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	properties := []*Property{}
	for _, p := range m.properties {
		copy := *p
		properties = append(properties, &copy)
	}
	sort.Slice(properties, func(i, j int) bool {
		if properties[i].CreatedAt.Equal(properties[j].CreatedAt) {
			return properties[i].ID > properties[j].ID
		}
		return properties[i].CreatedAt.After(properties[j].CreatedAt)
	})
	return properties, nil
}

func (m *Mock) FindByID(id int) (*Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.properties[id]
	if !ok {
		return nil, ErrPropertyNotFound
	}
	copy := *p
	return &copy, nil
}

func (m *Mock) Update(id int, upd Update, images []string, replaceImages bool, video *string) (*Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.properties[id]
	if !ok {
		return nil, ErrPropertyNotFound
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Location != nil {
		p.Location = *upd.Location
	}
	if len(images) > 0 {
		if replaceImages {
			p.Images = images
		} else {
			p.Images = append(p.Images, images...)
		}
	}
	if video != nil {
		p.Video = video
	}
	p.UpdatedAt = time.Now()

	copy := *p
	return &copy, nil
}

func (m *Mock) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.properties[id]; !ok {
		return ErrPropertyNotFound
	}
	delete(m.properties, id)
	return nil
}

func (m *Mock) RemoveImage(id, index int) (*Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.properties[id]
	if !ok {
		return nil, ErrPropertyNotFound
	}
	if index < 0 || index >= len(p.Images) {
		return nil, ErrImageNotFound
	}
	p.Images = append(p.Images[:index], p.Images[index+1:]...)
	p.UpdatedAt = time.Now()

	copy := *p
	return &copy, nil
}

func (m *Mock) RemoveVideo(id int) (*Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.properties[id]
	if !ok {
		return nil, ErrPropertyNotFound
	}
	p.Video = nil
	p.UpdatedAt = time.Now()

	copy := *p
	return &copy, nil
}
