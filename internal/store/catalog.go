package store

import (
	"github.com/Skale-Club/xtimator/internal/domain/entities"
)

func (s *Store) Categories() []entities.ServiceCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.ServiceCategory{}, s.data.Categories...)
}

func (s *Store) Category(id string) (entities.ServiceCategory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.data.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return entities.ServiceCategory{}, false
}

// AddCategory appends c, assigning an id when it has none.
func (s *Store) AddCategory(c entities.ServiceCategory) entities.ServiceCategory {
	if c.ID == "" {
		c.ID = s.newID()
	}
	s.mutate(true, func() {
		next := make([]entities.ServiceCategory, 0, len(s.data.Categories)+1)
		next = append(next, s.data.Categories...)
		s.data.Categories = append(next, c)
	})
	return c
}

func (s *Store) UpdateCategory(id string, patch entities.CategoryPatch) entities.ServiceCategory {
	var updated entities.ServiceCategory
	s.mutate(true, func() {
		idx := indexOf(s.data.Categories, func(c entities.ServiceCategory) bool { return c.ID == id })
		if idx < 0 {
			return
		}
		next := append([]entities.ServiceCategory{}, s.data.Categories...)
		next[idx] = patch.Apply(next[idx])
		s.data.Categories = next
		updated = next[idx]
	})
	return updated
}

// DeleteCategory removes the category and every service whose CategoryID
// matches it.
func (s *Store) DeleteCategory(id string) bool {
	found := false
	s.mutate(true, func() {
		cats := make([]entities.ServiceCategory, 0, len(s.data.Categories))
		for _, c := range s.data.Categories {
			if c.ID == id {
				found = true
				continue
			}
			cats = append(cats, c)
		}
		if !found {
			return
		}
		services := make([]entities.ServiceItem, 0, len(s.data.Services))
		for _, svc := range s.data.Services {
			if svc.CategoryID != id {
				services = append(services, svc)
			}
		}
		s.data.Categories = cats
		s.data.Services = services
	})
	return found
}

// SetCategories replaces the whole category list.
func (s *Store) SetCategories(categories []entities.ServiceCategory) {
	next := append([]entities.ServiceCategory{}, categories...)
	s.mutate(true, func() { s.data.Categories = next })
}

func (s *Store) Services() []entities.ServiceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.ServiceItem, len(s.data.Services))
	for i, svc := range s.data.Services {
		out[i] = svc.Clone()
	}
	return out
}

func (s *Store) Service(id string) (entities.ServiceItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.data.Services {
		if svc.ID == id {
			return svc.Clone(), true
		}
	}
	return entities.ServiceItem{}, false
}

func (s *Store) AddService(svc entities.ServiceItem) entities.ServiceItem {
	if svc.ID == "" {
		svc.ID = s.newID()
	}
	svc = svc.Clone()
	s.mutate(true, func() {
		next := make([]entities.ServiceItem, 0, len(s.data.Services)+1)
		next = append(next, s.data.Services...)
		s.data.Services = append(next, svc)
	})
	return svc.Clone()
}

func (s *Store) UpdateService(id string, patch entities.ServicePatch) entities.ServiceItem {
	var updated entities.ServiceItem
	s.mutate(true, func() {
		idx := indexOf(s.data.Services, func(svc entities.ServiceItem) bool { return svc.ID == id })
		if idx < 0 {
			return
		}
		next := append([]entities.ServiceItem{}, s.data.Services...)
		next[idx] = patch.Apply(next[idx])
		s.data.Services = next
		updated = next[idx].Clone()
	})
	return updated
}

// DeleteService removes the service only. Estimates keep their line item
// snapshots.
func (s *Store) DeleteService(id string) bool {
	found := false
	s.mutate(true, func() {
		next := make([]entities.ServiceItem, 0, len(s.data.Services))
		for _, svc := range s.data.Services {
			if svc.ID == id {
				found = true
				continue
			}
			next = append(next, svc)
		}
		if found {
			s.data.Services = next
		}
	})
	return found
}

func (s *Store) SetServices(services []entities.ServiceItem) {
	next := make([]entities.ServiceItem, len(services))
	for i, svc := range services {
		next[i] = svc.Clone()
	}
	s.mutate(true, func() { s.data.Services = next })
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}
