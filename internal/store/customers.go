package store

import (
	"github.com/Skale-Club/xtimator/internal/domain/entities"
)

func (s *Store) Customers() []entities.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Customer, len(s.data.Customers))
	for i, c := range s.data.Customers {
		out[i] = c.Clone()
	}
	return out
}

func (s *Store) Customer(id string) (entities.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.data.Customers {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return entities.Customer{}, false
}

// AddCustomer appends c. Missing id and createdAt are filled in.
func (s *Store) AddCustomer(c entities.Customer) entities.Customer {
	if c.ID == "" {
		c.ID = s.newID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	c = c.Clone()
	s.mutate(true, func() {
		next := make([]entities.Customer, 0, len(s.data.Customers)+1)
		next = append(next, s.data.Customers...)
		s.data.Customers = append(next, c)
	})
	return c.Clone()
}

func (s *Store) UpdateCustomer(id string, patch entities.CustomerPatch) entities.Customer {
	var updated entities.Customer
	s.mutate(true, func() {
		idx := indexOf(s.data.Customers, func(c entities.Customer) bool { return c.ID == id })
		if idx < 0 {
			return
		}
		next := append([]entities.Customer{}, s.data.Customers...)
		next[idx] = patch.Apply(next[idx])
		s.data.Customers = next
		updated = next[idx].Clone()
	})
	return updated
}

// DeleteCustomer removes the customer only. Estimates keep their customer
// snapshot fields.
func (s *Store) DeleteCustomer(id string) bool {
	found := false
	s.mutate(true, func() {
		next := make([]entities.Customer, 0, len(s.data.Customers))
		for _, c := range s.data.Customers {
			if c.ID == id {
				found = true
				continue
			}
			next = append(next, c)
		}
		if found {
			s.data.Customers = next
		}
	})
	return found
}
