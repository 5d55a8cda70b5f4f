package store

import (
	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/lifecycle"
	"github.com/Skale-Club/xtimator/internal/domain/pricing"

	"github.com/sirupsen/logrus"
)

func (s *Store) Estimates() []entities.Estimate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Estimate, len(s.data.Estimates))
	for i, e := range s.data.Estimates {
		out[i] = e.Clone()
	}
	return out
}

func (s *Store) Estimate(id string) (entities.Estimate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.data.Estimates {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return entities.Estimate{}, false
}

// AddEstimate stores e as a new draft. Line totals and estimate totals are
// recomputed; id and timestamps are filled in when missing.
func (s *Store) AddEstimate(e entities.Estimate) entities.Estimate {
	now := s.now()
	e = pricing.ApplyTotals(e.Clone())
	if e.ID == "" {
		e.ID = s.newID()
	}
	for i := range e.LineItems {
		if e.LineItems[i].ID == "" {
			e.LineItems[i].ID = s.newID()
		}
	}
	if e.Photos == nil {
		e.Photos = []entities.EstimatePhoto{}
	}
	e.Status = entities.EstimateStatusDraft
	e.SentAt, e.ViewedAt, e.RespondedAt = nil, nil, nil
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.Before(e.CreatedAt) {
		e.UpdatedAt = e.CreatedAt
	}

	stored := e.Clone()
	s.mutate(true, func() {
		next := make([]entities.Estimate, 0, len(s.data.Estimates)+1)
		next = append(next, s.data.Estimates...)
		s.data.Estimates = append(next, stored)
	})
	return e
}

// UpdateEstimate merges patch and recomputes totals from the resulting line
// items and tax rate, so totals can never drift from the items.
func (s *Store) UpdateEstimate(id string, patch entities.EstimatePatch) entities.Estimate {
	var updated entities.Estimate
	now := s.now()
	s.mutate(true, func() {
		idx := indexOf(s.data.Estimates, func(e entities.Estimate) bool { return e.ID == id })
		if idx < 0 {
			return
		}
		e := pricing.ApplyTotals(patch.Apply(s.data.Estimates[idx]))
		for i := range e.LineItems {
			if e.LineItems[i].ID == "" {
				e.LineItems[i].ID = s.newID()
			}
		}
		e.UpdatedAt = laterOf(now, e.CreatedAt)

		next := append([]entities.Estimate{}, s.data.Estimates...)
		next[idx] = e
		s.data.Estimates = next
		updated = e.Clone()
	})
	return updated
}

func (s *Store) DeleteEstimate(id string) bool {
	found := false
	s.mutate(true, func() {
		next := make([]entities.Estimate, 0, len(s.data.Estimates))
		for _, e := range s.data.Estimates {
			if e.ID == id {
				found = true
				continue
			}
			next = append(next, e)
		}
		if found {
			s.data.Estimates = next
		}
	})
	return found
}

// TransitionEstimate moves the estimate through the lifecycle. An unknown id
// returns a zero estimate and no error; an illegal edge returns a
// lifecycle.InvalidTransitionError and changes nothing.
func (s *Store) TransitionEstimate(id string, to entities.EstimateStatus) (entities.Estimate, error) {
	var (
		updated entities.Estimate
		err     error
	)
	now := s.now()
	s.mutate(true, func() {
		idx := indexOf(s.data.Estimates, func(e entities.Estimate) bool { return e.ID == id })
		if idx < 0 {
			return
		}
		var next entities.Estimate
		next, err = lifecycle.Transition(s.data.Estimates[idx], to, laterOf(now, s.data.Estimates[idx].CreatedAt))
		if err != nil {
			return
		}
		list := append([]entities.Estimate{}, s.data.Estimates...)
		list[idx] = next
		s.data.Estimates = list
		updated = next.Clone()
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID != "" {
		s.logger.WithFields(logrus.Fields{"estimate_id": id, "status": to}).Info("[store][estimate] status changed")
	}
	return updated, nil
}

// SetCurrentEstimate holds the estimate being edited. It is never persisted.
func (s *Store) SetCurrentEstimate(e *entities.Estimate) {
	var c *entities.Estimate
	if e != nil {
		cp := e.Clone()
		c = &cp
	}
	s.mutate(false, func() { s.current = c })
}

func (s *Store) CurrentEstimate() *entities.Estimate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	c := s.current.Clone()
	return &c
}
