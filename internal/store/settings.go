package store

import (
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
)

func (s *Store) Settings() entities.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Settings
}

func (s *Store) SetSettings(settings entities.AppSettings) {
	s.mutate(true, func() { s.data.Settings = settings })
}

func (s *Store) UpdateSettings(patch entities.SettingsPatch) entities.AppSettings {
	var updated entities.AppSettings
	s.mutate(true, func() {
		s.data.Settings = patch.Apply(s.data.Settings)
		updated = s.data.Settings
	})
	return updated
}

func (s *Store) User() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.User == nil {
		return nil
	}
	u := *s.data.User
	return &u
}

// SetUser replaces the user profile; nil clears it.
func (s *Store) SetUser(u *entities.User) {
	var c *entities.User
	if u != nil {
		cp := *u
		if cp.ID == "" {
			cp.ID = s.newID()
		}
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = s.now()
		}
		c = &cp
	}
	s.mutate(true, func() { s.data.User = c })
}

func (s *Store) OnboardingComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.OnboardingComplete
}

func (s *Store) OnboardingStep() entities.OnboardingStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.OnboardingStep
}

func (s *Store) SetOnboardingStep(step entities.OnboardingStep) {
	s.mutate(true, func() { s.data.OnboardingStep = step })
}

func (s *Store) CompleteOnboarding() {
	s.mutate(true, func() {
		s.data.OnboardingComplete = true
		s.data.OnboardingStep = entities.OnboardingStepComplete
	})
}

func laterOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
