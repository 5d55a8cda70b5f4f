// Package lifecycle holds the estimate status state machine.
//
//	draft -> sent -> viewed -> accepted | rejected
//	            \-----------> accepted | rejected
//
// expired is derived lazily: a sent or viewed estimate whose ValidUntil has
// passed reads as expired and accepts no further transition.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
)

var ErrInvalidTransition = errors.New("invalid estimate status transition")

// InvalidTransitionError names the rejected edge. It matches
// ErrInvalidTransition with errors.Is.
type InvalidTransitionError struct {
	From entities.EstimateStatus
	To   entities.EstimateStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid estimate status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

var transitions = map[entities.EstimateStatus][]entities.EstimateStatus{
	entities.EstimateStatusDraft:  {entities.EstimateStatusSent},
	entities.EstimateStatusSent:   {entities.EstimateStatusViewed, entities.EstimateStatusAccepted, entities.EstimateStatusRejected},
	entities.EstimateStatusViewed: {entities.EstimateStatusAccepted, entities.EstimateStatusRejected},
}

// CanTransition reports whether from -> to is an edge of the state machine.
func CanTransition(from, to entities.EstimateStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Allowed lists the statuses reachable in one step from the estimate's
// effective status at now.
func Allowed(e entities.Estimate, now time.Time) []entities.EstimateStatus {
	next := transitions[EffectiveStatus(e, now)]
	return append([]entities.EstimateStatus(nil), next...)
}

// EffectiveStatus is the status as read at now: sent and viewed estimates past
// their ValidUntil are expired.
func EffectiveStatus(e entities.Estimate, now time.Time) entities.EstimateStatus {
	if IsExpired(e, now) {
		return entities.EstimateStatusExpired
	}
	return e.Status
}

func IsExpired(e entities.Estimate, now time.Time) bool {
	if e.Status == entities.EstimateStatusExpired {
		return true
	}
	if e.Status != entities.EstimateStatusSent && e.Status != entities.EstimateStatusViewed {
		return false
	}
	return e.ValidUntil != nil && now.After(*e.ValidUntil)
}

// Transition moves e to the target status, stamping the transition timestamp
// and UpdatedAt. The edge is checked against the effective status, so an
// expired estimate cannot be viewed, accepted or rejected.
func Transition(e entities.Estimate, to entities.EstimateStatus, now time.Time) (entities.Estimate, error) {
	from := EffectiveStatus(e, now)
	if !CanTransition(from, to) {
		return entities.Estimate{}, &InvalidTransitionError{From: from, To: to}
	}

	out := e.Clone()
	stamp := now
	switch to {
	case entities.EstimateStatusSent:
		out.SentAt = &stamp
	case entities.EstimateStatusViewed:
		out.ViewedAt = &stamp
	case entities.EstimateStatusAccepted, entities.EstimateStatusRejected:
		out.RespondedAt = &stamp
	}
	out.Status = to
	out.UpdatedAt = now
	return out, nil
}
