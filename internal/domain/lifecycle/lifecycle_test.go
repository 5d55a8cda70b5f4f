package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now     = created.Add(2 * time.Hour)
)

func draft() entities.Estimate {
	until := created.AddDate(0, 0, 30)
	return entities.Estimate{
		ID:         "est-1",
		Status:     entities.EstimateStatusDraft,
		CreatedAt:  created,
		UpdatedAt:  created,
		ValidUntil: &until,
	}
}

func TestTransition_DraftToSent(t *testing.T) {
	got, err := Transition(draft(), entities.EstimateStatusSent, now)
	require.NoError(t, err)

	assert.Equal(t, entities.EstimateStatusSent, got.Status)
	require.NotNil(t, got.SentAt)
	assert.Equal(t, now, *got.SentAt)
	assert.Equal(t, now, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestTransition_DraftOnlyReachesSent(t *testing.T) {
	for _, to := range []entities.EstimateStatus{
		entities.EstimateStatusDraft,
		entities.EstimateStatusViewed,
		entities.EstimateStatusAccepted,
		entities.EstimateStatusRejected,
		entities.EstimateStatusExpired,
	} {
		t.Run(string(to), func(t *testing.T) {
			_, err := Transition(draft(), to, now)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransition))

			var ite *InvalidTransitionError
			require.ErrorAs(t, err, &ite)
			assert.Equal(t, entities.EstimateStatusDraft, ite.From)
			assert.Equal(t, to, ite.To)
		})
	}
}

func TestTransition_SentResponses(t *testing.T) {
	sent, err := Transition(draft(), entities.EstimateStatusSent, now)
	require.NoError(t, err)

	for _, to := range []entities.EstimateStatus{entities.EstimateStatusAccepted, entities.EstimateStatusRejected} {
		t.Run(string(to), func(t *testing.T) {
			later := now.Add(time.Hour)
			got, err := Transition(sent, to, later)
			require.NoError(t, err)
			assert.Equal(t, to, got.Status)
			require.NotNil(t, got.RespondedAt)
			assert.Equal(t, later, *got.RespondedAt)
			assert.Equal(t, now, *got.SentAt)
		})
	}
}

func TestTransition_ViewedThenAccepted(t *testing.T) {
	sent, err := Transition(draft(), entities.EstimateStatusSent, now)
	require.NoError(t, err)
	viewed, err := Transition(sent, entities.EstimateStatusViewed, now.Add(time.Minute))
	require.NoError(t, err)
	require.NotNil(t, viewed.ViewedAt)

	_, err = Transition(viewed, entities.EstimateStatusViewed, now.Add(2*time.Minute))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	accepted, err := Transition(viewed, entities.EstimateStatusAccepted, now.Add(3*time.Minute))
	require.NoError(t, err)

	for _, to := range []entities.EstimateStatus{entities.EstimateStatusRejected, entities.EstimateStatusSent, entities.EstimateStatusDraft} {
		_, err := Transition(accepted, to, now.Add(4*time.Minute))
		assert.ErrorIs(t, err, ErrInvalidTransition, "accepted is terminal")
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	in := draft()
	_, err := Transition(in, entities.EstimateStatusSent, now)
	require.NoError(t, err)
	assert.Equal(t, entities.EstimateStatusDraft, in.Status)
	assert.Nil(t, in.SentAt)
}

func TestEffectiveStatus(t *testing.T) {
	sent, err := Transition(draft(), entities.EstimateStatusSent, now)
	require.NoError(t, err)

	assert.Equal(t, entities.EstimateStatusSent, EffectiveStatus(sent, now))

	afterExpiry := sent.ValidUntil.Add(time.Second)
	assert.Equal(t, entities.EstimateStatusExpired, EffectiveStatus(sent, afterExpiry))
	assert.Equal(t, entities.EstimateStatusSent, sent.Status, "expiry is never stored")

	_, err = Transition(sent, entities.EstimateStatusAccepted, afterExpiry)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, Allowed(sent, afterExpiry))

	d := draft()
	assert.Equal(t, entities.EstimateStatusDraft, EffectiveStatus(d, afterExpiry), "drafts never expire")

	noValidity := sent
	noValidity.ValidUntil = nil
	assert.Equal(t, entities.EstimateStatusSent, EffectiveStatus(noValidity, afterExpiry.AddDate(1, 0, 0)))
}

func TestAllowed(t *testing.T) {
	assert.Equal(t, []entities.EstimateStatus{entities.EstimateStatusSent}, Allowed(draft(), now))
}
