package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_AfterFunc(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := Fake(start)

	var order []string
	c.AfterFunc(500*time.Millisecond, func() { order = append(order, "late") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "early") })
	stopped := c.AfterFunc(200*time.Millisecond, func() { order = append(order, "stopped") })

	assert.True(t, stopped.Stop())
	assert.Equal(t, 2, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, []string{"early", "late"}, order)
	assert.Equal(t, start.Add(time.Second), c.Now())
	assert.Equal(t, 0, c.Pending())
	assert.False(t, stopped.Stop())
}

func TestFakeClock_ImmediateCallback(t *testing.T) {
	c := Fake(time.Now())
	ran := false
	c.AfterFunc(0, func() { ran = true })
	assert.True(t, ran)
}

func TestReal_NowIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Real().Now().Location())
}
