package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClockIgnoresNegativeAdvance(t *testing.T) {
	c := NewManualClock(time.Unix(10, 0))
	c.Advance(-time.Second)
	assert.Equal(t, time.Unix(10, 0), c.Now())
}

func TestPausableClockStandsStillWhilePaused(t *testing.T) {
	base := NewManualClock(time.Unix(100, 0))
	c := NewPausableClock(base)
	assert.Equal(t, time.Unix(100, 0), c.Now())

	base.Advance(time.Second)
	c.SetPaused(true)
	c.SetPaused(true)
	assert.True(t, c.Paused())
	base.Advance(10 * time.Second)
	assert.Equal(t, time.Unix(101, 0), c.Now())

	c.SetPaused(false)
	assert.Equal(t, time.Unix(101, 0), c.Now())
	base.Advance(2 * time.Second)
	assert.Equal(t, time.Unix(103, 0), c.Now())
}

func TestAttackCooldownDoesNotExpireWhilePaused(t *testing.T) {
	f := newFixture(t)
	base := f.clock
	paused := NewPausableClock(base)
	f.opts.Clock = paused
	d := f.spawn(t)
	target := &fakeTarget{pos: d.Position(), present: true}

	assert.True(t, d.Attack(target))
	paused.SetPaused(true)
	base.Advance(time.Minute)
	paused.SetPaused(false)
	assert.False(t, d.Attack(target))
	assert.Equal(t, []int{10}, target.hits)
}
