package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestSpawner(t *testing.T, f *fixture, delay time.Duration) *Spawner {
	t.Helper()
	return NewSpawner(func() (*Devil, error) { return NewDevil(f.opts) }, delay, zap.NewNop(), f.rec)
}

func TestSpawnerSpawnsOnFirstTick(t *testing.T) {
	f := newFixture(t)
	s := newTestSpawner(t, f, 5*time.Second)
	assert.Equal(t, SpawnAbsent, s.State())

	d := s.Tick(f.clock.Now())
	require.NotNil(t, d)
	assert.Same(t, d, s.Current())
	assert.Equal(t, SpawnPresent, s.State())
	assert.Equal(t, 1, s.Spawned())
	assert.Equal(t, 1, f.rec.spawns)

	assert.Same(t, d, s.Tick(f.clock.Now()), "a live devil keeps the slot")
	assert.Equal(t, 1, s.Spawned())
}

func TestSpawnerHonoursRespawnDelay(t *testing.T) {
	f := newFixture(t)
	s := newTestSpawner(t, f, 5*time.Second)
	first := s.Tick(f.clock.Now())
	require.NotNil(t, first)

	first.TakeDamage(first.MaxHealth())
	assert.Nil(t, s.Tick(f.clock.Now()))
	assert.Equal(t, SpawnRespawning, s.State())
	assert.Nil(t, s.Current())
	assert.Equal(t, f.clock.Now().Add(5*time.Second), s.RespawnAt())

	f.clock.Advance(4 * time.Second)
	assert.Nil(t, s.Tick(f.clock.Now()))

	f.clock.Advance(time.Second)
	second := s.Tick(f.clock.Now())
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, 50, second.Health())
	assert.Equal(t, 2, s.Spawned())

	live, created, released := f.graph.Stats()
	assert.Equal(t, 1, live, "exactly one devil visual at a time")
	assert.Equal(t, 2, created)
	assert.Equal(t, 1, released)
	assert.Len(t, f.graph.Attached(), 1)
}

func TestSpawnerDelayCountsFromDefeat(t *testing.T) {
	f := newFixture(t)
	s := newTestSpawner(t, f, 5*time.Second)
	first := s.Tick(f.clock.Now())
	require.NotNil(t, first)

	killedAt := f.clock.Now()
	first.TakeDamage(first.MaxHealth())
	f.clock.Advance(time.Second / 60)

	assert.Nil(t, s.Tick(f.clock.Now()))
	assert.Equal(t, killedAt.Add(5*time.Second), s.RespawnAt())

	f.clock.Advance(5*time.Second - time.Second/60)
	assert.NotNil(t, s.Tick(f.clock.Now()))
}

func TestSpawnerZeroDelayRespawnsImmediately(t *testing.T) {
	f := newFixture(t)
	s := newTestSpawner(t, f, 0)
	first := s.Tick(f.clock.Now())
	first.TakeDamage(1000)

	second := s.Tick(f.clock.Now())
	require.NotNil(t, second)
	assert.True(t, second.Alive())
}

func TestSpawnerRetriesFailedFactory(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := newFixture(t)
	calls := 0
	s := NewSpawner(func() (*Devil, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("no gpu buffers")
		}
		return NewDevil(f.opts)
	}, time.Second, zap.New(core))

	assert.Nil(t, s.Tick(f.clock.Now()))
	assert.Nil(t, s.Tick(f.clock.Now()))
	assert.NotNil(t, s.Tick(f.clock.Now()))
	assert.Equal(t, 2, s.Failures())
	assert.Equal(t, 2, logs.FilterMessage("devil spawn failed, retrying next tick").Len())
}

func TestSpawnerEndToEndDamageSequence(t *testing.T) {
	f := newFixture(t)
	s := newTestSpawner(t, f, 5*time.Second)
	d := s.Tick(f.clock.Now())

	var seen []int
	for range 3 {
		d.TakeDamage(20)
		seen = append(seen, d.Health())
		f.clock.Advance(time.Second)
		s.Tick(f.clock.Now())
	}
	assert.Equal(t, []int{30, 10, 0}, seen)
	assert.Nil(t, s.Current())

	f.clock.Advance(5 * time.Second)
	next := s.Tick(f.clock.Now())
	require.NotNil(t, next)
	assert.Equal(t, next.MaxHealth(), next.Health())
	assert.Equal(t, 1, f.rec.defeats)
}

func TestSpawnerClose(t *testing.T) {
	f := newFixture(t)
	s := newTestSpawner(t, f, time.Second)
	s.Tick(f.clock.Now())
	s.Close()

	assert.Nil(t, s.Current())
	assert.Equal(t, SpawnAbsent, s.State())
	assert.Equal(t, 0, f.rec.defeats)
	live, _, _ := f.graph.Stats()
	assert.Equal(t, 0, live)
}

func TestSpawnStateString(t *testing.T) {
	assert.Equal(t, "respawning", SpawnRespawning.String())
	assert.Equal(t, "unknown", SpawnState(9).String())
}
