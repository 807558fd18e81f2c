package entity

import (
	"time"

	"voxel-devil/internal/logging"

	"go.uber.org/zap"
)

// SpawnState is the Spawner's view of the devil slot
type SpawnState int

const (
	// SpawnAbsent: no devil yet, the next tick spawns one
	SpawnAbsent SpawnState = iota
	// SpawnPresent: a live devil occupies the slot
	SpawnPresent
	// SpawnRespawning: the last devil died, waiting for the respawn delay
	SpawnRespawning
)

func (s SpawnState) String() string {
	switch s {
	case SpawnAbsent:
		return "absent"
	case SpawnPresent:
		return "present"
	case SpawnRespawning:
		return "respawning"
	default:
		return "unknown"
	}
}

// Factory builds a new devil. A failed build is retried on the next tick.
type Factory func() (*Devil, error)

// Spawner keeps exactly one devil in play. It is the only writer of the slot:
// a devil that dies is noticed on the next Tick, never by the devil clearing
// the slot itself.
type Spawner struct {
	factory   Factory
	delay     time.Duration
	log       *zap.Logger
	listeners []SpawnListener

	current   *Devil
	state     SpawnState
	respawnAt time.Time

	spawned  int
	failures int
}

// NewSpawner creates a spawner that waits delay between a death and the next spawn.
func NewSpawner(factory Factory, delay time.Duration, logger *zap.Logger, listeners ...SpawnListener) *Spawner {
	return &Spawner{
		factory:   factory,
		delay:     max(delay, 0),
		log:       logging.OrNop(logger).Named("spawner"),
		listeners: listeners,
	}
}

// Tick advances the slot state machine and returns the live devil, or nil.
// The respawn delay runs from the moment of defeat, not from the tick that
// notices it.
func (s *Spawner) Tick(now time.Time) *Devil {
	if s.current != nil {
		if s.current.Alive() {
			return s.current
		}
		from := now
		if diedAt, ok := s.current.DiedAt(); ok && diedAt.Before(now) {
			from = diedAt
		}
		s.current = nil
		s.state = SpawnRespawning
		s.respawnAt = from.Add(s.delay)
		s.log.Info("devil slot cleared", zap.Duration("respawn_in", s.delay))
	}

	if s.state == SpawnRespawning && now.Before(s.respawnAt) {
		return nil
	}

	d, err := s.factory()
	if err != nil {
		s.failures++
		s.log.Warn("devil spawn failed, retrying next tick", zap.Error(err), zap.Int("failures", s.failures))
		return nil
	}
	if d == nil {
		return nil
	}

	s.current = d
	s.state = SpawnPresent
	s.spawned++
	s.log.Info("spawning new devil", zap.Int("spawned", s.spawned))
	for _, l := range s.listeners {
		l.Spawned(d)
	}
	return d
}

// Current returns the devil in the slot. It may be dead until the next Tick.
func (s *Spawner) Current() *Devil {
	return s.current
}

func (s *Spawner) State() SpawnState {
	return s.state
}

// RespawnAt is the earliest time the next devil may appear while respawning
func (s *Spawner) RespawnAt() time.Time {
	return s.respawnAt
}

// Spawned counts successful spawns
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Failures counts factory errors
func (s *Spawner) Failures() int {
	return s.failures
}

// Close removes the current devil, if any, and empties the slot
func (s *Spawner) Close() {
	if s.current != nil {
		s.current.Remove()
		s.current = nil
	}
	s.state = SpawnAbsent
}
