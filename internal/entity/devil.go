package entity

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"voxel-devil/internal/config"
	"voxel-devil/internal/logging"
	"voxel-devil/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Devil body dimensions
const (
	DevilWidth  = 1.0
	DevilHeight = 2.0
)

// minChaseDistance is the distance under which the devil stops steering
const minChaseDistance = 1e-4

var errNoScene = errors.New("devil needs a scene")

// DevilOptions configures NewDevil. Zero Clock, Rand and Logger fall back to
// the system clock, the global source and a no-op logger.
type DevilOptions struct {
	Config    config.DevilConfig
	Scene     scene.Scene
	World     WorldSource
	Clock     Clock
	Rand      *rand.Rand
	Logger    *zap.Logger
	Listeners []Listener
}

// Devil is the hostile NPC. It chases a Target, hits it when close and dies
// for good once its health reaches zero.
type Devil struct {
	pos       mgl32.Vec3
	health    int
	maxHealth int

	damage         int
	attackCooldown time.Duration
	attackRange    float32
	speed          float32
	lastAttack     time.Time
	attacked       bool
	diedAt         time.Time

	// visual is nil once the devil is dead or removed
	visual scene.Visual
	scene  scene.Scene
	world  WorldSource
	clock  Clock
	log    *zap.Logger

	listeners []Listener
	dead      bool
}

// NewDevil builds the devil's box visual, places it at a random spot of the
// spawn area at the configured height, attaches it and publishes the initial
// health. Nothing stays attached when an error is returned.
func NewDevil(opts DevilOptions) (*Devil, error) {
	if opts.Scene == nil {
		return nil, errNoScene
	}
	cfg := opts.Config
	if cfg.MaxHealth <= 0 {
		return nil, fmt.Errorf("devil max health %d: %w", cfg.MaxHealth, config.ErrInvalid)
	}

	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	d := &Devil{
		pos:            randomSpawn(opts.Rand, cfg.SpawnArea, cfg.SpawnHeight),
		health:         cfg.MaxHealth,
		maxHealth:      cfg.MaxHealth,
		damage:         cfg.Damage,
		attackCooldown: cfg.AttackCooldown,
		attackRange:    cfg.AttackRange,
		speed:          cfg.Speed,
		scene:          opts.Scene,
		world:          opts.World,
		clock:          clock,
		log:            logging.OrNop(opts.Logger).Named("devil"),
		listeners:      opts.Listeners,
	}

	width, height := d.GetBounds()
	visual, err := opts.Scene.NewBox(scene.BoxSpec{
		Name:          "devil",
		Size:          mgl32.Vec3{width, height, width},
		Color:         mgl32.Vec3{0.75, 0.08, 0.06},
		CastShadow:    true,
		ReceiveShadow: true,
	})
	if err != nil {
		return nil, fmt.Errorf("build devil visual: %w", err)
	}
	d.visual = visual

	visual.SetPosition(d.pos)
	opts.Scene.Attach(visual)

	d.log.Info("devil spawned",
		zap.Float32("x", d.pos.X()), zap.Float32("y", d.pos.Y()), zap.Float32("z", d.pos.Z()),
		zap.Int("health", d.health))
	d.notifyHealth()

	return d, nil
}

// randomSpawn picks a point uniformly in [0,area)x[0,area) at height y
func randomSpawn(rng *rand.Rand, area, y float32) mgl32.Vec3 {
	f := rand.Float32
	if rng != nil {
		f = rng.Float32
	}
	x := f() * area
	z := f() * area
	return mgl32.Vec3{x, y, z}
}

// Update moves the devil toward target at constant speed and attacks when in
// range. It does nothing when the target, its position or the devil's visual
// is missing.
func (d *Devil) Update(dt float64, target Target) {
	if target == nil || d.visual == nil {
		return
	}
	targetPos, ok := target.Locate()
	if !ok {
		return
	}

	diff := targetPos.Sub(d.pos)
	if dist := diff.Len(); dt > 0 && dist > minChaseDistance && !math.IsNaN(float64(dist)) {
		dir := diff.Mul(1 / dist)
		d.pos = d.pos.Add(dir.Mul(d.speed * float32(dt)))
		d.visual.SetPosition(d.pos)
	}

	d.CheckCollision(target)
}

// CheckCollision attacks target when it is closer than the attack range.
// It reports whether damage was dealt.
func (d *Devil) CheckCollision(target Target) bool {
	if target == nil {
		return false
	}
	targetPos, ok := target.Locate()
	if !ok {
		return false
	}
	if d.pos.Sub(targetPos).Len() < d.attackRange {
		return d.Attack(target)
	}
	return false
}

// Attack damages target unless the cooldown since the last successful attack
// is still running. Attempts during the cooldown are dropped. The first attack
// is never gated, whatever the clock reads.
func (d *Devil) Attack(target Target) bool {
	if d.dead || target == nil {
		return false
	}
	now := d.clock.Now()
	if d.attacked && now.Sub(d.lastAttack) < d.attackCooldown {
		return false
	}

	target.TakeDamage(d.damage)
	d.lastAttack = now
	d.attacked = true
	d.log.Info("devil attacked player", zap.Int("damage", d.damage))
	for _, l := range d.listeners {
		l.Attacked(d, d.damage)
	}
	return true
}

// TakeDamage lowers health by amount, never below zero, and runs the death
// transition when health reaches zero. It is a no-op once the devil is dead
// and reports whether this call killed it. Negative amounts count as zero.
func (d *Devil) TakeDamage(amount int) bool {
	if d.dead {
		return false
	}
	amount = max(amount, 0)
	d.health = max(d.health-amount, 0)
	d.log.Debug("devil took damage", zap.Int("amount", amount), zap.Int("health", d.health))
	d.notifyHealth()

	if d.health == 0 {
		d.die()
		return true
	}
	return false
}

// die releases the visual and announces the defeat. The dead flag is set
// before listeners run so re-entrant calls are no-ops.
func (d *Devil) die() {
	d.dead = true
	d.diedAt = d.clock.Now()
	d.releaseVisual()
	d.log.Info("devil has died")
	for _, l := range d.listeners {
		l.Defeated(d)
	}
}

// Remove takes a live devil out of play without a defeat, e.g. on shutdown.
func (d *Devil) Remove() {
	if d.dead {
		return
	}
	d.dead = true
	d.releaseVisual()
}

func (d *Devil) releaseVisual() {
	if d.visual == nil {
		return
	}
	d.scene.Detach(d.visual)
	d.visual.Dispose()
	d.visual = nil
}

func (d *Devil) notifyHealth() {
	for _, l := range d.listeners {
		l.HealthChanged(d, d.health, d.maxHealth)
	}
}

// Alive reports whether the devil is still in play
func (d *Devil) Alive() bool {
	return !d.dead && d.health > 0
}

func (d *Devil) IsDead() bool {
	return !d.Alive()
}

// Position is the centre of the devil's body
func (d *Devil) Position() mgl32.Vec3 {
	return d.pos
}

func (d *Devil) GetBounds() (width, height float32) {
	return DevilWidth, DevilHeight
}

func (d *Devil) Health() int {
	return d.health
}

func (d *Devil) MaxHealth() int {
	return d.maxHealth
}

// DiedAt returns when the devil was defeated; ok is false while it lives or
// when it was removed without a defeat.
func (d *Devil) DiedAt() (at time.Time, ok bool) {
	if !d.dead || d.health > 0 {
		return time.Time{}, false
	}
	return d.diedAt, true
}

// HasVisual reports whether the devil still owns its scene visual
func (d *Devil) HasVisual() bool {
	return d.visual != nil
}

// World returns the world the devil was spawned into
func (d *Devil) World() WorldSource {
	return d.world
}
