package player

import (
	"math"

	"voxel-devil/internal/config"
	"voxel-devil/internal/logging"
	"voxel-devil/internal/physics"
	"voxel-devil/internal/profiling"
	"voxel-devil/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	EyeHeight = 1.62
	Height    = 1.8
	HalfWidth = 0.3
)

// Terrain is the world access the player needs to look at and break blocks
type Terrain interface {
	physics.WorldSource
	Get(x, y, z int) world.BlockType
	Set(x, y, z int, b world.BlockType)
}

// Hooks are optional callbacks for player state changes
type Hooks struct {
	HealthChanged func(health, maxHealth int)
	Died          func(deaths int)
}

type Player struct {
	Body physics.Body

	// Yaw and Pitch are in degrees; yaw 0 looks down +X
	Yaw   float64
	Pitch float64

	Health    int
	MaxHealth int
	Deaths    int

	// Spawn is where the player's feet return to after dying
	Spawn mgl32.Vec3

	HoveredBlock    [3]int
	HasHoveredBlock bool

	cfg            config.PlayerConfig
	intent         Intent
	attackCooldown float64
	hooks          []Hooks
	log            *zap.Logger
}

// New creates a player standing at spawn with full health
func New(cfg config.PlayerConfig, spawn mgl32.Vec3, logger *zap.Logger) *Player {
	return &Player{
		Body: physics.Body{
			Position:  spawn,
			HalfWidth: HalfWidth,
			Height:    Height,
		},
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Spawn:     spawn,
		cfg:       cfg,
		log:       logging.OrNop(logger).Named("player"),
	}
}

// AddHooks registers callbacks and immediately reports the current health
func (p *Player) AddHooks(h Hooks) {
	p.hooks = append(p.hooks, h)
	if h.HealthChanged != nil {
		h.HealthChanged(p.Health, p.MaxHealth)
	}
}

// Position returns the player's feet position
func (p *Player) Position() mgl32.Vec3 {
	return p.Body.Position
}

func (p *Player) EyePosition() mgl32.Vec3 {
	return p.Body.Position.Add(mgl32.Vec3{0, EyeHeight, 0})
}

// Locate returns the centre of the player's body. The player is always present.
func (p *Player) Locate() (mgl32.Vec3, bool) {
	return p.Body.Position.Add(mgl32.Vec3{0, Height / 2, 0}), true
}

// LookDir returns the unit view direction
func (p *Player) LookDir() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.Yaw))
	pt := mgl32.DegToRad(float32(p.Pitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

func (p *Player) ViewMatrix() mgl32.Mat4 {
	eye := p.EyePosition()
	return mgl32.LookAtV(eye, eye.Add(p.LookDir()), mgl32.Vec3{0, 1, 0})
}

// TakeDamage lowers health, clamped at zero. Reaching zero counts a death and
// respawns the player.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.Health = max(p.Health-amount, 0)
	p.log.Debug("player took damage", zap.Int("amount", amount), zap.Int("health", p.Health))
	p.notifyHealth()
	if p.Health == 0 {
		p.die()
	}
}

func (p *Player) die() {
	p.Deaths++
	p.log.Info("player died", zap.Int("deaths", p.Deaths))
	for _, h := range p.hooks {
		if h.Died != nil {
			h.Died(p.Deaths)
		}
	}
	p.Respawn()
}

// Respawn puts the player back at the spawn point with full health
func (p *Player) Respawn() {
	p.Body.Position = p.Spawn
	p.Body.Velocity = mgl32.Vec3{}
	p.Body.OnGround = false
	p.Health = p.MaxHealth
	p.attackCooldown = 0
	p.notifyHealth()
}

func (p *Player) notifyHealth() {
	for _, h := range p.hooks {
		if h.HealthChanged != nil {
			h.HealthChanged(p.Health, p.MaxHealth)
		}
	}
}

// Update runs after physics: it refreshes the hovered block, breaks it when
// asked and counts down the attack cooldown.
func (p *Player) Update(dt float64, w Terrain) {
	defer profiling.Track("player.Update")()

	if p.attackCooldown > 0 {
		p.attackCooldown = max(p.attackCooldown-dt, 0)
	}

	res := physics.Raycast(p.EyePosition(), p.LookDir(), physics.MinReachDistance, physics.MaxReachDistance, w)
	p.HasHoveredBlock = res.Hit
	if res.Hit {
		p.HoveredBlock = res.HitPosition
	}

	if p.intent.Break && p.HasHoveredBlock {
		x, y, z := p.HoveredBlock[0], p.HoveredBlock[1], p.HoveredBlock[2]
		if b := w.Get(x, y, z); b.Breakable() {
			w.Set(x, y, z, world.BlockTypeAir)
			p.HasHoveredBlock = false
			p.log.Debug("block broken", zap.Stringer("block", b), zap.Int("x", x), zap.Int("y", y), zap.Int("z", z))
		}
	}
}
