package physics

import (
	"voxel-devil/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	TerminalVelocity = -78.4
	maxFrameTime     = 0.25
)

// Body is an axis-aligned box moved by the integrator. Position is the centre of its feet.
type Body struct {
	Position  mgl32.Vec3
	Velocity  mgl32.Vec3
	HalfWidth float32
	Height    float32
	OnGround  bool
}

// Physics integrates bodies at a fixed simulation rate
type Physics struct {
	Gravity     float32
	stepSize    float64
	accumulator float64
}

// New creates an integrator stepping rate times per second
func New(gravity float32, rate int) *Physics {
	if rate <= 0 {
		rate = 200
	}
	return &Physics{
		Gravity:  gravity,
		stepSize: 1.0 / float64(rate),
	}
}

// StepSize returns the fixed step in seconds
func (p *Physics) StepSize() float64 {
	return p.stepSize
}

// Update advances b by dt using as many fixed steps as fit. Leftover time carries
// over to the next call. It returns the number of steps taken.
func (p *Physics) Update(dt float64, b *Body, w WorldSource) int {
	defer profiling.Track("physics.Update")()
	if b == nil || dt <= 0 {
		return 0
	}
	p.accumulator += min(dt, maxFrameTime)

	steps := 0
	for p.accumulator >= p.stepSize {
		p.step(float32(p.stepSize), b, w)
		p.accumulator -= p.stepSize
		steps++
	}
	return steps
}

func (p *Physics) step(h float32, b *Body, w WorldSource) {
	b.Velocity[1] -= p.Gravity * h
	if b.Velocity[1] < TerminalVelocity {
		b.Velocity[1] = TerminalVelocity
	}

	// X and Z are resolved separately so the body slides along walls
	if next := b.Position.Add(mgl32.Vec3{b.Velocity.X() * h, 0, 0}); Collides(next, b.HalfWidth, b.Height, w) {
		b.Velocity[0] = 0
	} else {
		b.Position = next
	}
	if next := b.Position.Add(mgl32.Vec3{0, 0, b.Velocity.Z() * h}); Collides(next, b.HalfWidth, b.Height, w) {
		b.Velocity[2] = 0
	} else {
		b.Position = next
	}

	next := b.Position.Add(mgl32.Vec3{0, b.Velocity.Y() * h, 0})
	if !Collides(next, b.HalfWidth, b.Height, w) {
		b.Position = next
		b.OnGround = false
		return
	}
	if b.Velocity.Y() < 0 {
		b.Position[1] = FindGroundLevel(b.Position.X(), b.Position.Z(), b.Position.Y(), b.HalfWidth, w, b.Position.Y())
		b.OnGround = true
	}
	b.Velocity[1] = 0
}
