package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Intent is one tick of player commands, already mapped from raw input
type Intent struct {
	Forward float32 // -1 back, +1 forward
	Strafe  float32 // -1 left, +1 right
	Jump    bool
	Attack  bool
	Break   bool

	// LookDX and LookDY are raw mouse deltas; positive DY looks up
	LookDX float64
	LookDY float64
}

// ApplyInput turns the view, sets horizontal velocity and jumps when grounded.
// It must run before physics for the tick.
func (p *Player) ApplyInput(in Intent) {
	p.intent = in

	p.Yaw += in.LookDX * p.cfg.MouseSens
	p.Pitch += in.LookDY * p.cfg.MouseSens
	p.Pitch = min(max(p.Pitch, -89), 89)

	yaw := float64(mgl32.DegToRad(float32(p.Yaw)))
	forward := mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(math.Sin(yaw))}
	right := mgl32.Vec3{-forward.Z(), 0, forward.X()}

	move := forward.Mul(in.Forward).Add(right.Mul(in.Strafe))
	if l := move.Len(); l > 1 {
		move = move.Mul(1 / l)
	}
	move = move.Mul(p.cfg.WalkSpeed)
	p.Body.Velocity[0] = move.X()
	p.Body.Velocity[2] = move.Z()

	if in.Jump && p.Body.OnGround {
		p.Body.Velocity[1] = p.cfg.JumpSpeed
		p.Body.OnGround = false
	}
}

// Intent returns the last applied intent
func (p *Player) Intent() Intent {
	return p.intent
}
