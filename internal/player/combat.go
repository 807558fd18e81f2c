package player

import (
	"voxel-devil/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// minFacingCos is how far off the view axis a target may be and still be hit
const minFacingCos = 0.5

// Hittable is something the player can strike in melee
type Hittable interface {
	Position() mgl32.Vec3
	TakeDamage(amount int) bool
}

// ReadyToAttack reports whether the attack intent is held and the cooldown has run out
func (p *Player) ReadyToAttack() bool {
	return p.intent.Attack && p.attackCooldown <= 0
}

// CanHit reports whether target is within reach of the eye, roughly in front
// of the view and not hidden behind a block.
func (p *Player) CanHit(target mgl32.Vec3, w physics.WorldSource) bool {
	eye := p.EyePosition()
	diff := target.Sub(eye)
	dist := diff.Len()
	if dist > p.cfg.AttackReach {
		return false
	}
	if dist > 0 && p.LookDir().Dot(diff.Mul(1/dist)) < minFacingCos {
		return false
	}
	return physics.LineOfSight(eye, target, w)
}

// Strike attacks target if possible and starts the cooldown. It reports
// whether a hit landed.
func (p *Player) Strike(target Hittable, w physics.WorldSource) bool {
	if target == nil || !p.ReadyToAttack() {
		return false
	}
	if !p.CanHit(target.Position(), w) {
		return false
	}
	p.attackCooldown = p.cfg.AttackCooldown.Seconds()
	target.TakeDamage(p.cfg.AttackDamage)
	p.log.Debug("player hit target")
	return true
}
