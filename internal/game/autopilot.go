package game

import (
	"math"

	"voxel-devil/internal/entity"
	"voxel-devil/internal/player"
)

// closeEnough is the gap between the player and the target's side at which the
// autopilot stops walking
const closeEnough = 1.0

// Autopilot steers the player toward target and keeps swinging. It is used
// by headless runs. sens is the mouse sensitivity the player applies to look deltas.
func Autopilot(p *player.Player, target entity.Entity, sens float64) player.Intent {
	if target == nil || target.IsDead() || sens <= 0 {
		return player.Intent{}
	}
	width, _ := target.GetBounds()
	eye := p.EyePosition()
	diff := target.Position().Sub(eye)
	horiz := math.Hypot(float64(diff.X()), float64(diff.Z()))

	yaw := math.Atan2(float64(diff.Z()), float64(diff.X())) * 180 / math.Pi
	pitch := math.Atan2(float64(diff.Y()), horiz) * 180 / math.Pi

	in := player.Intent{
		Attack: true,
		LookDX: wrapDegrees(yaw-p.Yaw) / sens,
		LookDY: (pitch - p.Pitch) / sens,
	}
	if horiz > closeEnough+float64(width)/2 {
		in.Forward = 1
		in.Jump = true
	}
	return in
}

// wrapDegrees maps an angle to [-180,180)
func wrapDegrees(a float64) float64 {
	a = math.Mod(a+180, 360)
	if a < 0 {
		a += 360
	}
	return a - 180
}
