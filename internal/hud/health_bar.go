package hud

import (
	"voxel-devil/internal/entity"
)

// DevilHealthBar keeps a Display in step with the current devil. It listens to
// devil and spawn events and can be resynced every tick with Sync. A nil
// display turns every call into a no-op.
type DevilHealthBar struct {
	display Display
}

func NewDevilHealthBar(display Display) *DevilHealthBar {
	return &DevilHealthBar{display: display}
}

func (b *DevilHealthBar) HealthChanged(_ *entity.Devil, health, maxHealth int) {
	if b.display == nil {
		return
	}
	b.display.SetHealthPercentage(HealthPercentage(health, maxHealth))
}

func (b *DevilHealthBar) Attacked(*entity.Devil, int) {}

func (b *DevilHealthBar) Defeated(*entity.Devil) {
	if b.display == nil {
		return
	}
	b.display.SetVisible(false)
	b.display.NotifyEntityDefeated()
}

func (b *DevilHealthBar) Spawned(d *entity.Devil) {
	if b.display == nil {
		return
	}
	b.display.SetVisible(true)
	b.display.SetHealthPercentage(HealthPercentage(d.Health(), d.MaxHealth()))
}

// Sync pushes the devil's current health. A missing or dead devil hides the bar.
func (b *DevilHealthBar) Sync(d *entity.Devil) {
	if b.display == nil {
		return
	}
	if d == nil || !d.Alive() {
		b.display.SetVisible(false)
		return
	}
	b.display.SetVisible(true)
	b.display.SetHealthPercentage(HealthPercentage(d.Health(), d.MaxHealth()))
}
