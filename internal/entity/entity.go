package entity

import (
	"voxel-devil/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldSource abstracts the World for entities
type WorldSource interface {
	IsAir(x, y, z int) bool
	Get(x, y, z int) world.BlockType
}

// Entity is what the loop and renderer need from any live actor
type Entity interface {
	Position() mgl32.Vec3
	IsDead() bool
	GetBounds() (width, height float32)
}

// Target is an actor an entity can chase and hurt. It is passed on every call
// and may be nil; Locate reports ok=false while the target has no position.
type Target interface {
	Locate() (pos mgl32.Vec3, ok bool)
	TakeDamage(amount int)
}
