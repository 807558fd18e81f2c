package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeBedrock
)

// Solid reports whether the block blocks movement
func (b BlockType) Solid() bool {
	return b != BlockTypeAir
}

// Breakable reports whether the player may remove the block
func (b BlockType) Breakable() bool {
	return b != BlockTypeAir && b != BlockTypeBedrock
}

// Color returns the flat shading color used by the renderer
func (b BlockType) Color() mgl32.Vec3 {
	switch b {
	case BlockTypeGrass:
		return mgl32.Vec3{0.30, 0.75, 0.25}
	case BlockTypeDirt:
		return mgl32.Vec3{0.50, 0.35, 0.20}
	case BlockTypeStone:
		return mgl32.Vec3{0.50, 0.50, 0.52}
	case BlockTypeBedrock:
		return mgl32.Vec3{0.15, 0.15, 0.15}
	default:
		return mgl32.Vec3{0.5, 0.5, 0.5}
	}
}

func (b BlockType) String() string {
	switch b {
	case BlockTypeAir:
		return "air"
	case BlockTypeGrass:
		return "grass"
	case BlockTypeDirt:
		return "dirt"
	case BlockTypeStone:
		return "stone"
	case BlockTypeBedrock:
		return "bedrock"
	default:
		return "unknown"
	}
}
