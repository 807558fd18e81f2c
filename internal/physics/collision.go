package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldSource is the voxel access physics needs
type WorldSource interface {
	IsAir(x, y, z int) bool
}

// Collides reports whether a box with its feet centred at pos overlaps a solid block.
// Block (x,y,z) spans [x-0.5,x+0.5] on every axis.
func Collides(pos mgl32.Vec3, halfWidth, height float32, w WorldSource) bool {
	minX := int(math.Floor(float64(pos.X() - halfWidth + 0.5)))
	maxX := int(math.Floor(float64(pos.X() + halfWidth + 0.5)))
	minY := int(math.Floor(float64(pos.Y() + 0.5)))
	maxY := int(math.Floor(float64(pos.Y() + height + 0.5)))
	minZ := int(math.Floor(float64(pos.Z() - halfWidth + 0.5)))
	maxZ := int(math.Floor(float64(pos.Z() + halfWidth + 0.5)))

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if w.IsAir(x, y, z) {
					continue
				}
				blockMinX := float32(x) - 0.5
				blockMaxX := float32(x) + 0.5
				blockMinY := float32(y) - 0.5
				blockMaxY := float32(y) + 0.5
				blockMinZ := float32(z) - 0.5
				blockMaxZ := float32(z) + 0.5

				if pos.X()-halfWidth < blockMaxX && pos.X()+halfWidth > blockMinX &&
					pos.Y() < blockMaxY && pos.Y()+height > blockMinY &&
					pos.Z()-halfWidth < blockMaxZ && pos.Z()+halfWidth > blockMinZ {
					return true
				}
			}
		}
	}
	return false
}

// FindGroundLevel returns the top surface of the highest solid block under the
// footprint at or below fromY, or fallback when the column is empty.
func FindGroundLevel(x, z, fromY, halfWidth float32, w WorldSource, fallback float32) float32 {
	// skin keeps a body resting flush against a wall from standing on it
	const skin = 1e-3
	minX := int(math.Floor(float64(x - halfWidth + skin + 0.5)))
	maxX := int(math.Floor(float64(x + halfWidth - skin + 0.5)))
	minZ := int(math.Floor(float64(z - halfWidth + skin + 0.5)))
	maxZ := int(math.Floor(float64(z + halfWidth - skin + 0.5)))
	startY := int(math.Floor(float64(fromY) + 0.5))

	found := false
	maxGroundY := float32(math.Inf(-1))
	for bx := minX; bx <= maxX; bx++ {
		for bz := minZ; bz <= maxZ; bz++ {
			for by := startY; by >= 0; by-- {
				if !w.IsAir(bx, by, bz) {
					groundY := float32(by) + 0.5 // top of block
					if groundY > maxGroundY {
						maxGroundY = groundY
						found = true
					}
					break
				}
			}
		}
	}
	if !found {
		return fallback
	}
	return maxGroundY
}
