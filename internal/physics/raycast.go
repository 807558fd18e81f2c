package physics

import (
	"math"

	"voxel-devil/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0
)

// RaycastResult stores the result of a raycast
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Distance         float32
	Hit              bool
}

// Raycast walks the voxel grid from start along direction (DDA) and reports the
// first solid block between minDist and maxDist.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, w WorldSource) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	if direction.Len() == 0 {
		return RaycastResult{}
	}
	dir := direction.Normalize()

	// Shift into a grid where block (x,y,z) spans [x,x+1)
	pos := start.Add(mgl32.Vec3{0.5, 0.5, 0.5})
	grid := [3]int{
		int(math.Floor(float64(pos.X()))),
		int(math.Floor(float64(pos.Y()))),
		int(math.Floor(float64(pos.Z()))),
	}

	var step [3]int
	var delta, sideDist [3]float32
	for axis := range 3 {
		d := dir[axis]
		switch {
		case d > 0:
			step[axis] = 1
			delta[axis] = 1 / d
			sideDist[axis] = (float32(grid[axis]) + 1 - pos[axis]) * delta[axis]
		case d < 0:
			step[axis] = -1
			delta[axis] = -1 / d
			sideDist[axis] = (pos[axis] - float32(grid[axis])) * delta[axis]
		default:
			delta[axis] = float32(math.Inf(1))
			sideDist[axis] = float32(math.Inf(1))
		}
	}

	lastEmpty := grid
	var dist float32
	for dist <= maxDist {
		axis := 0
		if sideDist[1] < sideDist[axis] {
			axis = 1
		}
		if sideDist[2] < sideDist[axis] {
			axis = 2
		}
		dist = sideDist[axis]
		sideDist[axis] += delta[axis]
		grid[axis] += step[axis]

		if dist > maxDist {
			break
		}
		if dist >= minDist && !w.IsAir(grid[0], grid[1], grid[2]) {
			return RaycastResult{
				HitPosition:      grid,
				AdjacentPosition: lastEmpty,
				Distance:         dist,
				Hit:              true,
			}
		}
		lastEmpty = grid
	}

	return RaycastResult{}
}

// LineOfSight reports whether no solid block lies on the segment from a to b.
func LineOfSight(a, b mgl32.Vec3, w WorldSource) bool {
	d := b.Sub(a)
	length := d.Len()
	if length == 0 {
		return true
	}
	return !Raycast(a, d, 0, length, w).Hit
}
