package physics_test

import (
	"testing"

	"voxel-devil/internal/physics"
	"voxel-devil/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRaycast(t *testing.T) {
	w := world.New(16, 16, 16)
	w.Set(5, 0, 0, world.BlockTypeStone)

	start := mgl32.Vec3{0, 0, 0}
	dir := mgl32.Vec3{1, 0, 0}

	result := physics.Raycast(start, dir, 0.1, 10.0, w)
	if !result.Hit {
		t.Fatalf("Expected hit, got miss")
	}
	if result.HitPosition != [3]int{5, 0, 0} {
		t.Errorf("Expected hit at {5,0,0}, got %v", result.HitPosition)
	}
	if result.AdjacentPosition != [3]int{4, 0, 0} {
		t.Errorf("Expected adjacent at {4,0,0}, got %v", result.AdjacentPosition)
	}
	// Block 5 starts at x=4.5
	if result.Distance < 4.49 || result.Distance > 4.51 {
		t.Errorf("Expected distance 4.5, got %f", result.Distance)
	}

	if short := physics.Raycast(start, dir, 0.1, 4.0, w); short.Hit {
		t.Errorf("Expected miss due to maxDist, got hit at %v", short.HitPosition)
	}
	if up := physics.Raycast(start, mgl32.Vec3{0, 1, 0}, 0.1, 10.0, w); up.Hit {
		t.Errorf("Expected miss looking up, got hit at %v", up.HitPosition)
	}
	if none := physics.Raycast(start, mgl32.Vec3{}, 0.1, 10.0, w); none.Hit {
		t.Errorf("Expected miss for zero direction")
	}
}

func TestRaycastDiagonal(t *testing.T) {
	w := world.New(16, 16, 16)
	w.Set(2, 2, 2, world.BlockTypeStone)

	result := physics.Raycast(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, 0.1, 10.0, w)
	if !result.Hit {
		t.Fatalf("Expected hit at {2,2,2}, got miss")
	}
	if result.HitPosition != [3]int{2, 2, 2} {
		t.Errorf("Expected hit at {2,2,2}, got %v", result.HitPosition)
	}
}

func TestLineOfSight(t *testing.T) {
	w := world.New(16, 16, 16)
	a := mgl32.Vec3{1, 1, 1}
	b := mgl32.Vec3{8, 1, 1}

	if !physics.LineOfSight(a, b, w) {
		t.Errorf("Expected clear line of sight in empty world")
	}
	w.Set(4, 1, 1, world.BlockTypeDirt)
	if physics.LineOfSight(a, b, w) {
		t.Errorf("Expected wall to block line of sight")
	}
	if !physics.LineOfSight(a, a, w) {
		t.Errorf("Expected zero-length segment to be clear")
	}
}

func BenchmarkRaycast(b *testing.B) {
	w := world.New(16, 16, 16)
	for x := range 16 {
		for y := range 16 {
			w.Set(x, y, 10, world.BlockTypeGrass)
		}
	}
	start := mgl32.Vec3{8, 8, 0}
	dir := mgl32.Vec3{0, 0, 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.Raycast(start, dir, 0.1, 20.0, w)
	}
}
