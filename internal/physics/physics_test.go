package physics_test

import (
	"testing"

	"voxel-devil/internal/physics"
	"voxel-devil/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatWorld(height int) *world.World {
	w := world.New(16, 16, 16)
	w.Generate(world.NewFlatGenerator(height))
	return w
}

func TestCollides(t *testing.T) {
	w := flatWorld(3) // top surface at y=3.5

	assert.False(t, physics.Collides(mgl32.Vec3{8, 3.5, 8}, 0.3, 1.8, w), "standing on the surface")
	assert.True(t, physics.Collides(mgl32.Vec3{8, 3.4, 8}, 0.3, 1.8, w), "feet inside the top block")
	assert.False(t, physics.Collides(mgl32.Vec3{8, 10, 8}, 0.3, 1.8, w), "in the air")
}

func TestFindGroundLevel(t *testing.T) {
	w := flatWorld(3)
	assert.Equal(t, float32(3.5), physics.FindGroundLevel(8, 8, 10, 0.3, w, -1))
	assert.Equal(t, float32(-1), physics.FindGroundLevel(100, 100, 10, 0.3, w, -1))
}

func TestBodyFallsAndLands(t *testing.T) {
	w := flatWorld(3)
	p := physics.New(32, 200)
	body := &physics.Body{Position: mgl32.Vec3{8, 8, 8}, HalfWidth: 0.3, Height: 1.8}

	for range 120 {
		p.Update(1.0/60.0, body, w)
	}

	require.True(t, body.OnGround)
	assert.InDelta(t, 3.5, body.Position.Y(), 1e-4)
	assert.Equal(t, float32(0), body.Velocity.Y())
}

func TestBodyStopsAtWall(t *testing.T) {
	w := flatWorld(3)
	for y := 4; y < 8; y++ {
		for z := range 16 {
			w.Set(10, y, z, world.BlockTypeStone)
		}
	}
	p := physics.New(32, 200)
	body := &physics.Body{Position: mgl32.Vec3{8, 3.5, 8}, HalfWidth: 0.3, Height: 1.8, OnGround: true}

	for range 120 {
		body.Velocity[0] = 5
		p.Update(1.0/60.0, body, w)
	}

	// wall face is at x=9.5
	assert.LessOrEqual(t, body.Position.X()+0.3, float32(9.5))
	assert.Greater(t, body.Position.X(), float32(9))
}

func TestUpdateAccumulatesPartialSteps(t *testing.T) {
	p := physics.New(0, 100)
	w := flatWorld(1)
	body := &physics.Body{Position: mgl32.Vec3{8, 5, 8}, HalfWidth: 0.3, Height: 1.8}

	assert.Equal(t, 0, p.Update(0.004, body, w))
	assert.Equal(t, 1, p.Update(0.007, body, w))
	assert.Equal(t, 0, p.Update(0, body, w))
	assert.Equal(t, 0, p.Update(0.1, nil, w))
}

func BenchmarkCollides(b *testing.B) {
	w := flatWorld(3)
	pos := mgl32.Vec3{8, 3.5, 8}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.Collides(pos, 0.3, 1.8, w)
	}
}
