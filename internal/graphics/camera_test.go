package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitViewTracksPlayer(t *testing.T) {
	v := OrbitView(mgl32.Vec3{10, 5, 10})
	assert.Equal(t, mgl32.Vec3{26, 21, 26}, v.Eye)
	assert.Equal(t, mgl32.Vec3{10, 5, 10}, v.Target)
}

func TestFirstPersonView(t *testing.T) {
	v := FirstPersonView(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 0, 0})
	assert.Equal(t, mgl32.Vec3{2, 2, 3}, v.Target)

	// the eye maps to the origin of view space
	p := v.Matrix().Mul4x1(v.Eye.Vec4(1))
	assert.InDelta(t, 0, p.Vec3().Len(), 1e-5)
}

func TestSunFollowsCamera(t *testing.T) {
	var s Sun
	s.Follow(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, mgl32.Vec3{51, 52, 53}, s.Position)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, s.Target)

	d := s.Direction()
	assert.InDelta(t, 1, d.Len(), 1e-5)
	assert.Less(t, d.Y(), float32(0))
}

func TestCameraViewport(t *testing.T) {
	c := NewCamera(900, 600)
	assert.InDelta(t, 1.5, c.AspectRatio, 1e-6)
	c.SetViewport(100, 0)
	assert.InDelta(t, 1.5, c.AspectRatio, 1e-6)
}
