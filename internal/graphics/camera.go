package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitOffset is where the orbit camera sits relative to the player's feet
var OrbitOffset = mgl32.Vec3{16, 16, 16}

// SunOffset is where the sun sits relative to the active camera
var SunOffset = mgl32.Vec3{50, 50, 50}

// Camera handles the projection matrix
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       75.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; a zero height keeps the old one
func (c *Camera) SetViewport(width, height int) {
	if height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// View is a camera placement for one frame
type View struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
}

func (v View) Matrix() mgl32.Mat4 {
	return mgl32.LookAtV(v.Eye, v.Target, mgl32.Vec3{0, 1, 0})
}

// FirstPersonView looks from eye along dir
func FirstPersonView(eye, dir mgl32.Vec3) View {
	return View{Eye: eye, Target: eye.Add(dir)}
}

// OrbitView looks at the player from the fixed orbit offset
func OrbitView(playerPos mgl32.Vec3) View {
	return View{Eye: playerPos.Add(OrbitOffset), Target: playerPos}
}

// Sun is the directional light. It follows the camera so the shadow box stays
// around the player while the light angle stays fixed.
type Sun struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Follow places the sun at the camera plus SunOffset, aimed at the camera
func (s *Sun) Follow(camera mgl32.Vec3) {
	s.Position = camera.Add(SunOffset)
	s.Target = camera
}

// Direction is the unit vector light travels along
func (s *Sun) Direction() mgl32.Vec3 {
	d := s.Target.Sub(s.Position)
	if d.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return d.Normalize()
}
