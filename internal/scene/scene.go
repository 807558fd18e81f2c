package scene

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrClosed is returned when creating a visual on a closed scene
var ErrClosed = errors.New("scene closed")

// BoxSpec describes an axis-aligned box visual. Size is width, height, depth.
type BoxSpec struct {
	Name          string
	Size          mgl32.Vec3
	Color         mgl32.Vec3
	CastShadow    bool
	ReceiveShadow bool
}

// Visual is a renderable resource owned by exactly one entity.
type Visual interface {
	SetPosition(pos mgl32.Vec3)
	Position() mgl32.Vec3
	// Dispose releases the resource. Calling it again is a no-op.
	Dispose()
	Disposed() bool
}

// Scene is the attach/detach point for visuals.
type Scene interface {
	NewBox(spec BoxSpec) (Visual, error)
	Attach(v Visual)
	// Detach removes v. Detaching a nil or already detached visual is a no-op.
	Detach(v Visual)
}
