package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	assert.True(t, im.IsActive(ActionJump))
	assert.True(t, im.JustPressed(ActionJump))

	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeySpace, glfw.Repeat)
	assert.True(t, im.IsActive(ActionJump))
	assert.False(t, im.JustPressed(ActionJump), "repeat is not a new press")

	im.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	assert.False(t, im.IsActive(ActionJump))
	assert.True(t, im.JustReleased(ActionJump))

	im.PostUpdate()
	assert.False(t, im.JustReleased(ActionJump))
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := range ActionCount {
		assert.False(t, im.IsActive(a))
	}
	assert.False(t, im.IsActive(ActionCount))
}

func TestIntentMapping(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	im.HandleCursorPos(100, 100)
	im.HandleCursorPos(110, 95)

	in := im.Intent()
	assert.Equal(t, float32(1), in.Forward)
	assert.Equal(t, float32(-1), in.Strafe)
	assert.True(t, in.Attack)
	assert.True(t, in.Break)
	assert.Equal(t, 10.0, in.LookDX)
	assert.Equal(t, 5.0, in.LookDY)

	im.PostUpdate()
	in = im.Intent()
	assert.True(t, in.Attack, "attack stays held")
	assert.False(t, in.Break, "break fires once per press")
	assert.Zero(t, in.LookDX)
}

func TestOpposingKeysCancel(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyS, glfw.Press)
	assert.Zero(t, im.Intent().Forward)
}

func TestResetCursor(t *testing.T) {
	im := NewInputManager()
	im.HandleCursorPos(0, 0)
	im.HandleCursorPos(50, 0)
	im.ResetCursor()
	im.HandleCursorPos(500, 500)
	assert.Zero(t, im.Intent().LookDX)
}
