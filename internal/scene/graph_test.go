package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachDetach(t *testing.T) {
	g := NewGraph()
	v, err := g.NewBox(BoxSpec{Name: "devil", Size: mgl32.Vec3{1, 2, 1}})
	require.NoError(t, err)

	g.Attach(v)
	g.Attach(v)
	assert.Len(t, g.Attached(), 1, "attach is idempotent")

	g.Detach(v)
	g.Detach(v)
	g.Detach(nil)
	assert.Empty(t, g.Attached())
}

func TestDisposeOnce(t *testing.T) {
	g := NewGraph()
	v, err := g.NewBox(BoxSpec{})
	require.NoError(t, err)

	v.Dispose()
	v.Dispose()
	assert.True(t, v.Disposed())

	live, created, released := g.Stats()
	assert.Equal(t, 0, live)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, released)

	g.Attach(v)
	assert.Empty(t, g.Attached(), "disposed visuals cannot be attached")
}

func TestClosedGraphRefusesBoxes(t *testing.T) {
	g := NewGraph()
	g.Close()
	_, err := g.NewBox(BoxSpec{})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestBoxModelIsCentred(t *testing.T) {
	g := NewGraph()
	v, err := g.NewBox(BoxSpec{Size: mgl32.Vec3{1, 2, 1}})
	require.NoError(t, err)
	v.SetPosition(mgl32.Vec3{3, 2, 5})

	m := v.(*Box).Model()
	top := m.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1})
	bottom := m.Mul4x1(mgl32.Vec4{0, -0.5, 0, 1})
	assert.InDelta(t, 3.0, top.Y(), 1e-6)
	assert.InDelta(t, 1.0, bottom.Y(), 1e-6)
	assert.InDelta(t, 3.0, top.X(), 1e-6)
}
