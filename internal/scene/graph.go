package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Box is the Graph's Visual implementation
type Box struct {
	spec     BoxSpec
	pos      mgl32.Vec3
	disposed bool
	graph    *Graph
}

func (b *Box) SetPosition(pos mgl32.Vec3) {
	b.pos = pos
}

func (b *Box) Position() mgl32.Vec3 {
	return b.pos
}

// Spec returns the shape the box was created with
func (b *Box) Spec() BoxSpec {
	return b.spec
}

// Model returns the box's model matrix; the box is centred on its position.
func (b *Box) Model() mgl32.Mat4 {
	s := b.spec.Size
	return mgl32.Translate3D(b.pos.X(), b.pos.Y(), b.pos.Z()).Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

func (b *Box) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.graph.release()
}

func (b *Box) Disposed() bool {
	return b.disposed
}

// Graph is an in-memory scene. The renderer draws whatever is attached to it.
// It is used from the update goroutine only; the mutex guards Stats readers.
type Graph struct {
	mu       sync.Mutex
	attached []*Box
	live     int
	created  int
	released int
	closed   bool
}

// NewGraph creates an empty scene graph
func NewGraph() *Graph {
	return &Graph{}
}

// NewBox allocates a box visual. It is not attached yet.
func (g *Graph) NewBox(spec BoxSpec) (Visual, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil, ErrClosed
	}
	g.live++
	g.created++
	return &Box{spec: spec, graph: g}, nil
}

func (g *Graph) release() {
	g.mu.Lock()
	g.live--
	g.released++
	g.mu.Unlock()
}

// Attach adds v to the scene. Visuals from other scenes and disposed visuals are ignored.
func (g *Graph) Attach(v Visual) {
	b, ok := v.(*Box)
	if !ok || b == nil || b.graph != g || b.disposed {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, a := range g.attached {
		if a == b {
			return
		}
	}
	g.attached = append(g.attached, b)
}

func (g *Graph) Detach(v Visual) {
	b, ok := v.(*Box)
	if !ok || b == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, a := range g.attached {
		if a == b {
			g.attached = append(g.attached[:i], g.attached[i+1:]...)
			return
		}
	}
}

// Attached returns a copy of the attached boxes in attach order
func (g *Graph) Attached() []*Box {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Box, len(g.attached))
	copy(out, g.attached)
	return out
}

// Stats reports visual counts: currently allocated, ever created, released.
func (g *Graph) Stats() (live, created, released int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.live, g.created, g.released
}

// Close detaches everything and refuses new visuals
func (g *Graph) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.attached = nil
}
