package meshing

import "voxel-devil/internal/profiling"

// Source is a Grid that reports when its blocks change
type Source interface {
	Grid
	ModCount() uint64
}

// Cache keeps the last mesh and rebuilds it only after the source changed
type Cache struct {
	vertices []float32
	version  uint64
	built    bool
}

// Mesh returns the current mesh of src and the ModCount it was built at.
// The returned slice must not be modified.
func (c *Cache) Mesh(src Source) ([]float32, uint64) {
	if v := src.ModCount(); !c.built || v != c.version {
		func() {
			defer profiling.Track("meshing.greedy")()
			c.vertices = BuildGreedyMesh(src)
		}()
		c.version = v
		c.built = true
	}
	return c.vertices, c.version
}
