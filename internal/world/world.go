package world

// World is a fixed-size voxel grid with block (0,0,0) at its minimum corner.
// Block (x,y,z) occupies [x-0.5,x+0.5] on every axis.
type World struct {
	sizeX, sizeY, sizeZ int
	blocks              []BlockType

	modCount uint64
}

// New creates an empty world of the given dimensions
func New(sizeX, sizeY, sizeZ int) *World {
	return &World{
		sizeX:  sizeX,
		sizeY:  sizeY,
		sizeZ:  sizeZ,
		blocks: make([]BlockType, sizeX*sizeY*sizeZ),
	}
}

// Generate fills the world using gen
func (w *World) Generate(gen TerrainGenerator) {
	clear(w.blocks)
	gen.Populate(w)
	w.modCount++
}

// Size returns the world dimensions in blocks
func (w *World) Size() (int, int, int) {
	return w.sizeX, w.sizeY, w.sizeZ
}

func (w *World) inBounds(x, y, z int) bool {
	return x >= 0 && x < w.sizeX && y >= 0 && y < w.sizeY && z >= 0 && z < w.sizeZ
}

func (w *World) index(x, y, z int) int {
	return (x*w.sizeY+y)*w.sizeZ + z
}

// Get returns the block at x,y,z; outside the grid is air
func (w *World) Get(x, y, z int) BlockType {
	if !w.inBounds(x, y, z) {
		return BlockTypeAir
	}
	return w.blocks[w.index(x, y, z)]
}

// IsAir reports whether x,y,z is empty
func (w *World) IsAir(x, y, z int) bool {
	return w.Get(x, y, z) == BlockTypeAir
}

// Set stores a block; writes outside the grid are ignored
func (w *World) Set(x, y, z int, b BlockType) {
	if !w.inBounds(x, y, z) {
		return
	}
	i := w.index(x, y, z)
	if w.blocks[i] == b {
		return
	}
	w.blocks[i] = b
	w.modCount++
}

// ModCount increases on every block change and on Generate
func (w *World) ModCount() uint64 {
	return w.modCount
}

// SurfaceHeightAt returns the Y of the highest solid block in the column, or -1.
func (w *World) SurfaceHeightAt(x, z int) int {
	for y := w.sizeY - 1; y >= 0; y-- {
		if !w.IsAir(x, y, z) {
			return y
		}
	}
	return -1
}
