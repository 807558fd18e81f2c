package world

import (
	"math"
)

// TerrainGenerator decides the terrain column height and fills the grid
type TerrainGenerator interface {
	HeightAt(worldX, worldZ int) int
	Populate(w *World)
}

// Generator is a noise heightmap terrain generator.
type Generator struct {
	seed        int64
	scale       float64
	baseHeight  int
	amp         float64
	octaves     int
	persistence float64
	lacunarity  float64
	stoneDepth  int
}

// NewGenerator creates a heightmap generator centred on baseHeight
func NewGenerator(seed int64, baseHeight int) *Generator {
	return &Generator{
		seed:        seed,
		scale:       1.0 / 32.0,
		baseHeight:  baseHeight,
		amp:         8,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
		stoneDepth:  3,
	}
}

// HeightAt computes the surface block Y at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale
	n := octaveNoise2D(x, z, g.seed, g.octaves, g.persistence, g.lacunarity)
	height := float64(g.baseHeight) + (n-0.5)*2*g.amp
	if height < 0 {
		height = 0
	}
	return int(math.Floor(height))
}

// Populate fills every column: bedrock at y=0, stone, dirt, then grass on top.
func (g *Generator) Populate(w *World) {
	fillColumns(w, g.HeightAt, g.stoneDepth)
}

// FlatGenerator produces a flat world at a fixed height
type FlatGenerator struct {
	height int
}

func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{height: height}
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.height
}

func (g *FlatGenerator) Populate(w *World) {
	fillColumns(w, g.HeightAt, 0)
}

func fillColumns(w *World, heightAt func(x, z int) int, stoneDepth int) {
	for x := range w.sizeX {
		for z := range w.sizeZ {
			top := min(heightAt(x, z), w.sizeY-1)
			for y := 0; y <= top; y++ {
				switch {
				case y == 0:
					w.Set(x, y, z, BlockTypeBedrock)
				case y == top:
					w.Set(x, y, z, BlockTypeGrass)
				case y < top-stoneDepth:
					w.Set(x, y, z, BlockTypeStone)
				default:
					w.Set(x, y, z, BlockTypeDirt)
				}
			}
		}
	}
}
