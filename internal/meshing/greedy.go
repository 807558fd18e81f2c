package meshing

import (
	"sync"

	"voxel-devil/internal/world"
)

// VertexStride is number of float32 per vertex (pos.xyz + normal.xyz + color.rgb)
const VertexStride = 9

// Grid is the block source a mesh is built from. Cells outside Size must read as air.
type Grid interface {
	Size() (int, int, int)
	Get(x, y, z int) world.BlockType
}

// direction is one face orientation: the normal axis and its sign
type direction struct {
	axis int
	sign int
}

var directions = [6]direction{
	{0, +1}, {0, -1}, // east, west
	{1, +1}, {1, -1}, // top, bottom
	{2, +1}, {2, -1}, // north, south
}

// BuildGreedyMesh builds a triangle list for every block face that touches air.
// Coplanar faces of the same block type are merged into one quad.
// The six face directions are meshed concurrently; g must not change until it returns.
func BuildGreedyMesh(g Grid) []float32 {
	var (
		parts [len(directions)][]float32
		wg    sync.WaitGroup
	)
	for i, d := range directions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			parts[i] = buildGreedyForDirection(g, d)
		}()
	}
	wg.Wait()

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	vertices := make([]float32, 0, n)
	for _, p := range parts {
		vertices = append(vertices, p...)
	}
	return vertices
}

// buildGreedyForDirection walks layers along the normal axis and greedy-merges a
// UxV mask of block types per layer, where u and v are the two remaining axes in
// cyclic order so that u x v points along +axis.
func buildGreedyForDirection(g Grid, d direction) []float32 {
	sx, sy, sz := g.Size()
	size := [3]int{sx, sy, sz}
	u := (d.axis + 1) % 3
	v := (d.axis + 2) % 3
	su, sv := size[u], size[v]

	var vertices []float32
	mask := make([]world.BlockType, su*sv)

	for layer := 0; layer < size[d.axis]; layer++ {
		for iu := 0; iu < su; iu++ {
			for iv := 0; iv < sv; iv++ {
				var p [3]int
				p[d.axis], p[u], p[v] = layer, iu, iv
				bt := g.Get(p[0], p[1], p[2])
				if bt != world.BlockTypeAir {
					p[d.axis] += d.sign
					if g.Get(p[0], p[1], p[2]) != world.BlockTypeAir {
						bt = world.BlockTypeAir
					}
				}
				mask[iu*sv+iv] = bt
			}
		}

		i := 0
		for i < su*sv {
			bt := mask[i]
			if bt == world.BlockTypeAir {
				i++
				continue
			}
			u0 := i / sv
			v0 := i % sv
			width := 1
			for v1 := v0 + 1; v1 < sv && mask[u0*sv+v1] == bt; v1++ {
				width++
			}
			height := 1
		outer:
			for u1 := u0 + 1; u1 < su; u1++ {
				for v1 := v0; v1 < v0+width; v1++ {
					if mask[u1*sv+v1] != bt {
						break outer
					}
				}
				height++
			}

			vertices = emitQuad(vertices, d, u, v, layer, u0, v0, u0+height, v0+width, bt)

			for uu := u0; uu < u0+height; uu++ {
				for vv := v0; vv < v0+width; vv++ {
					mask[uu*sv+vv] = world.BlockTypeAir
				}
			}
		}
	}
	return vertices
}

// emitQuad appends two triangles covering cells [u0,u1)x[v0,v1) of a layer,
// wound counter-clockwise when seen from the side the normal points to.
func emitQuad(vertices []float32, d direction, u, v, layer, u0, v0, u1, v1 int, bt world.BlockType) []float32 {
	// block centres sit on integer coordinates
	plane := float32(layer) - 0.5
	if d.sign > 0 {
		plane += 1
	}
	corner := func(cu, cv int) [3]float32 {
		var c [3]float32
		c[d.axis] = plane
		c[u] = float32(cu) - 0.5
		c[v] = float32(cv) - 0.5
		return c
	}
	c0, c1, c2, c3 := corner(u0, v0), corner(u1, v0), corner(u1, v1), corner(u0, v1)
	if d.sign < 0 {
		c1, c3 = c3, c1
	}

	var n [3]float32
	n[d.axis] = float32(d.sign)
	col := bt.Color()

	for _, c := range [6][3]float32{c0, c1, c2, c2, c3, c0} {
		vertices = append(vertices,
			c[0], c[1], c[2],
			n[0], n[1], n[2],
			col.X(), col.Y(), col.Z(),
		)
	}
	return vertices
}
