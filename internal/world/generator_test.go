package world

import (
	"testing"
)

func TestGeneratorsImplementInterface(t *testing.T) {
	var _ TerrainGenerator = NewGenerator(123, 8)
	var _ TerrainGenerator = NewFlatGenerator(10)
}

func TestFlatGeneratorColumns(t *testing.T) {
	w := New(4, 16, 4)
	w.Generate(NewFlatGenerator(5))

	if b := w.Get(0, 0, 0); b != BlockTypeBedrock {
		t.Errorf("Expected bedrock at y=0, got %v", b)
	}
	for y := 1; y < 5; y++ {
		if b := w.Get(0, y, 0); b != BlockTypeDirt {
			t.Errorf("Expected dirt at y=%d, got %v", y, b)
		}
	}
	if b := w.Get(0, 5, 0); b != BlockTypeGrass {
		t.Errorf("Expected grass at y=5, got %v", b)
	}
	if b := w.Get(0, 6, 0); b != BlockTypeAir {
		t.Errorf("Expected air at y=6, got %v", b)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := NewGenerator(42, 8)
	b := NewGenerator(42, 8)
	for x := 0; x < 64; x += 7 {
		for z := 0; z < 64; z += 5 {
			if a.HeightAt(x, z) != b.HeightAt(x, z) {
				t.Fatalf("HeightAt differs for the same seed at %d,%d", x, z)
			}
		}
	}
}

func TestGeneratorHeightRange(t *testing.T) {
	g := NewGenerator(7, 8)
	for x := range 64 {
		for z := range 64 {
			h := g.HeightAt(x, z)
			if h < 0 || h > 16 {
				t.Fatalf("Height %d at %d,%d outside [0,16]", h, x, z)
			}
		}
	}
}

func TestGeneratedWorldHasSurfaceEverywhere(t *testing.T) {
	w := New(64, 32, 64)
	w.Generate(NewGenerator(99, 8))
	for x := 0; x < 64; x += 9 {
		for z := 0; z < 64; z += 9 {
			if w.SurfaceHeightAt(x, z) < 0 {
				t.Fatalf("Expected terrain at %d,%d", x, z)
			}
			if w.Get(x, 0, z) != BlockTypeBedrock {
				t.Fatalf("Expected bedrock floor at %d,%d", x, z)
			}
		}
	}
}

func TestFadeEndpoints(t *testing.T) {
	if fade(0) != 0 || fade(1) != 1 {
		t.Errorf("fade must map 0->0 and 1->1")
	}
}

func BenchmarkGenerate(b *testing.B) {
	w := New(64, 32, 64)
	g := NewGenerator(1, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Generate(g)
	}
}
