package graphics

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countOpaque(img interface {
	At(x, y int) color.Color
}, w, h int) int {
	n := 0
	for y := range h {
		for x := range w {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
			}
		}
	}
	return n
}

func TestRasterizeLabel(t *testing.T) {
	img := RasterizeLabel("Devil defeated!", color.White, 1)
	require.NotNil(t, img)
	b := img.Bounds()
	assert.Equal(t, 15*7+2*labelPadding, b.Dx())
	assert.Positive(t, countOpaque(img, b.Dx(), b.Dy()))
}

func TestRasterizeLabelScales(t *testing.T) {
	small := RasterizeLabel("hp", color.White, 1)
	big := RasterizeLabel("hp", color.White, 3)
	require.NotNil(t, small)
	require.NotNil(t, big)

	assert.Equal(t, small.Bounds().Dx()*3, big.Bounds().Dx())
	assert.Equal(t,
		countOpaque(small, small.Bounds().Dx(), small.Bounds().Dy())*9,
		countOpaque(big, big.Bounds().Dx(), big.Bounds().Dy()))
}

func TestRasterizeLabelEmpty(t *testing.T) {
	assert.Nil(t, RasterizeLabel("", color.White, 2))
}
