package graphics

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelPadding is the margin around rasterised text, in source pixels
const labelPadding = 2

// RasterizeLabel draws text with the built-in 7x13 face onto a transparent
// image, scaled up by an integer factor. It returns nil for empty text.
func RasterizeLabel(text string, fg color.Color, scale int) *image.RGBA {
	if text == "" {
		return nil
	}
	scale = max(scale, 1)
	face := basicfont.Face7x13

	width := font.MeasureString(face, text).Ceil() + 2*labelPadding
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil() + 2*labelPadding

	src := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(labelPadding, labelPadding+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	for y := range height {
		for x := range width {
			c := src.RGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			draw.Draw(dst, image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale), image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	return dst
}
