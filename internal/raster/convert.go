package raster

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/multiband-mcp/internal/colorspace"
)

// Convert samples src and stores every pixel in space, using enc for the
// result. Samples that do not fit the encoding are clamped (Byte) or
// truncated (Int) as SetSample does; use Float to keep fractional bands such
// as HSV saturation.
//
// Alpha is not carried over. Fully transparent pixels convert as black.
func Convert(src image.Image, space colorspace.Converter, enc Encoding) (*Image, error) {
	b := src.Bounds()
	m, err := New(b.Dx(), b.Dy(), enc, space)
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, _ := colorful.MakeColor(src.At(x, y))
			for band, v := range space.FromRGB(c) {
				m.SetSample(x-b.Min.X, y-b.Min.Y, band, v)
			}
		}
	}
	return m, nil
}
