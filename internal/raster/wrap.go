package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/multiband-mcp/internal/colorspace"
)

// Wrap builds a byte-encoded Image from a standard image.
//
// An *image.Gray becomes a 1-band gray image and an *image.NRGBA a 4-band
// RGBA image. When the source is anchored at the origin and tightly packed,
// its Pix slice is adopted without copying, and the caller must not keep
// writing to it. Every other image type is first converted to NRGBA.
func Wrap(src image.Image) (*Image, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrConfiguration)
	}

	switch img := src.(type) {
	case *image.Gray:
		return adopt(img.Pix, img.Stride, b, 1, colorspace.GraySpace())
	case *image.NRGBA:
		return adopt(img.Pix, img.Stride, b, 4, colorspace.RGBA())
	}
	n := imaging.Clone(src)
	return adopt(n.Pix, n.Stride, n.Rect, 4, colorspace.RGBA())
}

// adopt takes pix as the raster buffer when it is tight and origin-anchored,
// and copies it row by row otherwise.
func adopt(pix []uint8, stride int, r image.Rectangle, bands int, space colorspace.Descriptor) (*Image, error) {
	m, err := newHeader(r.Dx(), r.Dy(), Byte, space)
	if err != nil {
		return nil, err
	}
	row := r.Dx() * bands
	if r.Min == (image.Point{}) && stride == row && len(pix) == row*r.Dy() {
		m.u8 = pix
		return m, nil
	}

	m.u8 = make([]uint8, row*r.Dy())
	for y := 0; y < r.Dy(); y++ {
		// Pix offsets are relative to Rect.Min, not to (0, 0).
		copy(m.u8[y*row:(y+1)*row], pix[y*stride:y*stride+row])
	}
	return m, nil
}
