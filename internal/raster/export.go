package raster

import (
	"fmt"
	"image"
	"strings"

	"github.com/ironsheep/multiband-mcp/internal/colorspace"
)

// LayeredByteImages splits the image into one 8-bit gray image per band,
// rescaling each band from its native range to [0, 255].
//
// A byte-encoded image in a Gray color space is returned as a single layer
// that shares the raster buffer: no copy and no rescale. Writes through that
// layer are visible in the image.
func (m *Image) LayeredByteImages() []*image.Gray {
	if m.space.Kind() == colorspace.Gray && m.enc == Byte {
		return []*image.Gray{{Pix: m.u8, Stride: m.width, Rect: m.Bounds()}}
	}

	layers := make([]*image.Gray, m.bands)
	for b := range layers {
		layers[b] = image.NewGray(m.Bounds())
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			base := (y*m.width + x) * m.bands
			dst := y*m.width + x
			for b, layer := range layers {
				layer.Pix[dst] = m.scale.toByte(b, m.at(base+b))
			}
		}
	}
	return layers
}

// InterleavedByteImage renders a 3- or 4-band image as one 8-bit image using
// the same per-band rescale as LayeredByteImages. Three bands become opaque
// RGB; a fourth band becomes straight alpha.
//
// Any other band count returns ErrUnsupportedLayout.
func (m *Image) InterleavedByteImage() (*image.NRGBA, error) {
	if m.bands != 3 && m.bands != 4 {
		return nil, fmt.Errorf("%w: %d bands cannot be interleaved", ErrUnsupportedLayout, m.bands)
	}

	dst := image.NewNRGBA(m.Bounds())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			src := (y*m.width + x) * m.bands
			o := y*dst.Stride + x*4
			for b := 0; b < m.bands; b++ {
				dst.Pix[o+b] = m.scale.toByte(b, m.at(src+b))
			}
			if m.bands == 3 {
				dst.Pix[o+3] = 0xff
			}
		}
	}
	return dst, nil
}

// String returns a one-line diagnostic summary: encoding, band count, color
// space, dimensions and per-band extrema. The format is not stable.
func (m *Image) String() string {
	ext := m.Extrema()
	mins := make([]string, len(ext))
	maxs := make([]string, len(ext))
	for i, e := range ext {
		mins[i] = fmt.Sprintf("%g", e.Min)
		maxs[i] = fmt.Sprintf("%g", e.Max)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "raster.Image{%s/%d %s %dx%d", m.enc, m.bands, colorspace.Name(m.space), m.width, m.height)
	if m.path != "" {
		fmt.Fprintf(&sb, " %s", m.path)
	}
	fmt.Fprintf(&sb, " min: %s / max: %s}", strings.Join(mins, ", "), strings.Join(maxs, ", "))
	return sb.String()
}
