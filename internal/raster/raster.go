package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/ironsheep/multiband-mcp/internal/colorspace"
)

// Image is a width x height grid of pixels with Bands() samples each,
// stored interleaved in row-major order.
//
// Exactly one of the sample buffers is allocated, chosen by the encoding.
type Image struct {
	width  int
	height int
	bands  int
	enc    Encoding
	space  colorspace.Descriptor
	scale  *scaler
	u8     []uint8
	i32    []int32
	f32    []float32
	path   string
}

// New allocates a zero-filled image with space.Bands() bands.
//
// It returns an error wrapping ErrConfiguration when the dimensions are not
// positive, when enc does not support the band count, or when space has a
// degenerate band range.
func New(width, height int, enc Encoding, space colorspace.Descriptor) (*Image, error) {
	m, err := newHeader(width, height, enc, space)
	if err != nil {
		return nil, err
	}
	n := width * height * m.bands
	switch enc {
	case Byte:
		m.u8 = make([]uint8, n)
	case Int:
		m.i32 = make([]int32, n)
	case Float:
		m.f32 = make([]float32, n)
	}
	return m, nil
}

// newHeader validates the configuration and builds an image without a buffer.
func newHeader(width, height int, enc Encoding, space colorspace.Descriptor) (*Image, error) {
	if space == nil {
		return nil, fmt.Errorf("%w: nil color space", ErrConfiguration)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrConfiguration, width, height)
	}
	if err := colorspace.Validate(space); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	bands := space.Bands()
	if !enc.Supports(bands) {
		return nil, fmt.Errorf("%w: %s encoding with %d bands", ErrConfiguration, enc, bands)
	}
	sc, err := newScaler(space)
	if err != nil {
		return nil, err
	}
	return &Image{
		width:  width,
		height: height,
		bands:  bands,
		enc:    enc,
		space:  space,
		scale:  sc,
	}, nil
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// Bands returns the number of samples per pixel.
func (m *Image) Bands() int { return m.bands }

// Encoding returns the sample type.
func (m *Image) Encoding() Encoding { return m.enc }

// Space returns the color space descriptor the image was built with.
func (m *Image) Space() colorspace.Descriptor { return m.space }

// Path returns the file the image was loaded from, or "" if it was not
// loaded by Load or LoadWith.
func (m *Image) Path() string { return m.path }

// NofElements returns width*height*bands.
func (m *Image) NofElements() int { return m.width * m.height * m.bands }

func (m *Image) offset(x, y, band int) (int, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height || band < 0 || band >= m.bands {
		return 0, false
	}
	return (y*m.width+x)*m.bands + band, true
}

// Sample returns one sample as a float64. Coordinates or bands outside the
// image return 0.
func (m *Image) Sample(x, y, band int) float64 {
	i, ok := m.offset(x, y, band)
	if !ok {
		return 0
	}
	return m.at(i)
}

func (m *Image) at(i int) float64 {
	switch m.enc {
	case Byte:
		return float64(m.u8[i])
	case Int:
		return float64(m.i32[i])
	default:
		return float64(m.f32[i])
	}
}

// SetSample stores v at (x, y, band), converting it to the image encoding.
// Byte samples are rounded and clamped to [0, 255]; Int samples are truncated
// toward zero and clamped to the int32 range. Out-of-range positions are
// ignored.
func (m *Image) SetSample(x, y, band int, v float64) {
	i, ok := m.offset(x, y, band)
	if !ok {
		return
	}
	switch m.enc {
	case Byte:
		m.u8[i] = clampByte(math.Round(v))
	case Int:
		m.i32[i] = clampInt32(v)
	case Float:
		m.f32[i] = float32(v)
	}
}

// Pixel returns all samples at (x, y), or nil outside the image.
func (m *Image) Pixel(x, y int) []float64 {
	i, ok := m.offset(x, y, 0)
	if !ok {
		return nil
	}
	px := make([]float64, m.bands)
	for b := range px {
		px[b] = m.at(i + b)
	}
	return px
}

// Bounds implements image.Image. The origin is always (0, 0).
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// ColorModel implements image.Image. Colors render as 8-bit straight alpha.
func (m *Image) ColorModel() color.Model { return color.NRGBAModel }

// At implements image.Image. Inside the image it returns a Pixel.
func (m *Image) At(x, y int) color.Color {
	px := m.Pixel(x, y)
	if px == nil {
		return color.NRGBA{}
	}
	return Pixel{Samples: px, scale: m.scale}
}

// Pixel is the color of one raster pixel. Samples hold the native values;
// RGBA renders the per-band byte rescale: band 0 as gray for one or two
// bands, bands 0-2 as RGB for three or more, band 3 as straight alpha for
// four or more.
type Pixel struct {
	Samples []float64
	scale   *scaler
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	if p.scale == nil || len(p.Samples) == 0 {
		return 0, 0, 0, 0
	}
	var c color.NRGBA
	c.A = 0xff
	switch n := len(p.Samples); {
	case n < 3:
		v := p.scale.toByte(0, p.Samples[0])
		c.R, c.G, c.B = v, v, v
	default:
		c.R = p.scale.toByte(0, p.Samples[0])
		c.G = p.scale.toByte(1, p.Samples[1])
		c.B = p.scale.toByte(2, p.Samples[2])
		if n >= 4 {
			c.A = p.scale.toByte(3, p.Samples[3])
		}
	}
	return c.RGBA()
}

func clampByte(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

func clampInt32(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
