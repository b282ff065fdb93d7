package raster

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/ironsheep/multiband-mcp/internal/colorspace"
)

// mustSpace builds a descriptor-only color space with the given ranges.
func mustSpace(t *testing.T, kind colorspace.Kind, lo, hi []float64) *colorspace.Space {
	t.Helper()
	s, err := colorspace.New("test", kind, lo, hi)
	if err != nil {
		t.Fatalf("colorspace.New failed: %v", err)
	}
	return s
}

// uniformRange returns a space with n bands, each spanning [lo, hi].
func uniformRange(t *testing.T, n int, lo, hi float64) *colorspace.Space {
	t.Helper()
	los := make([]float64, n)
	his := make([]float64, n)
	for i := range los {
		los[i], his[i] = lo, hi
	}
	return mustSpace(t, colorspace.Multi, los, his)
}

// degenerateSpace is a Descriptor that skips colorspace.New validation.
type degenerateSpace struct{}

func (degenerateSpace) Bands() int            { return 3 }
func (degenerateSpace) Min(int) float64       { return 10 }
func (degenerateSpace) Max(int) float64       { return 10 }
func (degenerateSpace) Kind() colorspace.Kind { return colorspace.Multi }

func TestNew(t *testing.T) {
	m, err := New(4, 3, Float, colorspace.HSV())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.Width() != 4 || m.Height() != 3 || m.Bands() != 3 {
		t.Errorf("got %dx%d/%d, want 4x3/3", m.Width(), m.Height(), m.Bands())
	}
	if m.Encoding() != Float {
		t.Errorf("Encoding: got %s, want float", m.Encoding())
	}
	if m.NofElements() != 36 {
		t.Errorf("NofElements: got %d, want 36", m.NofElements())
	}
	if m.Path() != "" {
		t.Errorf("Path: got %q, want empty", m.Path())
	}
}

func TestNew_Configuration(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		enc   Encoding
		space colorspace.Descriptor
	}{
		{"zero width", 0, 4, Byte, colorspace.RGB()},
		{"negative height", 4, -1, Byte, colorspace.RGB()},
		{"nil space", 4, 4, Byte, nil},
		{"byte with two bands", 4, 4, Byte, uniformRange(t, 2, 0, 1)},
		{"int with five bands", 4, 4, Int, uniformRange(t, 5, 0, 1)},
		{"float above max bands", 4, 4, Float, uniformRange(t, MaxBands+1, 0, 1)},
		{"unknown encoding", 4, 4, Encoding(9), colorspace.RGB()},
		{"degenerate band range", 4, 4, Float, degenerateSpace{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, tt.enc, tt.space)
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("got %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestNew_DegenerateRangeIsWrapped(t *testing.T) {
	_, err := New(2, 2, Float, degenerateSpace{})
	if !errors.Is(err, colorspace.ErrDegenerateRange) {
		t.Errorf("got %v, want wrapped ErrDegenerateRange", err)
	}
}

func TestZeroFilledExtrema(t *testing.T) {
	tests := []struct {
		enc   Encoding
		bands int
	}{
		{Byte, 1}, {Byte, 3}, {Byte, 4},
		{Int, 1}, {Int, 3}, {Int, 4},
		{Float, 1}, {Float, 2}, {Float, 3}, {Float, 4}, {Float, MaxBands},
	}

	for _, tt := range tests {
		m, err := New(5, 4, tt.enc, uniformRange(t, tt.bands, -1, 1))
		if err != nil {
			t.Fatalf("%s/%d: New failed: %v", tt.enc, tt.bands, err)
		}
		ext := m.Extrema()
		if len(ext) != tt.bands {
			t.Fatalf("%s/%d: got %d extents", tt.enc, tt.bands, len(ext))
		}
		for b, e := range ext {
			if e.Min != 0 || e.Max != 0 {
				t.Errorf("%s/%d band %d: got (%g, %g), want (0, 0)", tt.enc, tt.bands, b, e.Min, e.Max)
			}
		}
	}
}

func TestSetSample_EncodingConversion(t *testing.T) {
	tests := []struct {
		enc  Encoding
		in   float64
		want float64
	}{
		{Byte, 12.4, 12},
		{Byte, 12.5, 13},
		{Byte, -3, 0},
		{Byte, 300, 255},
		{Byte, math.NaN(), 0},
		{Int, -7.9, -7},
		{Int, 1e12, math.MaxInt32},
		{Float, 0.25, 0.25},
	}

	for _, tt := range tests {
		m, err := New(1, 1, tt.enc, uniformRange(t, 1, 0, 255))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		m.SetSample(0, 0, 0, tt.in)
		if got := m.Sample(0, 0, 0); got != tt.want {
			t.Errorf("%s SetSample(%g): got %g, want %g", tt.enc, tt.in, got, tt.want)
		}
	}
}

func TestSample_OutOfRange(t *testing.T) {
	m, _ := New(2, 2, Float, colorspace.RGB())
	m.SetSample(5, 0, 0, 9) // ignored
	m.SetSample(0, 0, 3, 9) // ignored
	if m.Sample(-1, 0, 0) != 0 || m.Sample(0, 0, 3) != 0 {
		t.Error("out-of-range Sample should return 0")
	}
	if m.Pixel(2, 0) != nil {
		t.Error("out-of-range Pixel should return nil")
	}
	for _, e := range m.Extrema() {
		if e.Max != 0 {
			t.Errorf("out-of-range SetSample modified image: %+v", e)
		}
	}
}

func TestExtrema(t *testing.T) {
	m, _ := New(3, 2, Float, uniformRange(t, 2, -100, 100))
	values := [][2]float64{{-5, 1}, {3, 1}, {0, 1}, {7, -2}, {2, 1}, {1, 50}}
	for i, v := range values {
		x, y := i%3, i/3
		m.SetSample(x, y, 0, v[0])
		m.SetSample(x, y, 1, v[1])
	}

	ext := m.Extrema()
	want := []Extent{{Min: -5, Max: 7}, {Min: -2, Max: 50}}
	for b := range want {
		if ext[b] != want[b] {
			t.Errorf("band %d: got %+v, want %+v", b, ext[b], want[b])
		}
		single, err := m.BandExtrema(b)
		if err != nil {
			t.Fatalf("BandExtrema(%d) failed: %v", b, err)
		}
		if single != want[b] {
			t.Errorf("BandExtrema(%d): got %+v, want %+v", b, single, want[b])
		}
	}
}

func TestBandExtrema_IndexError(t *testing.T) {
	m, _ := New(2, 2, Byte, colorspace.RGB())
	for _, band := range []int{-1, 3, 100} {
		if _, err := m.BandExtrema(band); !errors.Is(err, ErrBandIndex) {
			t.Errorf("BandExtrema(%d): got %v, want ErrBandIndex", band, err)
		}
	}
	if _, err := m.BandExtrema(2); err != nil {
		t.Errorf("BandExtrema(2) should succeed: %v", err)
	}
}

func TestLayeredByteImages_GraySharesStorage(t *testing.T) {
	m, err := New(3, 3, Byte, colorspace.GraySpace())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.SetSample(1, 1, 0, 77)

	layers := m.LayeredByteImages()
	if len(layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(layers))
	}
	if layers[0].GrayAt(1, 1).Y != 77 {
		t.Errorf("layer value: got %d, want 77", layers[0].GrayAt(1, 1).Y)
	}

	layers[0].SetGray(0, 0, color.Gray{Y: 9})
	if m.Sample(0, 0, 0) != 9 {
		t.Error("gray layer does not share storage with the image")
	}
}

func TestLayeredByteImages_Rescale(t *testing.T) {
	space := mustSpace(t, colorspace.Multi, []float64{0, -1, 100}, []float64{360, 1, 200})
	m, _ := New(2, 1, Float, space)
	// (0,0) at every band's minimum, (1,0) at every band's maximum.
	m.SetSample(0, 0, 0, 0)
	m.SetSample(0, 0, 1, -1)
	m.SetSample(0, 0, 2, 100)
	m.SetSample(1, 0, 0, 360)
	m.SetSample(1, 0, 1, 1)
	m.SetSample(1, 0, 2, 200)

	layers := m.LayeredByteImages()
	if len(layers) != 3 {
		t.Fatalf("got %d layers, want 3", len(layers))
	}
	for b, layer := range layers {
		if lo := layer.GrayAt(0, 0).Y; lo != 0 {
			t.Errorf("band %d at min: got %d, want 0", b, lo)
		}
		if hi := layer.GrayAt(1, 0).Y; hi < 254 {
			t.Errorf("band %d at max: got %d, want 255", b, hi)
		}
	}
}

func TestLayeredByteImages_Clamps(t *testing.T) {
	m, _ := New(2, 1, Float, uniformRange(t, 1, 0, 1))
	m.SetSample(0, 0, 0, -4)
	m.SetSample(1, 0, 0, 4)
	layer := m.LayeredByteImages()[0]
	if layer.GrayAt(0, 0).Y != 0 || layer.GrayAt(1, 0).Y != 255 {
		t.Errorf("clamp: got %d and %d, want 0 and 255", layer.GrayAt(0, 0).Y, layer.GrayAt(1, 0).Y)
	}
}

func TestLayeredByteImages_FloatGrayIsRescaled(t *testing.T) {
	space := mustSpace(t, colorspace.Gray, []float64{0}, []float64{1})
	m, _ := New(1, 1, Float, space)
	m.SetSample(0, 0, 0, 0.2)
	layers := m.LayeredByteImages()
	if len(layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(layers))
	}
	if v := layers[0].GrayAt(0, 0).Y; v != 51 {
		t.Errorf("got %d, want 51", v)
	}
}

func TestInterleavedByteImage(t *testing.T) {
	m, _ := New(2, 2, Float, colorspace.HSV())
	m.SetSample(1, 1, 0, 360)
	m.SetSample(1, 1, 1, 1)
	m.SetSample(1, 1, 2, 0.2)

	out, err := m.InterleavedByteImage()
	if err != nil {
		t.Fatalf("InterleavedByteImage failed: %v", err)
	}
	if out.Bounds() != m.Bounds() {
		t.Errorf("bounds: got %v, want %v", out.Bounds(), m.Bounds())
	}
	got := out.NRGBAAt(1, 1)
	want := color.NRGBA{R: 255, G: 255, B: 51, A: 255}
	if got != want {
		t.Errorf("pixel: got %v, want %v", got, want)
	}
	if a := out.NRGBAAt(0, 0).A; a != 255 {
		t.Errorf("3-band alpha: got %d, want 255", a)
	}
}

func TestInterleavedByteImage_FourBands(t *testing.T) {
	m, _ := New(1, 1, Int, colorspace.RGBA())
	for b, v := range []float64{10, 20, 30, 40} {
		m.SetSample(0, 0, b, v)
	}
	out, err := m.InterleavedByteImage()
	if err != nil {
		t.Fatalf("InterleavedByteImage failed: %v", err)
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("got %v", got)
	}
}

func TestInterleavedByteImage_Unsupported(t *testing.T) {
	for _, bands := range []int{1, 2, 5} {
		m, err := New(2, 2, Float, uniformRange(t, bands, 0, 1))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		out, err := m.InterleavedByteImage()
		if !errors.Is(err, ErrUnsupportedLayout) {
			t.Errorf("%d bands: got %v, want ErrUnsupportedLayout", bands, err)
		}
		if out != nil {
			t.Errorf("%d bands: expected nil image", bands)
		}
	}
}

func TestImage_ImplementsImage(t *testing.T) {
	var _ image.Image = (*Image)(nil)

	m, _ := New(2, 1, Byte, colorspace.RGB())
	m.SetSample(0, 0, 0, 255)
	c := m.At(0, 0)
	p, ok := c.(Pixel)
	if !ok {
		t.Fatalf("At returned %T, want Pixel", c)
	}
	if len(p.Samples) != 3 || p.Samples[0] != 255 {
		t.Errorf("samples: got %v", p.Samples)
	}
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	if got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("rendered color: got %v", got)
	}
	if _, ok := m.At(5, 5).(Pixel); ok {
		t.Error("At outside bounds should not return a Pixel")
	}
}

func TestPixel_GrayPreview(t *testing.T) {
	m, _ := New(1, 1, Float, uniformRange(t, 2, 0, 1))
	m.SetSample(0, 0, 0, 1)
	got := color.NRGBAModel.Convert(m.At(0, 0)).(color.NRGBA)
	if got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("got %v", got)
	}
}

func TestString(t *testing.T) {
	m, _ := New(2, 3, Float, colorspace.Lab())
	s := m.String()
	for _, want := range []string{"float/3", "lab", "2x3", "min: 0, 0, 0"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
