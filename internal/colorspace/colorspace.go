package colorspace

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrBandCount is returned when a descriptor has no bands or its range
	// slices disagree on the band count.
	ErrBandCount = errors.New("colorspace: invalid band count")

	// ErrDegenerateRange is returned when a band's max is not strictly greater
	// than its min, or either bound is not finite.
	ErrDegenerateRange = errors.New("colorspace: degenerate band range")
)

// Kind is the coarse semantic tag of a color space.
type Kind int

const (
	// Multi is any space that is not plain gray.
	Multi Kind = iota
	// Gray is a single-band luminance space.
	Gray
)

func (k Kind) String() string {
	if k == Gray {
		return "gray"
	}
	return "multi"
}

// Descriptor exposes the per-band native range of a color space.
//
// Implementations must be immutable: raster images read the ranges once at
// construction.
type Descriptor interface {
	Bands() int
	Min(band int) float64
	Max(band int) float64
	Kind() Kind
}

// Converter is a Descriptor that can also map colors to and from RGB.
// Samples are in the space's native band ranges.
type Converter interface {
	Descriptor
	FromRGB(c colorful.Color) []float64
	ToRGB(samples []float64) colorful.Color
}

// Space is a named Descriptor with fixed per-band ranges.
type Space struct {
	name string
	kind Kind
	lo   []float64
	hi   []float64
}

// New creates a descriptor-only color space. It returns ErrBandCount or
// ErrDegenerateRange when the ranges are unusable.
func New(name string, kind Kind, lo, hi []float64) (*Space, error) {
	s := &Space{
		name: name,
		kind: kind,
		lo:   append([]float64(nil), lo...),
		hi:   append([]float64(nil), hi...),
	}
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("%s: %d mins, %d maxes: %w", name, len(lo), len(hi), ErrBandCount)
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the space's short name, e.g. "hsv".
func (s *Space) Name() string { return s.name }

// Bands returns the number of bands.
func (s *Space) Bands() int { return len(s.lo) }

// Min returns the lowest native value of band.
func (s *Space) Min(band int) float64 { return s.lo[band] }

// Max returns the highest native value of band.
func (s *Space) Max(band int) float64 { return s.hi[band] }

// Kind returns the space's semantic tag.
func (s *Space) Kind() Kind { return s.kind }

func (s *Space) String() string { return s.name }

// Validate checks that d has at least one band, that a Gray descriptor has
// exactly one, and that every band range is finite and non-degenerate.
func Validate(d Descriptor) error {
	n := d.Bands()
	if n <= 0 {
		return fmt.Errorf("%d bands: %w", n, ErrBandCount)
	}
	if d.Kind() == Gray && n != 1 {
		return fmt.Errorf("gray space with %d bands: %w", n, ErrBandCount)
	}
	for b := 0; b < n; b++ {
		lo, hi := d.Min(b), d.Max(b)
		if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || !(hi > lo) {
			return fmt.Errorf("band %d range [%g, %g]: %w", b, lo, hi, ErrDegenerateRange)
		}
	}
	return nil
}

// Name returns a printable name for d: the space name when d has one,
// otherwise its kind and band count.
func Name(d Descriptor) string {
	if s, ok := d.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%s/%d", d.Kind(), d.Bands())
}
