package raster

import (
	"fmt"
	"math"
)

// Extent is the smallest and largest value found in one band.
type Extent struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type sample interface {
	~uint8 | ~int32 | ~float32
}

// Extrema scans every sample and returns the extent of each band.
// Results are not cached.
func (m *Image) Extrema() []Extent {
	switch m.enc {
	case Byte:
		return extrema(m.u8, m.bands)
	case Int:
		return extrema(m.i32, m.bands)
	default:
		return extrema(m.f32, m.bands)
	}
}

// BandExtrema scans a single band. It returns ErrBandIndex when band is
// outside [0, Bands()).
func (m *Image) BandExtrema(band int) (Extent, error) {
	if band < 0 || band >= m.bands {
		return Extent{}, fmt.Errorf("%w: band %d of %d", ErrBandIndex, band, m.bands)
	}
	switch m.enc {
	case Byte:
		return bandExtrema(m.u8, m.bands, band), nil
	case Int:
		return bandExtrema(m.i32, m.bands, band), nil
	default:
		return bandExtrema(m.f32, m.bands, band), nil
	}
}

func extrema[T sample](buf []T, bands int) []Extent {
	ext := make([]Extent, bands)
	for b := range ext {
		ext[b] = Extent{Min: math.Inf(1), Max: math.Inf(-1)}
	}
	for i, s := range buf {
		v := float64(s)
		e := &ext[i%bands]
		if v < e.Min {
			e.Min = v
		}
		if v > e.Max {
			e.Max = v
		}
	}
	return ext
}

func bandExtrema[T sample](buf []T, bands, band int) Extent {
	e := Extent{Min: math.Inf(1), Max: math.Inf(-1)}
	for i := band; i < len(buf); i += bands {
		v := float64(buf[i])
		if v < e.Min {
			e.Min = v
		}
		if v > e.Max {
			e.Max = v
		}
	}
	return e
}
