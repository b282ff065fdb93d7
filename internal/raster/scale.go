package raster

import (
	"fmt"
	"math"

	"github.com/ironsheep/multiband-mcp/internal/colorspace"
)

// scaler maps native samples to bytes. Its ranges are read once, so a
// descriptor cannot change them after the image is built.
type scaler struct {
	lo   []float64
	step []float64
}

func newScaler(d colorspace.Descriptor) (*scaler, error) {
	n := d.Bands()
	s := &scaler{lo: make([]float64, n), step: make([]float64, n)}
	for b := 0; b < n; b++ {
		lo, hi := d.Min(b), d.Max(b)
		step := (hi - lo) / 255
		if !(step > 0) || math.IsInf(step, 0) {
			return nil, fmt.Errorf("%w: band %d range [%g, %g]", ErrConfiguration, b, lo, hi)
		}
		s.lo[b] = lo
		s.step[b] = step
	}
	return s, nil
}

// toByte rescales v from band's native range to [0, 255]. NaN maps to 0.
func (s *scaler) toByte(band int, v float64) uint8 {
	return clampByte(math.Round((v - s.lo[band]) / s.step[band]))
}
