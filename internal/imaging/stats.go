package imaging

import (
	"github.com/ironsheep/multiband-mcp/internal/region"
)

// BoundsResult is a bounding box; (X1, Y1) inclusive, (X2, Y2) exclusive.
type BoundsResult struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// RegionStats summarizes the pixels inside a region.
type RegionStats struct {
	Bounds   BoundsResult     `json:"bounds"`
	Pixels   int              `json:"pixels"`
	Coverage float64          `json:"coverage"` // Pixels over bounding-box area, 0-1
	Mean     *ColorResult     `json:"mean,omitempty"`
	Dominant []ColorFrequency `json:"dominant"`
}

// Stats computes the bounding box, footprint size, mean color and the top
// colors of r.
func Stats(r *region.Region, topColors int) (*RegionStats, error) {
	dom, err := DominantColors(r, topColors)
	if err != nil {
		return nil, err
	}
	mean, n := MeanColor(r)

	b := r.Bounds()
	stats := &RegionStats{
		Bounds:   BoundsResult{X1: b.Min.X, Y1: b.Min.Y, X2: b.Max.X, Y2: b.Max.Y},
		Pixels:   n,
		Mean:     mean,
		Dominant: dom.Colors,
	}
	if area := b.Dx() * b.Dy(); area > 0 {
		stats.Coverage = float64(n) / float64(area)
	}
	return stats, nil
}
