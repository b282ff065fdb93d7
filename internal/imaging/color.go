package imaging

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/multiband-mcp/internal/raster"
	"github.com/ironsheep/multiband-mcp/internal/region"
)

// ErrOutsideRegion is returned when a sampled pixel is not inside the region.
var ErrOutsideRegion = errors.New("imaging: pixel outside region")

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents a straight-alpha RGBA color with 8-bit components.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
// When the color comes from a raster.Image, Samples holds the native band
// values and the 8-bit forms are the per-band byte preview.
type ColorResult struct {
	Hex     string    `json:"hex"`               // Hex format "#RRGGBB" (no alpha)
	RGB     RGBColor  `json:"rgb"`               // RGB components
	RGBA    RGBAColor `json:"rgba"`              // RGBA components with alpha
	HSL     HSLColor  `json:"hsl"`               // HSL representation
	Samples []float64 `json:"samples,omitempty"` // Native band values
}

// NewColorResult renders c in every representation.
func NewColorResult(c color.Color) ColorResult {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	h, s, l := cf.Hsl()

	res := ColorResult{
		Hex:  strings.ToUpper(cf.Hex()),
		RGB:  RGBColor{R: n.R, G: n.G, B: n.B},
		RGBA: RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
	if px, ok := c.(raster.Pixel); ok {
		res.Samples = append([]float64(nil), px.Samples...)
	}
	return res
}

// SampleColor returns the color at (x, y) if that pixel is inside r.
//
// Coordinates are absolute image coordinates. A pixel inside the shape but
// outside the image samples as the source's out-of-bounds color.
func SampleColor(r *region.Region, x, y int) (*ColorResult, error) {
	c, ok := r.ColorAt(x, y)
	if !ok {
		return nil, fmt.Errorf("%w: (%d,%d) not in %v", ErrOutsideRegion, x, y, r.Bounds())
	}
	res := NewColorResult(c)
	return &res, nil
}

// MeanColor averages the straight-alpha 8-bit components of every pixel in
// r. It returns nil and zero when the region is empty or too large to walk.
func MeanColor(r *region.Region) (*ColorResult, int) {
	var sr, sg, sb, sa float64
	n := 0
	for it := r.Pixels(); it.HasNext(); {
		c, _ := it.Next()
		p := color.NRGBAModel.Convert(c).(color.NRGBA)
		sr += float64(p.R)
		sg += float64(p.G)
		sb += float64(p.B)
		sa += float64(p.A)
		n++
	}
	if n == 0 {
		return nil, 0
	}
	avg := func(s float64) uint8 { return uint8(math.Round(s / float64(n))) }
	res := NewColorResult(color.NRGBA{R: avg(sr), G: avg(sg), B: avg(sb), A: avg(sa)})
	return &res, n
}

// ColorFrequency represents a color and its occurrence frequency in a region.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequently occurring colors in a
// region, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
	Pixels int              `json:"pixels"` // Pixels inside the region
}

// DominantColors returns up to count of the most common colors inside r.
//
// To group similar colors, each 8-bit component is quantized down to a
// multiple of 16, so #F0F0F0 and #FAFAFA count as the same color. Ties are
// ordered by hex value. Only pixels inside the shape are counted.
func DominantColors(r *region.Region, count int) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	if _, err := r.Area(); err != nil {
		return nil, err
	}

	counts := make(map[RGBColor]int)
	total := 0
	for it := r.Pixels(); it.HasNext(); {
		c, _ := it.Next()
		p := color.NRGBAModel.Convert(c).(color.NRGBA)
		counts[RGBColor{R: p.R / 16 * 16, G: p.G / 16 * 16, B: p.B / 16 * 16}]++
		total++
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for rgb, cnt := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B),
			Percentage: float64(cnt) / float64(total) * 100,
			RGB:        rgb,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors, Pixels: total}, nil
}
