package colorspace

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// converterSpace attaches RGB transforms to a Space.
type converterSpace struct {
	*Space
	from func(c colorful.Color) []float64
	to   func(s []float64) colorful.Color
}

func (c *converterSpace) FromRGB(rgb colorful.Color) []float64 { return c.from(rgb) }

func (c *converterSpace) ToRGB(samples []float64) colorful.Color { return c.to(samples) }

func builtin(name string, kind Kind, lo, hi []float64, from func(colorful.Color) []float64, to func([]float64) colorful.Color) Converter {
	return &converterSpace{
		Space: &Space{name: name, kind: kind, lo: lo, hi: hi},
		from:  from,
		to:    to,
	}
}

// GraySpace is 8-bit luminance.
func GraySpace() Converter {
	return builtin("gray", Gray, []float64{0}, []float64{255},
		func(c colorful.Color) []float64 {
			g := color.GrayModel.Convert(c.Clamped()).(color.Gray)
			return []float64{float64(g.Y)}
		},
		func(s []float64) colorful.Color {
			v := s[0] / 255
			return colorful.Color{R: v, G: v, B: v}.Clamped()
		})
}

// RGB is 8-bit sRGB.
func RGB() Converter {
	return builtin("rgb", Multi, []float64{0, 0, 0}, []float64{255, 255, 255},
		func(c colorful.Color) []float64 {
			c = c.Clamped()
			return []float64{c.R * 255, c.G * 255, c.B * 255}
		},
		func(s []float64) colorful.Color {
			return colorful.Color{R: s[0] / 255, G: s[1] / 255, B: s[2] / 255}.Clamped()
		})
}

// RGBA is 8-bit sRGB with a straight (non-premultiplied) alpha band.
// FromRGB always produces an opaque alpha; ToRGB drops it.
func RGBA() Converter {
	return builtin("rgba", Multi, []float64{0, 0, 0, 0}, []float64{255, 255, 255, 255},
		func(c colorful.Color) []float64 {
			c = c.Clamped()
			return []float64{c.R * 255, c.G * 255, c.B * 255, 255}
		},
		func(s []float64) colorful.Color {
			return colorful.Color{R: s[0] / 255, G: s[1] / 255, B: s[2] / 255}.Clamped()
		})
}

// HSV is hue in degrees, saturation and value in [0, 1].
func HSV() Converter {
	return builtin("hsv", Multi, []float64{0, 0, 0}, []float64{360, 1, 1},
		func(c colorful.Color) []float64 {
			h, s, v := c.Clamped().Hsv()
			return []float64{h, s, v}
		},
		func(s []float64) colorful.Color {
			return colorful.Hsv(s[0], s[1], s[2]).Clamped()
		})
}

// HSL is hue in degrees, saturation and lightness in [0, 1].
func HSL() Converter {
	return builtin("hsl", Multi, []float64{0, 0, 0}, []float64{360, 1, 1},
		func(c colorful.Color) []float64 {
			h, s, l := c.Clamped().Hsl()
			return []float64{h, s, l}
		},
		func(s []float64) colorful.Color {
			return colorful.Hsl(s[0], s[1], s[2]).Clamped()
		})
}

// HSI is hue in radians [0, 2π] with saturation and intensity in [0, 1].
// Intensity is the mean of the largest and smallest RGB component, and
// saturation follows it as in HSL.
func HSI() Converter {
	return builtin("hsi", Multi, []float64{0, 0, 0}, []float64{2 * math.Pi, 1, 1},
		func(c colorful.Color) []float64 {
			h, s, l := c.Clamped().Hsl()
			return []float64{h * math.Pi / 180, s, l}
		},
		func(s []float64) colorful.Color {
			return colorful.Hsl(s[0]*180/math.Pi, s[1], s[2]).Clamped()
		})
}

// HMMD is the MPEG-7 hue, max, min and diff space: hue in degrees, then the
// largest RGB component, the smallest, and their difference, all in [0, 1].
// ToRGB ignores the diff band and rebuilds the color from hue, max and min.
func HMMD() Converter {
	return builtin("hmmd", Multi, []float64{0, 0, 0, 0}, []float64{360, 1, 1, 1},
		func(c colorful.Color) []float64 {
			c = c.Clamped()
			h, _, _ := c.Hsv()
			hi := math.Max(c.R, math.Max(c.G, c.B))
			lo := math.Min(c.R, math.Min(c.G, c.B))
			return []float64{h, hi, lo, hi - lo}
		},
		func(s []float64) colorful.Color {
			hi, lo := s[1], s[2]
			sat := 0.0
			if hi > 0 {
				sat = (hi - lo) / hi
			}
			return colorful.Hsv(s[0], sat, hi).Clamped()
		})
}

// Lab is CIE L*a*b* (D65) in the conventional 0-100 / ±128 scale.
func Lab() Converter {
	return builtin("lab", Multi, []float64{0, -128, -128}, []float64{100, 127, 127},
		func(c colorful.Color) []float64 {
			l, a, b := c.Clamped().Lab()
			return []float64{l * 100, a * 100, b * 100}
		},
		func(s []float64) colorful.Color {
			return colorful.Lab(s[0]/100, s[1]/100, s[2]/100).Clamped()
		})
}

// Luv is CIE L*u*v* (D65) in the conventional 0-100 scale.
func Luv() Converter {
	return builtin("luv", Multi, []float64{0, -134, -140}, []float64{100, 220, 122},
		func(c colorful.Color) []float64 {
			l, u, v := c.Clamped().Luv()
			return []float64{l * 100, u * 100, v * 100}
		},
		func(s []float64) colorful.Color {
			return colorful.Luv(s[0]/100, s[1]/100, s[2]/100).Clamped()
		})
}

// YCbCr is JFIF Y'CbCr with all bands in [0, 255].
func YCbCr() Converter {
	return builtin("ycbcr", Multi, []float64{0, 0, 0}, []float64{255, 255, 255},
		func(c colorful.Color) []float64 {
			r, g, b := c.Clamped().RGB255()
			y, cb, cr := color.RGBToYCbCr(r, g, b)
			return []float64{float64(y), float64(cb), float64(cr)}
		},
		func(s []float64) colorful.Color {
			r, g, b := color.YCbCrToRGB(to8(s[0]), to8(s[1]), to8(s[2]))
			return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		})
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}

var registry = map[string]func() Converter{
	"gray":  GraySpace,
	"rgb":   RGB,
	"rgba":  RGBA,
	"hsv":   HSV,
	"hsl":   HSL,
	"hsi":   HSI,
	"hmmd":  HMMD,
	"lab":   Lab,
	"luv":   Luv,
	"ycbcr": YCbCr,
}

// Lookup returns the built-in space with the given case-insensitive name.
func Lookup(name string) (Converter, bool) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names lists the built-in space names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
