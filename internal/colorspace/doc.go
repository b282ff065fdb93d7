// Package colorspace describes the numeric range of each band of a color space.
//
// A Descriptor is the only thing the raster layer needs from a color space:
// the number of bands, the native [min, max] range of every band, and a coarse
// Kind used to recognize single-band gray images.
//
// # Converters
//
// Some spaces also implement Converter, which maps colors to and from RGB.
// The transform math is delegated to go-colorful (HSV, HSL, Lab, Luv) and to
// the standard library (YCbCr); this package only maps library ranges onto
// each band's native range.
//
// # Built-in Spaces
//
//   - gray:  1 band,  [0, 255]
//   - rgb:   3 bands, [0, 255]
//   - rgba:  4 bands, [0, 255]
//   - hsv:   H [0, 360], S [0, 1], V [0, 1]
//   - hsl:   H [0, 360], S [0, 1], L [0, 1]
//   - lab:   L [0, 100], a [-128, 127], b [-128, 127]
//   - luv:   L [0, 100], u [-134, 220], v [-140, 122]
//   - ycbcr: 3 bands, [0, 255]
package colorspace
