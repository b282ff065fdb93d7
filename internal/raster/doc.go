// Package raster implements multi-band images whose samples are stored as
// interleaved bytes, 32-bit integers, or 32-bit floats.
//
// An Image is bound to a colorspace.Descriptor that gives the native range of
// every band. The descriptor is checked once, at construction: the band count
// must match, and every band range must be finite with max > min. After that,
// all scans and exports are total.
//
// # Exports
//
// Samples are mapped to bytes with a per-band linear rescale:
//
//	byte = clamp(round((v - min) / ((max - min) / 255)), 0, 255)
//
// LayeredByteImages produces one *image.Gray per band. InterleavedByteImage
// produces one *image.NRGBA from a 3- or 4-band image. Both copy, except for
// a byte-encoded gray image, whose single layer shares the raster buffer.
//
// # Standard Images
//
// *Image implements image.Image. At returns a Pixel carrying the native
// samples; its RGBA method renders the same 8-bit rescale the exports use.
//
// # Codec
//
// Decoding and encoding of image files are delegated to a Codec. The default
// codec wraps github.com/disintegration/imaging.
//
// # Thread Safety
//
// An Image is not synchronized. Concurrent readers are safe as long as no
// goroutine calls SetSample.
package raster
