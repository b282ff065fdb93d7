package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when an image cannot be built with the
	// requested dimensions, encoding, band count, or color space.
	ErrConfiguration = errors.New("raster: invalid configuration")

	// ErrBandIndex is returned when a band index is outside [0, Bands()).
	ErrBandIndex = errors.New("raster: band index out of range")

	// ErrUnsupportedLayout is returned by exports that have no standard
	// representation for the image's band count.
	ErrUnsupportedLayout = errors.New("raster: unsupported band layout")
)

// DecodeError reports a codec failure for a specific file. No image is
// returned alongside it.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("raster: cannot decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
