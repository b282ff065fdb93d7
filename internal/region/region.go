package region

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// MaxPixels is the largest bounding-box area a region may iterate or
// materialize.
const MaxPixels = 1 << 28

// ErrTooLarge is returned when a region's bounding box exceeds MaxPixels.
var ErrTooLarge = errors.New("region: bounding box too large")

// Region is a shape bound to a source image.
type Region struct {
	src   image.Image
	shape Shape
}

// New returns a region covering the whole of src.
func New(src image.Image) *Region {
	return &Region{src: src, shape: Rect(src.Bounds())}
}

// NewShaped returns a region limited to shape. A nil shape covers the whole
// image.
func NewShaped(src image.Image, shape Shape) *Region {
	if shape == nil {
		return New(src)
	}
	return &Region{src: src, shape: shape}
}

// Source returns the image the region reads from.
func (r *Region) Source() image.Image { return r.src }

// Shape returns the region's shape.
func (r *Region) Shape() Shape { return r.shape }

// Contains reports whether the image pixel (x, y) is inside the shape.
func (r *Region) Contains(x, y int) bool { return r.shape.Contains(x, y) }

// ColorAt returns the source color at (x, y), or false when the pixel is
// outside the shape.
func (r *Region) ColorAt(x, y int) (color.Color, bool) {
	if !r.shape.Contains(x, y) {
		return nil, false
	}
	return r.src.At(x, y), true
}

// Bounds returns the shape's bounding box. It may hold more pixels than the
// shape itself.
func (r *Region) Bounds() image.Rectangle { return r.shape.Bounds().Canon() }

// Width returns the bounding-box width.
func (r *Region) Width() int { return r.Bounds().Dx() }

// Height returns the bounding-box height.
func (r *Region) Height() int { return r.Bounds().Dy() }

// Location returns the bounding box's top-left corner.
func (r *Region) Location() image.Point { return r.Bounds().Min }

// Area returns the bounding-box area. It returns an error wrapping
// ErrTooLarge when the area exceeds MaxPixels or does not fit in an int.
func (r *Region) Area() (int, error) { return area(r.Bounds()) }

// area expects a canonical rectangle. A negative span means Max-Min
// overflowed.
func area(b image.Rectangle) (int, error) {
	w, h := b.Dx(), b.Dy()
	if w < 0 || h < 0 {
		return 0, fmt.Errorf("%w: %v", ErrTooLarge, b)
	}
	if w == 0 || h == 0 {
		return 0, nil
	}
	if w > MaxPixels/h {
		return 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}
	return w * h, nil
}

// Pixels returns a new iterator over the region.
func (r *Region) Pixels() *Iterator { return NewIterator(r) }

// Count returns the number of pixels inside the shape. It walks the whole
// bounding box, and returns zero when Area fails.
func (r *Region) Count() int {
	n := 0
	for it := NewIterator(r); it.HasNext(); it.skip() {
		n++
	}
	return n
}

// Materialize copies the region into a new image the size of its bounding
// box, with (0,0) at Location. Pixels outside the shape are fully
// transparent. It fails with ErrTooLarge before allocating when Area does.
func (r *Region) Materialize() (*image.NRGBA, error) {
	if _, err := r.Area(); err != nil {
		return nil, err
	}
	loc := r.Location()
	out := image.NewNRGBA(image.Rect(0, 0, r.Width(), r.Height()))
	it := NewIterator(r)
	for it.HasNext() {
		c, _ := it.Next()
		out.Set(it.X()-loc.X, it.Y()-loc.Y, c)
	}
	return out, nil
}
