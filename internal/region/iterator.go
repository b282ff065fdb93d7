package region

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrExhausted is returned by Iterator.Next after the last pixel.
var ErrExhausted = errors.New("region: no more pixels")

// Iterator is a single-pass cursor over the pixels inside a region, in
// row-major order over the region's bounding box.
//
// The first in-shape pixel is located when the iterator is created; each
// Next returns the pending pixel's color and scans forward for the following
// one. Pixels of the bounding box outside the shape are skipped, so a full
// traversal costs O(bounding-box area) calls to Contains.
//
// An Iterator cannot be restarted; create a new one to traverse again. The
// region's image and shape must not change during a traversal.
//
// A region whose Area fails yields nothing; Err reports why.
type Iterator struct {
	region *Region
	origin image.Point
	width  int
	length int

	pos       int // linear index of the pending pixel
	pending   image.Point
	last      image.Point
	exhausted bool
	err       error
}

// NewIterator positions a new iterator on the first pixel inside r.
func NewIterator(r *Region) *Iterator {
	b := r.Bounds()
	n, err := area(b)
	it := &Iterator{
		region: r,
		origin: b.Min,
		width:  b.Dx(),
		length: n,
		err:    err,
	}
	it.seek(0)
	return it
}

// seek moves to the first in-shape pixel at linear index i or later.
func (it *Iterator) seek(i int) {
	for ; i < it.length; i++ {
		x := it.origin.X + i%it.width
		y := it.origin.Y + i/it.width
		if it.region.shape.Contains(x, y) {
			it.pos = i
			it.pending = image.Pt(x, y)
			return
		}
	}
	it.pos = it.length
	it.exhausted = true
}

// HasNext reports whether Next will return a color.
func (it *Iterator) HasNext() bool { return !it.exhausted }

// Next returns the color of the next pixel inside the region, or
// ErrExhausted when there is none. When the region was too large to walk the
// error also wraps ErrTooLarge.
func (it *Iterator) Next() (color.Color, error) {
	if it.exhausted {
		if it.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExhausted, it.err)
		}
		return nil, ErrExhausted
	}
	p := it.pending
	c := it.region.src.At(p.X, p.Y)
	it.last = p
	it.seek(it.pos + 1)
	return c, nil
}

// skip advances like Next without reading the source.
func (it *Iterator) skip() {
	if it.exhausted {
		return
	}
	it.last = it.pending
	it.seek(it.pos + 1)
}

// Err returns the error that stopped the iterator before its first pixel,
// if any.
func (it *Iterator) Err() error { return it.err }

// X returns the column of the pixel most recently returned by Next.
func (it *Iterator) X() int { return it.last.X }

// Y returns the row of the pixel most recently returned by Next.
func (it *Iterator) Y() int { return it.last.Y }

// Point returns the position of the pixel most recently returned by Next.
func (it *Iterator) Point() image.Point { return it.last }
