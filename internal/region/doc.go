// Package region scopes pixel queries to an arbitrary shape over an image.
//
// A Region binds a Shape to a source image.Image. The source is shared, not
// owned: the caller keeps it alive and must not modify it while regions or
// iterators over it are in use.
//
// # Coordinate System
//
// All coordinates are absolute image coordinates with (0,0) at the top-left.
// A pixel (x, y) is inside a curved or polygonal shape when its center
// (x+0.5, y+0.5) is. Every shape's Contains is false outside its Bounds.
//
// # Iteration
//
// Iterator walks the shape's bounding box in row-major order and yields the
// color of every pixel the shape contains. It allocates no intermediate
// buffer. Its cost is proportional to the bounding-box area times the cost of
// Contains, not to the number of pixels inside the shape; a thin diagonal
// polygon visits its whole bounding box.
//
// Regions whose bounding box exceeds MaxPixels are not walked: iterators
// start exhausted with ErrTooLarge and Materialize fails. Clip a shape to the
// image first when its extent comes from untrusted input.
//
// # Grids
//
// Grid splits an image into equal tiles and hands each one out as a
// rectangular Region.
package region
