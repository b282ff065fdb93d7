// Package imaging provides the presentation services of the MCP server on top
// of the raster and region packages.
//
// It caches decoded and converted rasters, renders colors in several notations,
// summarizes the pixels of a region or of every tile of a grid, and encodes
// regions and layers as PNG.
//
// # Coordinate System
//
// All pixel coordinates are 0-based image coordinates with (0,0) at the
// top-left corner, X increasing rightward and Y increasing downward. For
// rectangles, (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached rasters are shared
// between callers and must be treated as read-only. The other functions are
// stateless.
//
// # Color Representation
//
// Colors are returned in multiple formats:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit straight-alpha components (0-255)
//   - HSL: Hue (0-359), Saturation (0-100), Lightness (0-100)
//   - Samples: native band values, for colors read from a raster.Image
//
// # Performance Considerations
//
// Region summaries walk the region's whole bounding box. Conversions are
// computed once per (path, space, encoding) and then served from the cache;
// use Evict or Clear to release memory in long-running processes.
package imaging
