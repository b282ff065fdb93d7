// Package server implements the MCP (Model Context Protocol) server for
// multi-band raster and region tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Raster Operations:
//   - raster_load: Load image and get layout, color space and extrema
//   - raster_extrema: Per-band minimum and maximum
//   - raster_convert: Convert to another color space and encoding
//   - raster_layer: Render one band, or all bands interleaved, as PNG
//
// Region Operations:
//   - region_sample_color: Get color at a pixel inside a shape
//   - region_crop: Extract a shaped region as PNG
//   - region_stats: Pixel count, coverage, mean and dominant colors
//   - region_grid: Per-tile stats over an equal grid, with optional overlay
//
// Every tool takes a path. Tools other than raster_load also accept a color
// space and encoding, and operate on the converted image. Region tools accept
// an optional shape (rect, circle, ellipse, polygon, threshold or quadrant).
// Shapes are clipped to the image; a shape entirely off the image is an error.
//
// # Image Caching
//
// Decoded images and their conversions are cached by path for the lifetime
// of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Logging
//
// Diagnostics go to the zerolog.Logger passed to New; stdout is reserved for
// the protocol. Each tool call is logged at debug level with its duration.
//
// # Usage
//
//	srv := server.New(zerolog.New(os.Stderr))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
