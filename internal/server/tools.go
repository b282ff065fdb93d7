package server

import (
	"github.com/ironsheep/multiband-mcp/internal/colorspace"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// spaceProperties are the optional arguments selecting a converted view of
// the image. Without a space the image is used as decoded.
func spaceProperties() map[string]interface{} {
	return map[string]interface{}{
		"space": map[string]interface{}{
			"type":        "string",
			"enum":        colorspace.Names(),
			"description": "Optional color space to convert to before the operation",
		},
		"encoding": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"byte", "int", "float"},
			"description": "Sample encoding of the converted image (default float). Ignored without space",
			"default":     "float",
		},
	}
}

// shapeProperty describes the shape argument accepted by region tools.
var shapeProperty = map[string]interface{}{
	"type": "object",
	"description": "Optional region shape; omitted means the whole image. One of: " +
		`{"type":"rect","x1","y1","x2","y2"} (x2,y2 exclusive), ` +
		`{"type":"circle","cx","cy","r"}, ` +
		`{"type":"ellipse","cx","cy","rx","ry"}, ` +
		`{"type":"polygon","points":[{"x","y"},...]}, ` +
		`{"type":"threshold","level"} (pixels at or above the luminance level), ` +
		`{"type":"quadrant","name"} (top-left, top-right, bottom-left, bottom-right, top-half, bottom-half, left-half, right-half, center). ` +
		"Pixels are inside a shape when their center is.",
	"properties": map[string]interface{}{
		"type": map[string]interface{}{
			"type": "string",
			"enum": []string{"rect", "circle", "ellipse", "polygon", "threshold", "quadrant"},
		},
		"x1":    map[string]interface{}{"type": "integer"},
		"y1":    map[string]interface{}{"type": "integer"},
		"x2":    map[string]interface{}{"type": "integer"},
		"y2":    map[string]interface{}{"type": "integer"},
		"cx":    map[string]interface{}{"type": "number"},
		"cy":    map[string]interface{}{"type": "number"},
		"r":     map[string]interface{}{"type": "number"},
		"rx":    map[string]interface{}{"type": "number"},
		"ry":    map[string]interface{}{"type": "number"},
		"level": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
		"name":  map[string]interface{}{"type": "string"},
		"points": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{"type": "integer"},
					"y": map[string]interface{}{"type": "integer"},
				},
				"required": []string{"x", "y"},
			},
		},
	},
	"required": []string{"type"},
}

// withProperties merges extra into base and returns base.
func withProperties(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Raster Operations
		{
			Name:        "raster_load",
			Description: "Load an image file and return its dimensions, band layout, color space, per-band extrema and file format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "raster_extrema",
			Description: "Return the minimum and maximum sample of every band, or of one band, in native units of the color space.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path": pathProperty,
					"band": map[string]interface{}{
						"type":        "integer",
						"description": "Optional 0-based band index. If omitted, all bands are returned",
					},
				}, spaceProperties()),
				"required": []string{"path"},
			},
		},
		{
			Name:        "raster_convert",
			Description: "Convert an image to another color space and sample encoding, and describe the result. The conversion is cached for later tools that name the same space and encoding.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path": pathProperty,
				}, spaceProperties()),
				"required": []string{"path", "space"},
			},
		},
		{
			Name:        "raster_layer",
			Description: "Render one band as an 8-bit grayscale PNG, rescaled from the band's native range. Without a band, renders a 3- or 4-band image as RGB(A).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path": pathProperty,
					"band": map[string]interface{}{
						"type":        "integer",
						"description": "Optional 0-based band index",
					},
				}, spaceProperties()),
				"required": []string{"path"},
			},
		},

		// Region Operations
		{
			Name:        "region_sample_color",
			Description: "Get the color at a pixel if it lies inside the region shape. Returns hex, RGB, RGBA, HSL and the native band samples.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
					"shape": shapeProperty,
				}, spaceProperties()),
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "region_crop",
			Description: "Extract the region's bounding box as a base64-encoded PNG. Pixels outside the shape are transparent.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path":  pathProperty,
					"shape": shapeProperty,
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				}, spaceProperties()),
				"required": []string{"path"},
			},
		},
		{
			Name:        "region_stats",
			Description: "Summarize the pixels inside a region: bounding box, pixel count, coverage, mean color and dominant colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path":  pathProperty,
					"shape": shapeProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
				}, spaceProperties()),
				"required": []string{"path"},
			},
		},
		{
			Name:        "region_grid",
			Description: "Split the image into equal tiles and report each tile's bounds, pixel count, mean color and dominant colors. Tiles are indexed down each column. Give cols/rows or tile_width/tile_height.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path": pathProperty,
					"cols": map[string]interface{}{
						"type":        "integer",
						"description": "Number of tile columns (default 2)",
						"default":     2,
					},
					"rows": map[string]interface{}{
						"type":        "integer",
						"description": "Number of tile rows (default 2)",
						"default":     2,
					},
					"tile_width": map[string]interface{}{
						"type":        "integer",
						"description": "Tile width in pixels; with tile_height, overrides cols and rows",
					},
					"tile_height": map[string]interface{}{
						"type":        "integer",
						"description": "Tile height in pixels",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Dominant colors per tile (default 0, none)",
						"default":     0,
					},
					"overlay": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return a PNG with the tile boundaries drawn",
						"default":     false,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Overlay line color as hex (default #FF0000)",
						"default":     "#FF0000",
					},
				}, spaceProperties()),
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
