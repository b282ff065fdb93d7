package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ironsheep/multiband-mcp/internal/imaging"
	"github.com/ironsheep/multiband-mcp/internal/raster"
	"github.com/ironsheep/multiband-mcp/internal/region"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "raster_load", "region_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.safeExecuteTool(params.Name, params.Arguments)
	s.log.Debug().
		Str("tool", params.Name).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("tool call")
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// safeExecuteTool runs executeTool and turns a handler panic into an error so
// one bad call cannot stop the server.
func (s *Server) safeExecuteTool(name string, args json.RawMessage) (result interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			s.log.Error().
				Str("tool", name).
				Interface("panic", p).
				Msg("tool panicked")
			result, err = nil, fmt.Errorf("internal error in %s: %v", name, p)
		}
	}()
	return s.executeTool(name, args)
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads or converts images through the cache
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Raster Operations
	case "raster_load":
		return s.handleRasterLoad(args)
	case "raster_extrema":
		return s.handleRasterExtrema(args)
	case "raster_convert":
		return s.handleRasterConvert(args)
	case "raster_layer":
		return s.handleRasterLayer(args)

	// Region Operations
	case "region_sample_color":
		return s.handleRegionSampleColor(args)
	case "region_crop":
		return s.handleRegionCrop(args)
	case "region_stats":
		return s.handleRegionStats(args)
	case "region_grid":
		return s.handleRegionGrid(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// imageArgs selects an image and, optionally, a converted view of it.
type imageArgs struct {
	Path     string `json:"path"`
	Space    string `json:"space,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

// image returns the decoded image, or its conversion when a space is named.
func (s *Server) image(a imageArgs) (*raster.Image, error) {
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Space == "" {
		return s.cache.Load(a.Path)
	}
	enc := raster.Float
	if a.Encoding != "" {
		var ok bool
		if enc, ok = raster.ParseEncoding(a.Encoding); !ok {
			return nil, fmt.Errorf("unknown encoding: %s", a.Encoding)
		}
	}
	return s.cache.Convert(a.Path, a.Space, enc)
}

// === Raster Operation Handlers ===

func (s *Server) handleRasterLoad(args json.RawMessage) (interface{}, error) {
	var a imageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type rasterExtremaArgs struct {
	imageArgs
	Band *int `json:"band,omitempty"`
}

// extremaResult reports the extrema of all bands, or of one band.
type extremaResult struct {
	Space   string          `json:"space"`
	Band    *int            `json:"band,omitempty"`
	Extrema []raster.Extent `json:"extrema"`
}

func (s *Server) handleRasterExtrema(args json.RawMessage) (interface{}, error) {
	var a rasterExtremaArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.image(a.imageArgs)
	if err != nil {
		return nil, err
	}

	info := imaging.Describe(img)
	if a.Band == nil {
		return &extremaResult{Space: info.Space, Extrema: info.Extrema}, nil
	}
	e, err := img.BandExtrema(*a.Band)
	if err != nil {
		return nil, err
	}
	return &extremaResult{Space: info.Space, Band: a.Band, Extrema: []raster.Extent{e}}, nil
}

// convertResult describes a converted image.
type convertResult struct {
	*imaging.ImageInfo
	Description string `json:"description"`
}

func (s *Server) handleRasterConvert(args json.RawMessage) (interface{}, error) {
	var a imageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Space == "" {
		return nil, fmt.Errorf("space is required")
	}
	img, err := s.image(a)
	if err != nil {
		return nil, err
	}
	info := imaging.Describe(img)
	info.Path = a.Path
	return &convertResult{ImageInfo: info, Description: img.String()}, nil
}

type rasterLayerArgs struct {
	imageArgs
	Band *int `json:"band,omitempty"`
}

func (s *Server) handleRasterLayer(args json.RawMessage) (interface{}, error) {
	var a rasterLayerArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.image(a.imageArgs)
	if err != nil {
		return nil, err
	}
	if a.Band == nil {
		return imaging.EncodeInterleaved(img)
	}
	return imaging.EncodeLayer(img, *a.Band)
}

// === Region Operation Handlers ===

type regionSampleColorArgs struct {
	imageArgs
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Shape *shapeArgs `json:"shape,omitempty"`
}

func (s *Server) handleRegionSampleColor(args json.RawMessage) (interface{}, error) {
	var a regionSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.image(a.imageArgs)
	if err != nil {
		return nil, err
	}
	r, err := newRegion(img, a.Shape)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(r, a.X, a.Y)
}

type regionCropArgs struct {
	imageArgs
	Shape *shapeArgs `json:"shape,omitempty"`
	Scale float64    `json:"scale"`
}

func (s *Server) handleRegionCrop(args json.RawMessage) (interface{}, error) {
	var a regionCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.image(a.imageArgs)
	if err != nil {
		return nil, err
	}
	r, err := newRegion(img, a.Shape)
	if err != nil {
		return nil, err
	}
	return imaging.CropRegion(r, a.Scale)
}

type regionStatsArgs struct {
	imageArgs
	Shape *shapeArgs `json:"shape,omitempty"`
	Count int        `json:"count"`
}

func (s *Server) handleRegionStats(args json.RawMessage) (interface{}, error) {
	var a regionStatsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.image(a.imageArgs)
	if err != nil {
		return nil, err
	}
	r, err := newRegion(img, a.Shape)
	if err != nil {
		return nil, err
	}
	return imaging.Stats(r, a.Count)
}

type regionGridArgs struct {
	imageArgs
	Cols       int    `json:"cols"`
	Rows       int    `json:"rows"`
	TileWidth  int    `json:"tile_width"`
	TileHeight int    `json:"tile_height"`
	Count      int    `json:"count"`
	Overlay    bool   `json:"overlay"`
	GridColor  string `json:"grid_color"`
}

func (s *Server) handleRegionGrid(args json.RawMessage) (interface{}, error) {
	var a regionGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.image(a.imageArgs)
	if err != nil {
		return nil, err
	}

	var g *region.Grid
	if a.TileWidth != 0 || a.TileHeight != 0 {
		g, err = region.NewGridOfTiles(img, a.TileWidth, a.TileHeight)
	} else {
		if a.Cols == 0 {
			a.Cols = 2
		}
		if a.Rows == 0 {
			a.Rows = 2
		}
		g, err = region.NewGrid(img, a.Cols, a.Rows)
	}
	if err != nil {
		return nil, err
	}

	res, err := imaging.GridStats(g, a.Count)
	if err != nil {
		return nil, err
	}
	if a.Overlay {
		if res.Overlay, err = imaging.GridOverlay(g, a.GridColor); err != nil {
			return nil, err
		}
	}
	return res, nil
}
