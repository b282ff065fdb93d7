package imaging

import (
	"fmt"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/multiband-mcp/internal/region"
)

// MaxGridTiles caps the number of tiles GridStats will summarize.
const MaxGridTiles = 4096

// DefaultGridColor is the overlay line color when none is given.
const DefaultGridColor = "#FF0000"

// TileStats summarizes one grid tile.
type TileStats struct {
	Index    int              `json:"index"`
	Col      int              `json:"col"`
	Row      int              `json:"row"`
	Bounds   BoundsResult     `json:"bounds"`
	Pixels   int              `json:"pixels"`
	Mean     *ColorResult     `json:"mean,omitempty"`
	Dominant []ColorFrequency `json:"dominant,omitempty"`
}

// GridResult describes a tiled image and each of its tiles, in TileAt order.
type GridResult struct {
	Cols       int         `json:"cols"`
	Rows       int         `json:"rows"`
	TileWidth  int         `json:"tile_width"`
	TileHeight int         `json:"tile_height"`
	Tiles      []TileStats `json:"tiles"`
	Overlay    *CropResult `json:"overlay,omitempty"`
}

// GridStats computes the mean color and the top colors of every tile of g.
// A topColors of zero skips dominant colors.
func GridStats(g *region.Grid, topColors int) (*GridResult, error) {
	if g.NumTiles() > MaxGridTiles {
		return nil, fmt.Errorf("grid has %d tiles, limit is %d", g.NumTiles(), MaxGridTiles)
	}
	if topColors < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", topColors)
	}

	res := &GridResult{
		Cols:       g.Cols(),
		Rows:       g.Rows(),
		TileWidth:  g.TileWidth(),
		TileHeight: g.TileHeight(),
		Tiles:      make([]TileStats, 0, g.NumTiles()),
	}
	for i := 0; i < g.NumTiles(); i++ {
		tile, err := g.TileAt(i)
		if err != nil {
			return nil, err
		}
		b := tile.Bounds()
		ts := TileStats{
			Index:  i,
			Col:    i / g.Rows(),
			Row:    i % g.Rows(),
			Bounds: BoundsResult{X1: b.Min.X, Y1: b.Min.Y, X2: b.Max.X, Y2: b.Max.Y},
		}
		ts.Mean, ts.Pixels = MeanColor(tile)
		if topColors > 0 {
			dom, err := DominantColors(tile, topColors)
			if err != nil {
				return nil, err
			}
			ts.Dominant = dom.Colors
		}
		res.Tiles = append(res.Tiles, ts)
	}
	return res, nil
}

// GridOverlay draws the tile boundaries of g over its source and encodes the
// result as PNG. lineHex is a "#RRGGBB" color; an empty string uses
// DefaultGridColor.
func GridOverlay(g *region.Grid, lineHex string) (*CropResult, error) {
	if lineHex == "" {
		lineHex = DefaultGridColor
	}
	c, err := colorful.Hex(lineHex)
	if err != nil {
		return nil, fmt.Errorf("invalid grid color %q: %w", lineHex, err)
	}
	r, gr, b := c.RGB255()
	line := color.NRGBA{R: r, G: gr, B: b, A: 255}

	// Clone re-bases the image at the origin.
	out := imaging.Clone(g.Source())
	width := out.Bounds().Dx()
	height := out.Bounds().Dy()

	// Draw vertical lines
	for col := 1; col < g.Cols(); col++ {
		x := col * g.TileWidth()
		for y := 0; y < height; y++ {
			out.SetNRGBA(x, y, line)
		}
	}

	// Draw horizontal lines
	for row := 1; row < g.Rows(); row++ {
		y := row * g.TileHeight()
		for x := 0; x < width; x++ {
			out.SetNRGBA(x, y, line)
		}
	}

	res, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	o := g.Source().Bounds().Min
	res.X, res.Y = o.X, o.Y
	return res, nil
}
