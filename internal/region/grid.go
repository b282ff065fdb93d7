package region

import (
	"errors"
	"fmt"
	"image"
)

// ErrTileIndex is returned for a tile position outside the grid.
var ErrTileIndex = errors.New("region: tile out of range")

// Grid splits an image into equal rectangular tiles.
//
// Tiles are tileWidth x tileHeight pixels laid from the image's top-left
// corner. Tiles on the right and bottom edges are cut at the image border.
// When the image size is not a multiple of the tile size, the leftover
// pixels on those edges belong to no tile.
type Grid struct {
	src        image.Image
	cols, rows int
	tileW      int
	tileH      int
}

// NewGrid divides src into cols x rows tiles of size Dx/cols by Dy/rows.
// Non-positive counts are treated as one. It fails when a count exceeds the
// image size, since the tiles would be empty.
func NewGrid(src image.Image, cols, rows int) (*Grid, error) {
	b := src.Bounds()
	cols = max(cols, 1)
	rows = max(rows, 1)
	if cols > b.Dx() || rows > b.Dy() {
		return nil, fmt.Errorf("%w: %dx%d grid over %dx%d image", ErrTileIndex, cols, rows, b.Dx(), b.Dy())
	}
	return &Grid{src: src, cols: cols, rows: rows, tileW: b.Dx() / cols, tileH: b.Dy() / rows}, nil
}

// NewGridOfTiles covers src with tiles of the given size. The tile counts
// are Dx/tileW and Dy/tileH rounded to nearest, and at least one.
func NewGridOfTiles(src image.Image, tileW, tileH int) (*Grid, error) {
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %dx%d", tileW, tileH)
	}
	b := src.Bounds()
	cols := max(1, (b.Dx()+tileW/2)/tileW)
	rows := max(1, (b.Dy()+tileH/2)/tileH)
	return &Grid{src: src, cols: cols, rows: rows, tileW: tileW, tileH: tileH}, nil
}

// Source returns the tiled image.
func (g *Grid) Source() image.Image { return g.src }

// Cols returns the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// TileWidth returns the nominal tile width.
func (g *Grid) TileWidth() int { return g.tileW }

// TileHeight returns the nominal tile height.
func (g *Grid) TileHeight() int { return g.tileH }

// NumTiles returns Cols * Rows.
func (g *Grid) NumTiles() int { return g.cols * g.rows }

// TileBounds returns the image rectangle of tile (col, row).
func (g *Grid) TileBounds(col, row int) (image.Rectangle, error) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return image.Rectangle{}, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrTileIndex, col, row, g.cols, g.rows)
	}
	b := g.src.Bounds()
	x := b.Min.X + col*g.tileW
	y := b.Min.Y + row*g.tileH
	return image.Rect(x, y, x+g.tileW, y+g.tileH).Intersect(b), nil
}

// Tile returns tile (col, row) as a rectangular region over the source.
func (g *Grid) Tile(col, row int) (*Region, error) {
	r, err := g.TileBounds(col, row)
	if err != nil {
		return nil, err
	}
	return NewShaped(g.src, Rect(r)), nil
}

// TileAt returns the tile with the given index. Indices run down each column
// before moving to the next: index i is column i/Rows, row i%Rows.
func (g *Grid) TileAt(index int) (*Region, error) {
	if index < 0 || index >= g.NumTiles() {
		return nil, fmt.Errorf("%w: index %d of %d", ErrTileIndex, index, g.NumTiles())
	}
	return g.Tile(index/g.rows, index%g.rows)
}
