package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/multiband-mcp/internal/region"
)

func TestGridStats(t *testing.T) {
	img := createPatternImage(10, 10)
	g, err := region.NewGrid(img, 2, 2)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	res, err := GridStats(g, 1)
	if err != nil {
		t.Fatalf("GridStats failed: %v", err)
	}
	if res.Cols != 2 || res.Rows != 2 || res.TileWidth != 5 || res.TileHeight != 5 {
		t.Errorf("layout: got %+v", res)
	}
	if len(res.Tiles) != 4 {
		t.Fatalf("got %d tiles, want 4", len(res.Tiles))
	}

	want := []struct {
		col, row int
		hex      string
	}{
		{0, 0, "#FF0000"},
		{0, 1, "#0000FF"},
		{1, 0, "#00FF00"},
		{1, 1, "#FFFFFF"},
	}
	for i, w := range want {
		tile := res.Tiles[i]
		if tile.Index != i || tile.Col != w.col || tile.Row != w.row {
			t.Errorf("tile %d: got index %d at (%d,%d)", i, tile.Index, tile.Col, tile.Row)
		}
		if tile.Pixels != 25 {
			t.Errorf("tile %d: got %d pixels, want 25", i, tile.Pixels)
		}
		if tile.Mean == nil || tile.Mean.Hex != w.hex {
			t.Errorf("tile %d: got mean %+v, want %s", i, tile.Mean, w.hex)
		}
		if len(tile.Dominant) != 1 || tile.Dominant[0].Percentage != 100 {
			t.Errorf("tile %d: got dominant %+v", i, tile.Dominant)
		}
	}
}

func TestGridStats_SkipsDominant(t *testing.T) {
	g, _ := region.NewGrid(createPatternImage(4, 4), 2, 1)
	res, err := GridStats(g, 0)
	if err != nil {
		t.Fatalf("GridStats failed: %v", err)
	}
	for _, tile := range res.Tiles {
		if tile.Dominant != nil {
			t.Errorf("tile %d: dominant colors should be omitted", tile.Index)
		}
	}
}

func TestGridStats_TooManyTiles(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{A: 255})
	g, _ := region.NewGrid(img, 100, 100)
	if _, err := GridStats(g, 1); err == nil {
		t.Error("GridStats should refuse more than MaxGridTiles tiles")
	}
}

func TestGridOverlay(t *testing.T) {
	img := createInMemoryImage(9, 6, color.NRGBA{255, 255, 255, 255})
	g, _ := region.NewGrid(img, 3, 2)

	res, err := GridOverlay(g, "#00ff00")
	if err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}
	if res.Width != 9 || res.Height != 6 {
		t.Fatalf("dimensions: got %dx%d, want 9x6", res.Width, res.Height)
	}

	out := decodeResult(t, res)
	green := color.NRGBAModel.Convert(color.NRGBA{0, 255, 0, 255})
	white := color.NRGBAModel.Convert(color.NRGBA{255, 255, 255, 255})
	tests := []struct {
		p    image.Point
		want color.Color
	}{
		{image.Pt(3, 0), green}, // vertical line
		{image.Pt(6, 5), green}, // vertical line
		{image.Pt(1, 3), green}, // horizontal line
		{image.Pt(1, 1), white},
		{image.Pt(8, 5), white},
	}
	for _, tt := range tests {
		got := color.NRGBAModel.Convert(out.At(tt.p.X, tt.p.Y))
		if got != tt.want {
			t.Errorf("pixel %v: got %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGridOverlay_BadColor(t *testing.T) {
	g, _ := region.NewGrid(createPatternImage(4, 4), 2, 2)
	if _, err := GridOverlay(g, "red"); err == nil {
		t.Error("GridOverlay should reject a non-hex color")
	}
}
