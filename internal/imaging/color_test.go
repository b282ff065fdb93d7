package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/multiband-mcp/internal/colorspace"
	"github.com/ironsheep/multiband-mcp/internal/raster"
	"github.com/ironsheep/multiband-mcp/internal/region"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.NRGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.NRGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.NRGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.NRGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{255, 128, 64, 255})

	result, err := SampleColor(region.New(img), 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (RGBColor{255, 128, 64}) {
		t.Errorf("RGB: got %+v, want (255,128,64)", result.RGB)
	}
	if result.RGBA != (RGBAColor{255, 128, 64, 255}) {
		t.Errorf("RGBA: got %+v, want (255,128,64,255)", result.RGBA)
	}
	if result.Samples != nil {
		t.Errorf("Samples should be empty for a standard image, got %v", result.Samples)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.NRGBA
		wantHex string
		wantHSL HSLColor
	}{
		{"pure red", color.NRGBA{255, 0, 0, 255}, "#FF0000", HSLColor{0, 100, 50}},
		{"pure green", color.NRGBA{0, 255, 0, 255}, "#00FF00", HSLColor{120, 100, 50}},
		{"pure blue", color.NRGBA{0, 0, 255, 255}, "#0000FF", HSLColor{240, 100, 50}},
		{"white", color.NRGBA{255, 255, 255, 255}, "#FFFFFF", HSLColor{0, 0, 100}},
		{"black", color.NRGBA{0, 0, 0, 255}, "#000000", HSLColor{0, 0, 0}},
		{"gray", color.NRGBA{128, 128, 128, 255}, "#808080", HSLColor{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(region.New(img), 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", result.HSL, tt.wantHSL)
			}
		})
	}
}

func TestSampleColor_OutsideRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{255, 0, 0, 255})
	circle := region.NewShaped(img, region.Circle{CX: 50, CY: 50, R: 10})

	tests := []struct {
		name string
		r    *region.Region
		x, y int
	}{
		{"negative x", region.New(img), -1, 50},
		{"negative y", region.New(img), 50, -1},
		{"x too large", region.New(img), 100, 50},
		{"y too large", region.New(img), 50, 100},
		{"circle corner", circle, 41, 41},
		{"circle far", circle, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(tt.r, tt.x, tt.y)
			if !errors.Is(err, ErrOutsideRegion) {
				t.Errorf("got %v, want ErrOutsideRegion", err)
			}
		})
	}
}

func TestSampleColor_EdgeCoordinates(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"top-left", 0, 0},
		{"top-right", 99, 0},
		{"bottom-left", 0, 99},
		{"bottom-right", 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(region.New(img), tt.x, tt.y)
			if err != nil {
				t.Errorf("SampleColor failed for valid edge coordinate (%d,%d): %v", tt.x, tt.y, err)
			}
		})
	}
}

func TestSampleColor_RasterSamples(t *testing.T) {
	m, err := raster.New(2, 2, raster.Float, colorspace.HSV())
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	m.SetSample(1, 0, 0, 90)
	m.SetSample(1, 0, 1, 0.6)
	m.SetSample(1, 0, 2, 0.2)

	result, err := SampleColor(region.New(m), 1, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if len(result.Samples) != 3 || result.Samples[0] != 90 || result.Samples[2] != float64(float32(0.2)) {
		t.Errorf("Samples: got %v", result.Samples)
	}
	// Byte preview: 90/360 -> 64, 0.6 -> 153, 0.2 -> 51.
	if result.RGB != (RGBColor{64, 153, 51}) {
		t.Errorf("RGB preview: got %+v, want (64,153,51)", result.RGB)
	}
}

func TestMeanColor(t *testing.T) {
	img := createPatternImage(100, 100)

	mean, n := MeanColor(region.NewShaped(img, region.NewRect(0, 0, 100, 50)))
	if n != 5000 {
		t.Errorf("pixel count: got %d, want 5000", n)
	}
	// Half red, half green.
	if mean.RGB != (RGBColor{128, 128, 0}) {
		t.Errorf("mean: got %+v, want (128,128,0)", mean.RGB)
	}

	if mean, n := MeanColor(region.NewShaped(img, region.NewRect(5, 5, 5, 5))); mean != nil || n != 0 {
		t.Errorf("empty region: got (%v, %d), want (nil, 0)", mean, n)
	}
}

func TestDominantColors(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(region.New(img), 10)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 4 {
		t.Fatalf("expected 4 colors, got %d", len(result.Colors))
	}
	if result.Pixels != 10000 {
		t.Errorf("Pixels: got %d, want 10000", result.Pixels)
	}
	for _, c := range result.Colors {
		if c.Percentage != 25 {
			t.Errorf("color %s: got %.2f%%, want 25%%", c.Hex, c.Percentage)
		}
	}
	// Equal shares sort by hex.
	if result.Colors[0].Hex != "#0000F0" {
		t.Errorf("first color: got %s, want #0000F0", result.Colors[0].Hex)
	}
}

func TestDominantColors_Shape(t *testing.T) {
	img := createPatternImage(100, 100)

	// A circle centered in the red quadrant sees only red.
	result, err := DominantColors(region.NewShaped(img, region.Circle{CX: 25, CY: 25, R: 20}), 5)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].Hex != "#F00000" {
		t.Errorf("got %+v, want only #F00000", result.Colors)
	}
	if result.Colors[0].Percentage != 100 {
		t.Errorf("percentage: got %.2f, want 100", result.Colors[0].Percentage)
	}
}

func TestDominantColors_CountLimit(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(region.New(img), 2)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Errorf("expected 2 colors, got %d", len(result.Colors))
	}

	if _, err := DominantColors(region.New(img), 0); err == nil {
		t.Error("DominantColors should fail for a non-positive count")
	}
}

func TestDominantColors_Quantization(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{0xF0, 0xF0, 0xF0, 255})
	img.Set(1, 0, color.NRGBA{0xFA, 0xFA, 0xFA, 255})

	result, err := DominantColors(region.New(img), 5)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].Hex != "#F0F0F0" {
		t.Errorf("got %+v, want one #F0F0F0 bucket", result.Colors)
	}
}
