package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/multiband-mcp/internal/raster"
	"github.com/ironsheep/multiband-mcp/internal/region"
)

// CropResult contains an encoded image.
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	X           int    `json:"x"` // Source column of the result's left edge
	Y           int    `json:"y"` // Source row of the result's top edge
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CropRegion materializes r and encodes it as PNG. Pixels outside the shape
// are transparent. A scale other than 1 resizes the result with Lanczos
// resampling.
func CropRegion(r *region.Region, scale float64) (*CropResult, error) {
	b := r.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("region is empty")
	}
	if !b.Overlaps(r.Source().Bounds()) {
		return nil, fmt.Errorf("region %v outside image bounds %v", b, r.Source().Bounds())
	}
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", scale)
	}

	m, err := r.Materialize()
	if err != nil {
		return nil, err
	}
	var out image.Image = m
	if scale != 1.0 {
		w := max(1, int(float64(b.Dx())*scale))
		h := max(1, int(float64(b.Dy())*scale))
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}

	res, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	res.X, res.Y = b.Min.X, b.Min.Y
	return res, nil
}

// EncodeLayer encodes one band of m as an 8-bit grayscale PNG, rescaled from
// the band's native range.
func EncodeLayer(m *raster.Image, band int) (*CropResult, error) {
	if band < 0 || band >= m.Bands() {
		return nil, fmt.Errorf("%w: %d of %d", raster.ErrBandIndex, band, m.Bands())
	}
	return encodePNG(m.LayeredByteImages()[band])
}

// EncodeInterleaved encodes a three- or four-band m as an RGB(A) PNG.
func EncodeInterleaved(m *raster.Image) (*CropResult, error) {
	img, err := m.InterleavedByteImage()
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}

func encodePNG(img image.Image) (*CropResult, error) {
	var buf bytes.Buffer
	if err := raster.DefaultCodec.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &CropResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Quadrant returns the named part of bounds as a rectangle shape.
//
// Names: top-left, top-right, bottom-left, bottom-right, top-half,
// bottom-half, left-half, right-half and center (the middle 50%).
func Quadrant(bounds image.Rectangle, name string) (region.Rect, error) {
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return region.Rect{}, fmt.Errorf("unknown quadrant: %s", name)
	}

	o := bounds.Min
	return region.NewRect(o.X+x1, o.Y+y1, o.X+x2, o.Y+y2), nil
}
