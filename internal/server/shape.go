package server

import (
	"fmt"
	"image"

	"github.com/ironsheep/multiband-mcp/internal/imaging"
	"github.com/ironsheep/multiband-mcp/internal/region"
)

// defaultThreshold is the luminance level used when a threshold shape omits
// its level.
const defaultThreshold = 128

// shapeArgs is the JSON form of a region shape.
type shapeArgs struct {
	Type string `json:"type"`

	// rect
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`

	// circle, ellipse
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
	RX float64 `json:"rx"`
	RY float64 `json:"ry"`

	// polygon
	Points []struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"points"`

	// threshold
	Level *int `json:"level"`

	// quadrant
	Name string `json:"name"`
}

// newRegion binds the shape described by a to src. A nil a covers the whole
// image. Shapes are clipped to the image, and a shape whose bounding box
// misses the image entirely is rejected.
func newRegion(src image.Image, a *shapeArgs) (*region.Region, error) {
	if a == nil {
		return region.New(src), nil
	}

	var shape region.Shape
	switch a.Type {
	case "rect":
		if a.X1 >= a.X2 || a.Y1 >= a.Y2 {
			return nil, fmt.Errorf("invalid rect: x1 must be < x2, y1 must be < y2")
		}
		shape = region.NewRect(a.X1, a.Y1, a.X2, a.Y2)
	case "circle":
		if a.R <= 0 {
			return nil, fmt.Errorf("invalid circle: r must be positive, got %g", a.R)
		}
		shape = region.Circle{CX: a.CX, CY: a.CY, R: a.R}
	case "ellipse":
		if a.RX <= 0 || a.RY <= 0 {
			return nil, fmt.Errorf("invalid ellipse: rx and ry must be positive")
		}
		shape = region.Ellipse{CX: a.CX, CY: a.CY, RX: a.RX, RY: a.RY}
	case "polygon":
		if len(a.Points) < 3 {
			return nil, fmt.Errorf("invalid polygon: need at least 3 points, got %d", len(a.Points))
		}
		poly := make(region.Polygon, len(a.Points))
		for i, p := range a.Points {
			poly[i] = image.Pt(p.X, p.Y)
		}
		shape = poly
	case "threshold":
		level := defaultThreshold
		if a.Level != nil {
			level = *a.Level
		}
		if level < 0 || level > 255 {
			return nil, fmt.Errorf("invalid threshold: level must be 0-255, got %d", level)
		}
		shape = region.ThresholdMask(src, uint8(level))
	case "quadrant":
		q, err := imaging.Quadrant(src.Bounds(), a.Name)
		if err != nil {
			return nil, err
		}
		shape = q
	case "":
		return nil, fmt.Errorf("shape type is required")
	default:
		return nil, fmt.Errorf("unknown shape type: %s", a.Type)
	}

	b := src.Bounds()
	if sb := shape.Bounds().Canon(); !sb.Empty() && !sb.Overlaps(b) {
		return nil, fmt.Errorf("%s shape %v does not overlap image bounds %v", a.Type, sb, b)
	}
	return region.NewShaped(src, region.Clip(shape, b)), nil
}
