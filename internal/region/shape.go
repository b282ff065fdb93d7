package region

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/segment"
)

// Shape is a pixel predicate with a bounding box.
//
// Contains must be pure and deterministic, and must return false for every
// point outside Bounds.
type Shape interface {
	Contains(x, y int) bool
	Bounds() image.Rectangle
}

// Rect is an axis-aligned rectangle; Min is inclusive, Max exclusive.
type Rect image.Rectangle

// NewRect returns the rectangle spanning columns [x1, x2) and rows [y1, y2).
// The corners may be given in either order.
func NewRect(x1, y1, x2, y2 int) Rect {
	return Rect(image.Rect(x1, y1, x2, y2))
}

func (r Rect) Contains(x, y int) bool {
	return image.Pt(x, y).In(image.Rectangle(r))
}

func (r Rect) Bounds() image.Rectangle { return image.Rectangle(r) }

// Circle is a disc centered at (CX, CY) with radius R, in pixel units.
type Circle struct {
	CX, CY, R float64
}

func (c Circle) Contains(x, y int) bool {
	if c.R < 0 {
		return false
	}
	dx := float64(x) + 0.5 - c.CX
	dy := float64(y) + 0.5 - c.CY
	return dx*dx+dy*dy <= c.R*c.R
}

func (c Circle) Bounds() image.Rectangle {
	if c.R < 0 {
		return image.Rectangle{}
	}
	return boundsOf(c.CX-c.R, c.CY-c.R, c.CX+c.R, c.CY+c.R)
}

// Ellipse is an axis-aligned ellipse centered at (CX, CY) with semi-axes RX
// and RY.
type Ellipse struct {
	CX, CY, RX, RY float64
}

func (e Ellipse) Contains(x, y int) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx := (float64(x) + 0.5 - e.CX) / e.RX
	dy := (float64(y) + 0.5 - e.CY) / e.RY
	return dx*dx+dy*dy <= 1
}

func (e Ellipse) Bounds() image.Rectangle {
	if e.RX <= 0 || e.RY <= 0 {
		return image.Rectangle{}
	}
	return boundsOf(e.CX-e.RX, e.CY-e.RY, e.CX+e.RX, e.CY+e.RY)
}

// maxCoord bounds the pixel coordinates of curved shapes so that float
// extents convert to int without overflow.
const maxCoord = 1 << 30

// boundsOf returns the pixel rectangle covering the continuous box. NaN
// extents give an empty rectangle.
func boundsOf(x0, y0, x1, y1 float64) image.Rectangle {
	if math.IsNaN(x0) || math.IsNaN(y0) || math.IsNaN(x1) || math.IsNaN(y1) {
		return image.Rectangle{}
	}
	return image.Rect(
		coord(math.Floor(x0)), coord(math.Floor(y0)),
		coord(math.Ceil(x1)), coord(math.Ceil(y1)),
	)
}

func coord(v float64) int {
	return int(math.Max(-maxCoord, math.Min(maxCoord, v)))
}

// Polygon is a closed polygon over pixel-corner vertices, filled with the
// even-odd rule. Fewer than three vertices contain nothing.
type Polygon []image.Point

func (p Polygon) Contains(x, y int) bool {
	if len(p) < 3 {
		return false
	}
	px := float64(x) + 0.5
	py := float64(y) + 0.5
	inside := false
	j := len(p) - 1
	for i := range p {
		xi, yi := float64(p[i].X), float64(p[i].Y)
		xj, yj := float64(p[j].X), float64(p[j].Y)
		if (yi > py) != (yj > py) && px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

func (p Polygon) Bounds() image.Rectangle {
	if len(p) < 3 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		r.Min.X = min(r.Min.X, v.X)
		r.Min.Y = min(r.Min.Y, v.Y)
		r.Max.X = max(r.Max.X, v.X)
		r.Max.Y = max(r.Max.Y, v.Y)
	}
	return r
}

// Clip limits s to the pixels of r. It returns s itself when its bounding
// box already lies inside r.
func Clip(s Shape, r image.Rectangle) Shape {
	if s.Bounds().Canon().In(r) {
		return s
	}
	return clipped{shape: s, r: r}
}

type clipped struct {
	shape Shape
	r     image.Rectangle
}

func (c clipped) Contains(x, y int) bool {
	return image.Pt(x, y).In(c.r) && c.shape.Contains(x, y)
}

func (c clipped) Bounds() image.Rectangle { return c.shape.Bounds().Canon().Intersect(c.r) }

// Mask contains the nonzero pixels of a gray image.
type Mask struct {
	gray   *image.Gray
	bounds image.Rectangle
}

// NewMask builds a Mask over m. Bounds is the tightest rectangle holding
// every nonzero pixel. The mask keeps a reference to m.
func NewMask(m *image.Gray) *Mask {
	b := m.Bounds()
	tight := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.Pix[m.PixOffset(x, y)] == 0 {
				continue
			}
			tight = tight.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return &Mask{gray: m, bounds: tight}
}

// ThresholdMask segments src and keeps the pixels whose luminance is at
// least level.
func ThresholdMask(src image.Image, level uint8) *Mask {
	g := segment.Threshold(src, level)
	// Align the mask with src when src does not start at the origin.
	g.Rect = g.Rect.Sub(g.Rect.Min).Add(src.Bounds().Min)
	return NewMask(g)
}

func (m *Mask) Contains(x, y int) bool {
	if !image.Pt(x, y).In(m.bounds) {
		return false
	}
	return m.gray.Pix[m.gray.PixOffset(x, y)] != 0
}

func (m *Mask) Bounds() image.Rectangle { return m.bounds }
