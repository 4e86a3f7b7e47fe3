package mot

import (
	"image"
)

// Point is a center point of a box
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func NewPointFrom(point image.Point) Point {
	return Point{
		X: float64(point.X),
		Y: float64(point.Y),
	}
}

// Scale multiplies coordinates by given factors (e.g. net grid -> video frame)
func (p Point) Scale(sx, sy float64) Point {
	return Point{
		X: p.X * sx,
		Y: p.Y * sy,
	}
}

// BBox is an axis-aligned rectangle in corner form (x1, y1, x2, y2)
type BBox struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

func NewBBox(x1, y1, x2, y2 float64) BBox {
	return BBox{
		X1: x1,
		Y1: y1,
		X2: x2,
		Y2: y2,
	}
}

func NewBBoxFrom(rect image.Rectangle) BBox {
	return BBox{
		X1: float64(rect.Min.X),
		Y1: float64(rect.Min.Y),
		X2: float64(rect.Max.X),
		Y2: float64(rect.Max.Y),
	}
}

// Width returns X2-X1. Could be negative for malformed boxes
func (b BBox) Width() float64 {
	return b.X2 - b.X1
}

// Height returns Y2-Y1. Could be negative for malformed boxes
func (b BBox) Height() float64 {
	return b.Y2 - b.Y1
}

// Area returns signed area of the box
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// Center returns center of the box
func (b BBox) Center() Point {
	return Point{
		X: b.X1 + b.Width()/2.0,
		Y: b.Y1 + b.Height()/2.0,
	}
}

// Scale multiplies coordinates by given factors
func (b BBox) Scale(sx, sy float64) BBox {
	return BBox{
		X1: b.X1 * sx,
		Y1: b.Y1 * sy,
		X2: b.X2 * sx,
		Y2: b.Y2 * sy,
	}
}

// Image converts box to integer image.Rectangle (truncating, as drawing code usually does)
func (b BBox) Image() image.Rectangle {
	return image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2))
}

// CenterBox is a detection in center form (cx, cy, w, h)
type CenterBox struct {
	CX     float64
	CY     float64
	Width  float64
	Height float64
}

func NewCenterBox(cx, cy, width, height float64) CenterBox {
	return CenterBox{
		CX:     cx,
		CY:     cy,
		Width:  width,
		Height: height,
	}
}

// Center returns (cx, cy) as a point
func (c CenterBox) Center() Point {
	return Point{X: c.CX, Y: c.CY}
}

// BBox converts center form to corner form.
// Note: x2/y2 are computed from x1/y1 and size, not from the center
func (c CenterBox) BBox() BBox {
	x1 := c.CX - c.Width/2.0
	y1 := c.CY - c.Height/2.0
	return BBox{
		X1: x1,
		Y1: y1,
		X2: x1 + c.Width,
		Y2: y1 + c.Height,
	}
}
