package assetgen

import (
	"image"
	"math"
)

// Point represents a 2D point or vector in pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Rect is an axis-aligned rectangle in continuous pixel coordinates.
// Min is inclusive, Max is exclusive, matching image.Rectangle.
type Rect struct {
	Min, Max Point
}

// R is shorthand for Rect{Pt(x0, y0), Pt(x1, y1)}.
// The corners are swapped as needed so that Min <= Max.
func R(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// Dx returns r's width.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns r's height.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Center returns the centre point of r.
func (r Rect) Center() Point {
	return Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Inset returns r shrunk by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return R(r.Min.X+d, r.Min.Y+d, r.Max.X-d, r.Max.Y-d)
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Scale multiplies every coordinate of r by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{Min: r.Min.Mul(s), Max: r.Max.Mul(s)}
}

// Pixels returns the smallest integer rectangle containing r.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}
