package assetgen

import (
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498307936

type verb uint8

const (
	verbMove verb = iota
	verbLine
	verbCube
	verbClose
)

type pathOp struct {
	verb verb
	pts  [3]Point
}

// Path is an outline made of closed subpaths of line and cubic segments.
// Paths are plain values: they carry no color and no target.
type Path struct {
	ops []pathOp
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(x, y float64) {
	p.ops = append(p.ops, pathOp{verb: verbMove, pts: [3]Point{Pt(x, y)}})
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, pathOp{verb: verbLine, pts: [3]Point{Pt(x, y)}})
}

// CubeTo adds a cubic Bézier segment with control points c1, c2 ending at end.
func (p *Path) CubeTo(c1, c2, end Point) {
	p.ops = append(p.ops, pathOp{verb: verbCube, pts: [3]Point{c1, c2, end}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.ops = append(p.ops, pathOp{verb: verbClose})
}

// Len returns the number of path operations.
func (p *Path) Len() int {
	return len(p.ops)
}

// Bounds returns the bounding box of all path points, control points included.
func (p *Path) Bounds() Rect {
	if len(p.ops) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, op := range p.ops {
		n := 0
		switch op.verb {
		case verbMove, verbLine:
			n = 1
		case verbCube:
			n = 3
		}
		for _, pt := range op.pts[:n] {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	return R(minX, minY, maxX, maxY)
}

// Append adds all subpaths of q to p.
func (p *Path) Append(q *Path) {
	p.ops = append(p.ops, q.ops...)
}

// rasterize feeds the path into a fresh rasterizer of the given size.
func (p *Path) rasterize(width, height int) *vector.Rasterizer {
	z := vector.NewRasterizer(width, height)
	open := false
	for _, op := range p.ops {
		switch op.verb {
		case verbMove:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f32(op.pts[0].X), f32(op.pts[0].Y))
			open = true
		case verbLine:
			z.LineTo(f32(op.pts[0].X), f32(op.pts[0].Y))
		case verbCube:
			z.CubeTo(
				f32(op.pts[0].X), f32(op.pts[0].Y),
				f32(op.pts[1].X), f32(op.pts[1].Y),
				f32(op.pts[2].X), f32(op.pts[2].Y),
			)
		case verbClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	return z
}

func f32(v float64) float32 { return float32(v) }

// RectPath returns a clockwise rectangle.
func RectPath(r Rect) *Path {
	p := NewPath()
	p.MoveTo(r.Min.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Max.Y)
	p.LineTo(r.Min.X, r.Max.Y)
	p.Close()
	return p
}

// RoundedRectPath returns a clockwise rectangle with circular corners.
// The radius is clamped to half the shorter side; a radius <= 0 yields
// a plain rectangle.
func RoundedRectPath(r Rect, radius float64) *Path {
	radius = math.Min(radius, math.Min(r.Dx(), r.Dy())/2)
	if radius <= 0 {
		return RectPath(r)
	}
	k := radius * kappa
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	p := NewPath()
	p.MoveTo(x0+radius, y0)
	p.LineTo(x1-radius, y0)
	p.CubeTo(Pt(x1-radius+k, y0), Pt(x1, y0+radius-k), Pt(x1, y0+radius))
	p.LineTo(x1, y1-radius)
	p.CubeTo(Pt(x1, y1-radius+k), Pt(x1-radius+k, y1), Pt(x1-radius, y1))
	p.LineTo(x0+radius, y1)
	p.CubeTo(Pt(x0+radius-k, y1), Pt(x0, y1-radius+k), Pt(x0, y1-radius))
	p.LineTo(x0, y0+radius)
	p.CubeTo(Pt(x0, y0+radius-k), Pt(x0+radius-k, y0), Pt(x0+radius, y0))
	p.Close()
	return p
}

// EllipsePath returns a clockwise ellipse inscribed in the bounding box r.
func EllipsePath(r Rect) *Path {
	c := r.Center()
	rx, ry := r.Dx()/2, r.Dy()/2
	kx, ky := rx*kappa, ry*kappa

	p := NewPath()
	p.MoveTo(c.X+rx, c.Y)
	p.CubeTo(Pt(c.X+rx, c.Y+ky), Pt(c.X+kx, c.Y+ry), Pt(c.X, c.Y+ry))
	p.CubeTo(Pt(c.X-kx, c.Y+ry), Pt(c.X-rx, c.Y+ky), Pt(c.X-rx, c.Y))
	p.CubeTo(Pt(c.X-rx, c.Y-ky), Pt(c.X-kx, c.Y-ry), Pt(c.X, c.Y-ry))
	p.CubeTo(Pt(c.X+kx, c.Y-ry), Pt(c.X+rx, c.Y-ky), Pt(c.X+rx, c.Y))
	p.Close()
	return p
}

// CirclePath returns a circle of radius r centred on c.
func CirclePath(c Point, r float64) *Path {
	return EllipsePath(R(c.X-r, c.Y-r, c.X+r, c.Y+r))
}

// PolygonPath returns a closed polygon through pts.
// Fewer than three points yield an empty path.
func PolygonPath(pts []Point) *Path {
	p := NewPath()
	if len(pts) < 3 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// LinePath returns the segment a→b thickened to width as a quadrilateral
// with butt ends. A zero-length segment yields an empty path.
func LinePath(a, b Point, width float64) *Path {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || width <= 0 {
		return NewPath()
	}
	// Unit normal scaled to half the width.
	n := Pt(-d.Y/l, d.X/l).Mul(width / 2)
	return PolygonPath([]Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}
