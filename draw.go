package assetgen

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// FillPath composites path p, filled with a solid color, over dst.
func FillPath(dst *Canvas, p *Path, c Color) {
	if p.Len() == 0 || c.A == 0 || dst.img.Rect.Empty() {
		return
	}
	z := p.rasterize(dst.Width(), dst.Height())
	z.Draw(dst.img, dst.img.Rect, image.NewUniform(c.NRGBA()), image.Point{})
}

// FillRect fills an axis-aligned rectangle.
func FillRect(dst *Canvas, r Rect, c Color) {
	FillPath(dst, RectPath(r), c)
}

// FillRoundedRect fills a rectangle with circular corners of the given radius.
func FillRoundedRect(dst *Canvas, r Rect, radius float64, c Color) {
	FillPath(dst, RoundedRectPath(r, radius), c)
}

// FillEllipse fills the ellipse inscribed in the bounding box r.
func FillEllipse(dst *Canvas, r Rect, c Color) {
	FillPath(dst, EllipsePath(r), c)
}

// FillPolygon fills the closed polygon through pts.
func FillPolygon(dst *Canvas, pts []Point, c Color) {
	FillPath(dst, PolygonPath(pts), c)
}

// DrawLine draws the segment a→b with the given stroke width.
func DrawLine(dst *Canvas, a, b Point, width float64, c Color) {
	FillPath(dst, LinePath(a, b, width), c)
}

// VerticalGradient replaces the pixels of area with g, one color per row.
// Row y takes the color g.At(y); pixels outside area are untouched.
func VerticalGradient(dst *Canvas, area image.Rectangle, g Gradient) {
	area = area.Intersect(dst.img.Rect)
	if area.Empty() {
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := image.Rect(area.Min.X, y, area.Max.X, y+1)
		draw.Draw(dst.img, row, image.NewUniform(g.At(float64(y)).NRGBA()), image.Point{}, draw.Src)
	}
}

// FillMask composites a solid color over dst wherever the mask is opaque.
func FillMask(dst *Canvas, m *Mask, c Color) {
	if c.A == 0 {
		return
	}
	draw.DrawMask(dst.img, dst.img.Rect, image.NewUniform(c.NRGBA()), image.Point{}, m.img, image.Point{}, draw.Over)
}

// snap rounds v to the nearest integer pixel edge.
func snap(v float64) int {
	return int(math.Round(v))
}

// PixelRect converts r to integer pixels by rounding each edge.
func PixelRect(r Rect) image.Rectangle {
	return image.Rect(snap(r.Min.X), snap(r.Min.Y), snap(r.Max.X), snap(r.Max.Y))
}
