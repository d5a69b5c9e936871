package assetgen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is a fixed-size premultiplied RGBA pixel buffer used as a
// rendering target. A Canvas is owned by whoever created it; the drawing
// functions in this package only ever touch the canvas passed to them.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a fully transparent canvas.
// Non-positive dimensions produce an empty canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewCanvasFilled creates a canvas filled with a solid color.
func NewCanvasFilled(width, height int, c Color) *Canvas {
	cv := NewCanvas(width, height)
	cv.Clear(c)
	return cv
}

// CanvasFrom copies any image into a new canvas whose origin is (0, 0).
func CanvasFrom(src image.Image) *Canvas {
	b := src.Bounds()
	cv := NewCanvas(b.Dx(), b.Dy())
	draw.Draw(cv.img, cv.img.Bounds(), src, b.Min, draw.Src)
	return cv
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// Image returns the underlying buffer. Mutating it mutates the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the entire canvas with a color, replacing existing pixels.
func (c *Canvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// At returns the non-premultiplied color of a single pixel.
// Pixels outside the canvas are transparent.
func (c *Canvas) At(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return Transparent
	}
	n := color.NRGBAModel.Convert(c.img.RGBAAt(x, y)).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Alpha returns the alpha of a single pixel.
func (c *Canvas) Alpha(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return 0
	}
	return c.img.Pix[c.img.PixOffset(x, y)+3]
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	img := image.NewRGBA(c.img.Rect)
	copy(img.Pix, c.img.Pix)
	return &Canvas{img: img}
}

// Equal reports whether two canvases have identical size and pixels.
func (c *Canvas) Equal(other *Canvas) bool {
	if other == nil || c.img.Rect != other.img.Rect {
		return false
	}
	for i := range c.img.Pix {
		if c.img.Pix[i] != other.img.Pix[i] {
			return false
		}
	}
	return true
}
