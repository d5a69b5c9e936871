package assetgen

import (
	"image"

	"golang.org/x/image/draw"
)

// PasteWithMask returns a new transparent canvas holding content's pixels
// wherever the mask is opaque, scaled by the mask's opacity.
// The result has content's size.
func PasteWithMask(content *Canvas, m *Mask) *Canvas {
	out := NewCanvas(content.Width(), content.Height())
	draw.DrawMask(out.img, out.img.Rect, content.img, image.Point{}, m.img, image.Point{}, draw.Src)
	return out
}

// Composite merges layer over dst with Porter-Duff "over".
// The layer is aligned to dst's origin and clipped to dst's bounds.
func Composite(dst, layer *Canvas) {
	draw.Draw(dst.img, dst.img.Rect, layer.img, image.Point{}, draw.Over)
}
