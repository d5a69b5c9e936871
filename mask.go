package assetgen

import (
	"image"

	"golang.org/x/image/draw"
)

// Mask is a single-channel opacity buffer used to confine a fill to a
// silhouette. Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	img *image.Alpha
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{img: image.NewAlpha(image.Rect(0, 0, width, height))}
}

// MaskFromAlpha creates a mask from an image's alpha channel.
func MaskFromAlpha(src image.Image) *Mask {
	b := src.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	draw.Draw(m.img, m.img.Rect, src, b.Min, draw.Src)
	return m
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.img.Rect.Dx() }

// Height returns the mask height.
func (m *Mask) Height() int { return m.img.Rect.Dy() }

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle { return m.img.Rect }

// Image returns the underlying alpha buffer.
func (m *Mask) Image() *image.Alpha { return m.img }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(m.img.Rect) {
		return 0
	}
	return m.img.Pix[m.img.PixOffset(x, y)]
}

// Fill adds the anti-aliased coverage of path p to the mask.
// Overlapping fills are combined as a union.
func (m *Mask) Fill(p *Path) {
	if p.Len() == 0 || m.img.Rect.Empty() {
		return
	}
	z := p.rasterize(m.Width(), m.Height())
	z.Draw(m.img, m.img.Rect, image.Opaque, image.Point{})
}

// FillValue sets every value of the mask.
func (m *Mask) FillValue(v uint8) {
	for i := range m.img.Pix {
		m.img.Pix[i] = v
	}
}

// Intersect multiplies the mask by other, keeping opacity only where both
// are opaque. Masks of different sizes are intersected over their overlap;
// the rest of m becomes transparent.
func (m *Mask) Intersect(other *Mask) {
	for y := 0; y < m.Height(); y++ {
		row := m.img.Pix[y*m.img.Stride : y*m.img.Stride+m.Width()]
		for x := range row {
			row[x] = mul255(row[x], other.At(x, y))
		}
	}
}

// Subtract removes other's coverage from the mask.
func (m *Mask) Subtract(other *Mask) {
	for y := 0; y < m.Height(); y++ {
		row := m.img.Pix[y*m.img.Stride : y*m.img.Stride+m.Width()]
		for x := range row {
			row[x] = mul255(row[x], 255-other.At(x, y))
		}
	}
}

// OpaqueCount returns the number of pixels with a non-zero value.
func (m *Mask) OpaqueCount() int {
	n := 0
	for _, v := range m.img.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// OpaqueBounds returns the smallest rectangle containing every non-zero
// pixel, or the empty rectangle when the mask is fully transparent.
func (m *Mask) OpaqueBounds() image.Rectangle {
	var r image.Rectangle
	for y := 0; y < m.Height(); y++ {
		row := m.img.Pix[y*m.img.Stride : y*m.img.Stride+m.Width()]
		for x, v := range row {
			if v == 0 {
				continue
			}
			r = r.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return r
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	img := image.NewAlpha(m.img.Rect)
	copy(img.Pix, m.img.Pix)
	return &Mask{img: img}
}

// mul255 multiplies two 8-bit opacities with rounding.
func mul255(a, b uint8) uint8 {
	v := uint32(a)*uint32(b) + 127
	// #nosec G115 -- (v + v>>8) >> 8 is at most 255
	return uint8((v + v>>8) >> 8)
}
