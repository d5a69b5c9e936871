package shape

import (
	"math"

	"github.com/phantom-term/assetgen"
)

// Descriptor is the absolute geometry of one icon render. It is computed
// once by Build and must not be modified afterwards.
type Descriptor struct {
	Size    int              // canvas width and height in pixels
	Inset   int              // tile padding in pixels
	Corner  float64          // tile corner radius
	Content float64          // Size - 2*Inset
	Center  assetgen.Point

	Background  assetgen.Rect // the rounded tile
	AmbientGlow assetgen.Rect // bounding box of the glow ellipse
	AmbientBlur float64

	Mark Mark
}

// Mark is the geometry of the glyph drawn on the tile.
type Mark struct {
	Kind MarkKind

	// The silhouette is the union of Solids minus the union of Holes.
	Solids []*assetgen.Path
	Holes  []*assetgen.Path

	// Accent is the cursor block. It is drawn only where it overlaps the
	// silhouette.
	Accent     assetgen.Rect
	AccentGlow assetgen.Rect
	AccentBlur float64

	// The fill gradient runs from GradientTop to GradientBottom.
	GradientTop    float64
	GradientBottom float64

	EdgeGlowBlur float64
}

// Build computes the geometry of a size×size icon with the given mark.
func Build(size int, p Proportions, kind MarkKind) (*Descriptor, error) {
	if size <= 0 {
		return nil, assetgen.Geometryf("size %d must be positive", size)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := float64(size)
	inset := int(math.Floor(s * p.Padding))
	if size <= 2*inset {
		return nil, assetgen.Geometryf("size %d does not exceed twice the inset %d", size, inset)
	}
	content := float64(size - 2*inset)
	half := float64(size / 2)
	r := math.Floor(content * p.AmbientRadius)

	d := &Descriptor{
		Size:        size,
		Inset:       inset,
		Corner:      math.Floor(s * p.Corner),
		Content:     content,
		Center:      assetgen.Pt(half, half),
		Background:  assetgen.R(float64(inset), float64(inset), float64(size-inset), float64(size-inset)),
		AmbientGlow: assetgen.R(half-r, half-r, half+r, half+r),
		AmbientBlur: math.Floor(content * p.AmbientBlur),
	}

	switch kind {
	case Letter:
		d.Mark = letterMark(d.Center, content, p)
	case Ghost:
		d.Mark = ghostMark(d.Center, content, p)
	case Terminal:
		d.Mark = terminalMark(d.Center, content, p)
	default:
		return nil, assetgen.Geometryf("unknown mark %q", kind)
	}
	d.Mark.Kind = kind
	d.Mark.EdgeGlowBlur = math.Floor(content * p.EdgeGlowBlur)
	d.Mark.AccentBlur = math.Floor(content * p.AccentGlowBlur)

	assetgen.Logger().Debug("descriptor computed",
		"size", size, "mark", string(kind), "inset", inset, "corner", d.Corner)
	return d, nil
}

// BackgroundPath returns the outline of the rounded tile.
func (d *Descriptor) BackgroundPath() *assetgen.Path {
	return assetgen.RoundedRectPath(d.Background, d.Corner)
}

// BackgroundMask renders the tile silhouette.
func (d *Descriptor) BackgroundMask() *assetgen.Mask {
	m := assetgen.NewMask(d.Size, d.Size)
	m.Fill(d.BackgroundPath())
	return m
}

// SilhouetteMask renders the mark silhouette.
func (d *Descriptor) SilhouetteMask() *assetgen.Mask {
	m := assetgen.NewMask(d.Size, d.Size)
	for _, p := range d.Mark.Solids {
		m.Fill(p)
	}
	if len(d.Mark.Holes) > 0 {
		holes := assetgen.NewMask(d.Size, d.Size)
		for _, p := range d.Mark.Holes {
			holes.Fill(p)
		}
		m.Subtract(holes)
	}
	return m
}

// AccentMask renders the accent rectangle restricted to silhouette.
func (d *Descriptor) AccentMask(silhouette *assetgen.Mask) *assetgen.Mask {
	m := assetgen.NewMask(d.Size, d.Size)
	m.Fill(assetgen.RectPath(d.Mark.Accent))
	m.Intersect(silhouette)
	return m
}

// accentRects returns the cursor block of height h with its bottom edge at
// bottom, and the glow rectangle around it.
func accentRects(x0, x1, bottom, h, pad float64) (accent, glow assetgen.Rect) {
	accent = assetgen.R(x0, bottom-h, x1, bottom)
	glow = accent.Inset(-pad)
	return accent, glow
}
