package compose

import (
	"image"

	"github.com/phantom-term/assetgen"
	"github.com/phantom-term/assetgen/shape"
)

// frame holds the masks shared by several layers of one render.
type frame struct {
	d          *shape.Descriptor
	p          Palette
	background *assetgen.Mask
	silhouette *assetgen.Mask
}

func newFrame(d *shape.Descriptor, p Palette) *frame {
	return &frame{
		d:          d,
		p:          p,
		background: d.BackgroundMask(),
		silhouette: d.SilhouetteMask(),
	}
}

func (f *frame) render(l Layer) *assetgen.Canvas {
	switch l {
	case Background:
		return f.backgroundLayer()
	case TopLight:
		return f.topLightLayer()
	case AmbientGlow:
		return f.ambientGlowLayer()
	case ShapeGlow:
		return f.shapeGlowLayer()
	case ShapeFill:
		return f.shapeFillLayer()
	case Accent:
		return f.accentLayer()
	case AccentGlow:
		return f.accentGlowLayer()
	}
	return f.blank()
}

func (f *frame) blank() *assetgen.Canvas {
	return assetgen.NewCanvas(f.d.Size, f.d.Size)
}

func (f *frame) solid(c assetgen.Color) *assetgen.Canvas {
	return assetgen.NewCanvasFilled(f.d.Size, f.d.Size, c)
}

func (f *frame) backgroundLayer() *assetgen.Canvas {
	c := f.blank()
	assetgen.FillPath(c, f.d.BackgroundPath(), f.p.Background)
	return c
}

// topLightLayer fades white from TopLightAlpha at the top of the tile to
// nothing at its bottom.
func (f *frame) topLightLayer() *assetgen.Canvas {
	c := f.blank()
	in, size := f.d.Inset, f.d.Size
	white := assetgen.White.WithAlpha(f.p.TopLightAlpha)
	g := assetgen.VerticalGradientOf(white, white.WithAlpha(0), float64(in), float64(in)+f.d.Content)
	assetgen.VerticalGradient(c, image.Rect(in, in, size-in, size-in), g)
	return assetgen.PasteWithMask(c, f.background)
}

func (f *frame) ambientGlowLayer() *assetgen.Canvas {
	c := f.blank()
	assetgen.FillEllipse(c, f.d.AmbientGlow, f.p.Glow.WithAlpha(f.p.AmbientAlpha))
	return assetgen.PasteWithMask(assetgen.Blur(c, f.d.AmbientBlur), f.background)
}

func (f *frame) shapeGlowLayer() *assetgen.Canvas {
	halo := assetgen.BlurMask(f.silhouette, f.d.Mark.EdgeGlowBlur)
	c := assetgen.PasteWithMask(f.solid(f.p.Glow.WithAlpha(f.p.EdgeGlowAlpha)), halo)
	return assetgen.PasteWithMask(c, f.background)
}

func (f *frame) shapeFillLayer() *assetgen.Canvas {
	c := f.blank()
	g := assetgen.VerticalGradientOf(
		f.p.LetterTop.WithAlpha(f.p.FillAlpha),
		f.p.LetterBottom.WithAlpha(f.p.FillAlpha),
		f.d.Mark.GradientTop, f.d.Mark.GradientBottom,
	)
	assetgen.VerticalGradient(c, c.Bounds(), g)
	return assetgen.PasteWithMask(c, f.silhouette)
}

func (f *frame) accentLayer() *assetgen.Canvas {
	return assetgen.PasteWithMask(f.solid(f.p.GlowBright), f.d.AccentMask(f.silhouette))
}

func (f *frame) accentGlowLayer() *assetgen.Canvas {
	c := f.blank()
	assetgen.FillRect(c, f.d.Mark.AccentGlow, f.p.GlowBright.WithAlpha(f.p.AccentGlowAlpha))
	return assetgen.PasteWithMask(assetgen.Blur(c, f.d.Mark.AccentBlur), f.background)
}
