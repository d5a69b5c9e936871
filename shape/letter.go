package shape

import "github.com/phantom-term/assetgen"

// letterMark builds the P: a full-height stem and a bowl drawn as a thick
// elliptical arc that starts at the top of the stem and stops before
// returning to it.
func letterMark(c assetgen.Point, content float64, p Proportions) Mark {
	lp := p.Letter
	h := content * lp.Height
	stemW := content * lp.StemWidth
	extent := content * lp.BowlExtent
	bowlH := h * lp.BowlHeight
	thick := content * lp.BowlThickness

	lx := c.X - content*lp.OpticalShift
	top, bottom := c.Y-h/2, c.Y+h/2
	stemL, stemR := lx-stemW/2, lx+stemW/2

	bowl := Crescent(
		assetgen.Pt(stemR, top+bowlH/2),
		Radii{X: extent, Y: bowlH / 2},
		Radii{X: extent - thick, Y: bowlH/2 - thick},
		lp.ArcStart, lp.ArcEnd, p.ArcSamples,
	)

	accent, glow := accentRects(stemL, stemR, bottom, content*p.AccentHeight, content*p.AccentGlowPad)
	return Mark{
		Solids: []*assetgen.Path{
			assetgen.RectPath(assetgen.R(stemL, top, stemR, bottom)),
			assetgen.PolygonPath(bowl),
		},
		Accent:         accent,
		AccentGlow:     glow,
		GradientTop:    top,
		GradientBottom: bottom,
	}
}
