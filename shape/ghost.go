package shape

import "github.com/phantom-term/assetgen"

// ghostMark builds the mascot: a semicircular dome over straight sides
// ending in a row of rounded lobes, with two elliptical eye holes and the
// cursor block as its mouth.
func ghostMark(c assetgen.Point, content float64, p Proportions) Mark {
	gp := p.Ghost
	w := content * gp.Width
	h := content * gp.Height
	r := w / 2
	top, bottom := c.Y-h/2, c.Y+h/2

	lobeR := w / float64(2*gp.Scallops)
	hemY := bottom - lobeR
	lobeSamples := max(p.ArcSamples/gp.Scallops, 2)

	// Dome from the left side over the top to the right side.
	body := Arc(assetgen.Pt(c.X, top+r), Radii{X: r, Y: r}, 180, 360, p.ArcSamples)
	// Lobes from right to left, each bulging downwards.
	for i := 0; i < gp.Scallops; i++ {
		lx := c.X + r - lobeR*float64(2*i+1)
		body = append(body, Arc(assetgen.Pt(lx, hemY), Radii{X: lobeR, Y: lobeR}, 0, 180, lobeSamples)...)
	}

	eyeY := c.Y + content*gp.EyeY
	eyeRx, eyeRy := content*gp.EyeRadiusX, content*gp.EyeRadiusY
	var eyes []*assetgen.Path
	for _, dx := range []float64{-content * gp.EyeOffset, content * gp.EyeOffset} {
		ex := c.X + dx
		eyes = append(eyes, assetgen.EllipsePath(assetgen.R(ex-eyeRx, eyeY-eyeRy, ex+eyeRx, eyeY+eyeRy)))
	}

	mouthW := content * gp.MouthWidth
	mouthH := content * p.AccentHeight
	mouthBottom := c.Y + content*gp.MouthOffset + mouthH
	accent, glow := accentRects(c.X-mouthW/2, c.X+mouthW/2, mouthBottom, mouthH, content*p.AccentGlowPad)

	return Mark{
		Solids:         []*assetgen.Path{assetgen.PolygonPath(body)},
		Holes:          eyes,
		Accent:         accent,
		AccentGlow:     glow,
		GradientTop:    top,
		GradientBottom: bottom,
	}
}
