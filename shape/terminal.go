package shape

import "github.com/phantom-term/assetgen"

// terminalMark builds a shell prompt: a ">" chevron followed by an
// underscore cursor on the baseline. The cursor doubles as the accent.
func terminalMark(c assetgen.Point, content float64, p Proportions) Mark {
	tp := p.Terminal
	cw := content * tp.ChevronWidth
	ch := content * tp.ChevronHeight
	st := content * tp.Stroke
	gap := content * tp.Gap
	cursorW := content * tp.CursorWidth

	x0 := c.X - (cw+gap+cursorW)/2
	tip := x0 + cw
	top, bottom := c.Y-ch/2, c.Y+ch/2

	chevron := assetgen.PolygonPath([]assetgen.Point{
		{X: x0, Y: top},
		{X: x0 + st, Y: top},
		{X: tip, Y: c.Y},
		{X: x0 + st, Y: bottom},
		{X: x0, Y: bottom},
		{X: tip - st, Y: c.Y},
	})

	cx := tip + gap
	accent, glow := accentRects(cx, cx+cursorW, bottom, content*p.AccentHeight, content*p.AccentGlowPad)

	return Mark{
		Solids:         []*assetgen.Path{chevron, assetgen.RectPath(accent)},
		Accent:         accent,
		AccentGlow:     glow,
		GradientTop:    top,
		GradientBottom: bottom,
	}
}
