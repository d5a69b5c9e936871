// Package dmg draws the background of the macOS disk image window: a light
// backdrop with an arrow pointing from the app icon to the Applications
// folder.
package dmg

import (
	"github.com/phantom-term/assetgen"
)

// Layout describes the installer window in points. Icon positions must
// match the Finder window layout of the disk image.
type Layout struct {
	Width, Height int

	AppX     float64 // centre of the app icon
	AppsX    float64 // centre of the Applications link
	IconY    float64 // centre of both icons
	IconSize float64

	ArrowGap       float64 // clearance between an icon centre and the arrow
	ArrowRaise     float64 // arrow offset above the icon centre line
	ArrowThickness float64 // half the shaft height
	HeadSize       float64

	Background assetgen.Color
	Arrow      assetgen.Color
	Folder     assetgen.Color

	// FolderGlyph draws a faint folder outline behind the Applications slot.
	FolderGlyph bool
}

// DefaultLayout returns the 540×300 window used by the release disk image.
func DefaultLayout() Layout {
	return Layout{
		Width:          540,
		Height:         300,
		AppX:           140,
		AppsX:          400,
		IconY:          150,
		IconSize:       80,
		ArrowGap:       55,
		ArrowRaise:     10,
		ArrowThickness: 3,
		HeadSize:       16,
		Background:     assetgen.RGB(245, 245, 247),
		Arrow:          assetgen.RGB(195, 195, 200),
		Folder:         assetgen.RGB(232, 232, 237),
		FolderGlyph:    true,
	}
}

// Validate reports degenerate layouts.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return assetgen.Geometryf("window %dx%d", l.Width, l.Height)
	}
	if l.ArrowThickness < 0 || l.HeadSize < 0 || l.IconSize < 0 {
		return assetgen.Geometryf("negative arrow or icon size")
	}
	x1, x2 := l.AppX+l.ArrowGap, l.AppsX-l.ArrowGap
	if x2-l.HeadSize <= x1 {
		return assetgen.Geometryf("arrow from %g to %g is shorter than its head %g", x1, x2, l.HeadSize)
	}
	return nil
}

// Render draws the background at the given scale: 1 for the regular image,
// 2 for the Retina variant.
func Render(l Layout, scale int) (*assetgen.Canvas, error) {
	if scale <= 0 {
		return nil, assetgen.Geometryf("scale %d", scale)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	s := float64(scale)

	c := assetgen.NewCanvasFilled(l.Width*scale, l.Height*scale, l.Background)
	if l.FolderGlyph {
		drawFolder(c, l, s)
	}
	drawArrow(c, l, s)

	assetgen.Logger().Debug("dmg background rendered", "width", c.Width(), "height", c.Height(), "scale", scale)
	return c, nil
}

func drawArrow(c *assetgen.Canvas, l Layout, s float64) {
	y := (l.IconY - l.ArrowRaise) * s
	x1 := (l.AppX + l.ArrowGap) * s
	x2 := (l.AppsX - l.ArrowGap) * s
	t, head := l.ArrowThickness*s, l.HeadSize*s

	assetgen.FillRect(c, assetgen.R(x1, y-t, x2-head, y+t), l.Arrow)
	assetgen.FillPolygon(c, []assetgen.Point{
		{X: x2 - head, Y: y - head},
		{X: x2, Y: y},
		{X: x2 - head, Y: y + head},
	}, l.Arrow)
}

// drawFolder draws a tabbed folder silhouette centred on the Applications
// icon.
func drawFolder(c *assetgen.Canvas, l Layout, s float64) {
	w, h := l.IconSize*0.8*s, l.IconSize*0.6*s
	cx, cy := l.AppsX*s, l.IconY*s
	r := l.IconSize * 0.06 * s

	body := assetgen.R(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
	tab := assetgen.R(body.Min.X, body.Min.Y-h*0.15, body.Min.X+w*0.4, body.Min.Y+r*2)
	assetgen.FillRoundedRect(c, tab, r, l.Folder)
	assetgen.FillRoundedRect(c, body, r, l.Folder)
}
