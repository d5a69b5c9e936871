package shape

import (
	"fmt"
	"strings"

	"github.com/phantom-term/assetgen"
)

// MarkKind selects the glyph drawn on the icon tile.
type MarkKind string

// Available marks.
const (
	Letter   MarkKind = "letter"
	Ghost    MarkKind = "ghost"
	Terminal MarkKind = "terminal"
)

// ParseMarkKind parses a mark name, ignoring case.
func ParseMarkKind(s string) (MarkKind, error) {
	switch k := MarkKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Letter, Ghost, Terminal:
		return k, nil
	default:
		return "", fmt.Errorf("shape: unknown mark %q", s)
	}
}

// Proportions holds the tunable constants of the icon geometry.
type Proportions struct {
	Padding float64 // tile inset, fraction of canvas size
	Corner  float64 // tile corner radius, fraction of canvas size

	AmbientRadius float64 // radius of the glow behind the mark
	AmbientBlur   float64 // sigma of that glow

	EdgeGlowBlur float64 // sigma of the glow hugging the mark

	AccentHeight   float64 // cursor block height
	AccentGlowPad  float64 // cursor glow rectangle overhang
	AccentGlowBlur float64 // sigma of the cursor glow

	// ArcSamples is the number of angular steps per arc.
	ArcSamples int

	Letter   LetterProportions
	Ghost    GhostProportions
	Terminal TerminalProportions
}

// LetterProportions shape the P letterform: a stem and an open bowl whose
// arc stops short of the stem, leaving a gap.
type LetterProportions struct {
	Height        float64
	StemWidth     float64
	BowlExtent    float64 // reach of the bowl to the right of the stem
	BowlHeight    float64 // fraction of the letter height
	BowlThickness float64
	OpticalShift  float64 // leftward shift balancing the bowl overhang

	ArcStart float64 // degrees
	ArcEnd   float64 // degrees
}

// GhostProportions shape the ghost mascot.
type GhostProportions struct {
	Width       float64
	Height      float64 // dome top to hem
	Scallops    int     // number of rounded hem lobes
	EyeOffset   float64 // horizontal distance of each eye from the centre
	EyeY        float64 // vertical eye position relative to the centre
	EyeRadiusX  float64
	EyeRadiusY  float64
	MouthWidth  float64
	MouthOffset float64 // vertical cursor position relative to the centre
}

// TerminalProportions shape the prompt glyph: a chevron and an underscore
// cursor.
type TerminalProportions struct {
	ChevronWidth  float64
	ChevronHeight float64
	Stroke        float64 // horizontal chevron thickness
	CursorWidth   float64
	Gap           float64 // space between chevron tip and cursor
}

// DefaultProportions returns the proportions of the shipped icon, tuned at
// 1024 px with a 28 px inset and a 220 px corner radius.
func DefaultProportions() Proportions {
	return Proportions{
		Padding:        28.0 / 1024,
		Corner:         220.0 / 1024,
		AmbientRadius:  0.18,
		AmbientBlur:    0.16,
		EdgeGlowBlur:   0.018,
		AccentHeight:   0.032,
		AccentGlowPad:  0.01,
		AccentGlowBlur: 0.015,
		ArcSamples:     50,
		Letter: LetterProportions{
			Height:        0.54,
			StemWidth:     0.115,
			BowlExtent:    0.27,
			BowlHeight:    0.54,
			BowlThickness: 0.095,
			OpticalShift:  0.045,
			ArcStart:      -90,
			ArcEnd:        68,
		},
		Ghost: GhostProportions{
			Width:       0.46,
			Height:      0.54,
			Scallops:    3,
			EyeOffset:   0.09,
			EyeY:        -0.06,
			EyeRadiusX:  0.045,
			EyeRadiusY:  0.06,
			MouthWidth:  0.12,
			MouthOffset: 0.08,
		},
		Terminal: TerminalProportions{
			ChevronWidth:  0.2,
			ChevronHeight: 0.34,
			Stroke:        0.1,
			CursorWidth:   0.2,
			Gap:           0.06,
		},
	}
}

// Validate checks that every length is non-negative and that nested radii
// fit inside their outer radii. It does not depend on the canvas size.
func (p Proportions) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"padding", p.Padding},
		{"corner", p.Corner},
		{"ambient radius", p.AmbientRadius},
		{"ambient blur", p.AmbientBlur},
		{"edge glow blur", p.EdgeGlowBlur},
		{"accent height", p.AccentHeight},
		{"accent glow pad", p.AccentGlowPad},
		{"accent glow blur", p.AccentGlowBlur},
		{"letter height", p.Letter.Height},
		{"stem width", p.Letter.StemWidth},
		{"bowl extent", p.Letter.BowlExtent},
		{"bowl height", p.Letter.BowlHeight},
		{"bowl thickness", p.Letter.BowlThickness},
		{"ghost width", p.Ghost.Width},
		{"ghost height", p.Ghost.Height},
		{"eye radius x", p.Ghost.EyeRadiusX},
		{"eye radius y", p.Ghost.EyeRadiusY},
		{"mouth width", p.Ghost.MouthWidth},
		{"chevron width", p.Terminal.ChevronWidth},
		{"chevron height", p.Terminal.ChevronHeight},
		{"chevron stroke", p.Terminal.Stroke},
		{"cursor width", p.Terminal.CursorWidth},
		{"cursor gap", p.Terminal.Gap},
	}
	for _, f := range fields {
		if f.v < 0 {
			return assetgen.Geometryf("%s is negative (%g)", f.name, f.v)
		}
	}

	if p.Padding >= 0.5 {
		return assetgen.Geometryf("padding %g leaves no content", p.Padding)
	}
	if p.ArcSamples < 2 {
		return assetgen.Geometryf("arc samples %d, need at least 2", p.ArcSamples)
	}

	l := p.Letter
	if l.BowlThickness > l.BowlExtent {
		return assetgen.Geometryf("bowl thickness %g exceeds bowl extent %g", l.BowlThickness, l.BowlExtent)
	}
	if l.BowlThickness > l.Height*l.BowlHeight/2 {
		return assetgen.Geometryf("bowl thickness %g exceeds bowl radius %g", l.BowlThickness, l.Height*l.BowlHeight/2)
	}
	if l.ArcEnd <= l.ArcStart {
		return assetgen.Geometryf("arc end %g must follow arc start %g", l.ArcEnd, l.ArcStart)
	}

	g := p.Ghost
	if g.Scallops < 1 {
		return assetgen.Geometryf("ghost needs at least one scallop, got %d", g.Scallops)
	}
	if minH := g.Width/2 + g.Width/float64(2*g.Scallops); g.Height < minH {
		return assetgen.Geometryf("ghost height %g is shorter than dome and hem %g", g.Height, minH)
	}
	if g.EyeRadiusX > g.EyeOffset {
		return assetgen.Geometryf("eyes overlap: radius %g, offset %g", g.EyeRadiusX, g.EyeOffset)
	}

	if p.Terminal.Stroke > p.Terminal.ChevronWidth {
		return assetgen.Geometryf("chevron stroke %g exceeds its width %g", p.Terminal.Stroke, p.Terminal.ChevronWidth)
	}
	return nil
}
