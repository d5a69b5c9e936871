package compose

import "github.com/phantom-term/assetgen"

// Palette holds the colors and layer opacities of the icon.
type Palette struct {
	Background   assetgen.Color
	LetterTop    assetgen.Color
	LetterBottom assetgen.Color
	Glow         assetgen.Color
	GlowBright   assetgen.Color

	TopLightAlpha   uint8 // at the top edge of the tile, fading to zero
	AmbientAlpha    uint8
	EdgeGlowAlpha   uint8
	FillAlpha       uint8
	AccentGlowAlpha uint8
}

// DefaultPalette returns the brand palette: a deep charcoal-blue tile with
// a near-white to teal mark.
func DefaultPalette() Palette {
	return Palette{
		Background:      assetgen.RGB(12, 12, 24),
		LetterTop:       assetgen.RGB(225, 225, 250),
		LetterBottom:    assetgen.RGB(0, 210, 155),
		Glow:            assetgen.RGB(0, 180, 130),
		GlowBright:      assetgen.RGB(0, 230, 170),
		TopLightAlpha:   20,
		AmbientAlpha:    60,
		EdgeGlowAlpha:   90,
		FillAlpha:       245,
		AccentGlowAlpha: 60,
	}
}
