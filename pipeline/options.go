package pipeline

import (
	"image/png"
	"io"

	"github.com/phantom-term/assetgen/compose"
	"github.com/phantom-term/assetgen/dmg"
	"github.com/phantom-term/assetgen/export"
	"github.com/phantom-term/assetgen/shape"
)

// Option configures a Pipeline.
type Option func(*options)

type options struct {
	root        string
	size        int
	renderScale int
	mark        shape.MarkKind
	palette     compose.Palette
	proportions shape.Proportions
	layout      Layout
	dmgLayout   dmg.Layout
	reporter    io.Writer
	icon        bool
	dmg         bool
	retina      bool
	compression png.CompressionLevel
	catalogSize int
}

func defaultOptions() options {
	return options{
		root:        ".",
		size:        1024,
		renderScale: 3,
		mark:        shape.Letter,
		palette:     compose.DefaultPalette(),
		proportions: shape.DefaultProportions(),
		layout:      DefaultLayout(),
		dmgLayout:   dmg.DefaultLayout(),
		reporter:    io.Discard,
		icon:        true,
		dmg:         true,
		retina:      true,
		compression: png.DefaultCompression,
		catalogSize: export.IOSUniversalSize,
	}
}

// WithRoot sets the directory relative layout paths are resolved against.
func WithRoot(dir string) Option {
	return func(o *options) {
		o.root = dir
	}
}

// WithSize sets the edge length of the master icon in pixels.
func WithSize(n int) Option {
	return func(o *options) {
		o.size = n
	}
}

// WithRenderScale renders the icon at n times its size and downsamples it,
// which smooths edges beyond what per-pixel anti-aliasing gives.
func WithRenderScale(n int) Option {
	return func(o *options) {
		o.renderScale = n
	}
}

// WithMark selects the glyph drawn on the tile.
func WithMark(k shape.MarkKind) Option {
	return func(o *options) {
		o.mark = k
	}
}

// WithPalette sets the icon colors.
func WithPalette(p compose.Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithProportions sets the icon geometry.
func WithProportions(p shape.Proportions) Option {
	return func(o *options) {
		o.proportions = p
	}
}

// WithLayout sets the output paths.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithDMGLayout sets the disk image window geometry.
func WithDMGLayout(l dmg.Layout) Option {
	return func(o *options) {
		o.dmgLayout = l
	}
}

// WithReporter sets where one confirmation line per artifact is printed.
// The default discards them.
func WithReporter(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.reporter = w
	}
}

// WithIcon enables or disables the icon stages.
func WithIcon(enabled bool) Option {
	return func(o *options) {
		o.icon = enabled
	}
}

// WithDMG enables or disables the disk image background.
func WithDMG(enabled bool) Option {
	return func(o *options) {
		o.dmg = enabled
	}
}

// WithRetina enables or disables the @2x disk image background.
func WithRetina(enabled bool) Option {
	return func(o *options) {
		o.retina = enabled
	}
}

// WithCompression sets the PNG compression level of every raster written.
func WithCompression(level png.CompressionLevel) Option {
	return func(o *options) {
		o.compression = level
	}
}

// WithCatalogSize sets the pixel size of the universal raster in the iOS
// asset catalog. The default is export.IOSUniversalSize; the master must
// be at least this large.
func WithCatalogSize(n int) Option {
	return func(o *options) {
		o.catalogSize = n
	}
}
