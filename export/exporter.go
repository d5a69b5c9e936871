package export

import (
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/phantom-term/assetgen"
	"github.com/phantom-term/assetgen/compose"
	"github.com/phantom-term/assetgen/internal/cache"
)

// Exporter writes composed masters to disk.
type Exporter struct {
	compression png.CompressionLevel
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithCompression sets the PNG compression level. The default is
// png.DefaultCompression.
func WithCompression(level png.CompressionLevel) Option {
	return func(e *Exporter) {
		e.compression = level
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{compression: png.DefaultCompression}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes master to every target in order and stops at the first
// error. All target formats are checked before anything is written.
func (e *Exporter) Export(master *compose.Result, targets []Target) ([]Artifact, error) {
	for _, t := range targets {
		if !t.Format.valid() {
			return nil, fmt.Errorf("%w: %q (%s)", assetgen.ErrUnsupportedFormat, t.Format, t.Path)
		}
	}

	r := e.newRun(master.Image())
	artifacts := make([]Artifact, 0, len(targets))
	for _, t := range targets {
		files, err := r.export(t)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, Artifact{Target: t, Files: files})
	}
	st := r.rasters.Stats()
	assetgen.Logger().Debug("export finished", "targets", len(targets), "rasters", st.Len, "reused", st.Hits)
	return artifacts, nil
}

// run holds the rasters of one Export call.
type run struct {
	e       *Exporter
	master  *image.NRGBA
	size    int
	rasters *cache.Cache[int, *image.NRGBA]
}

func (e *Exporter) newRun(master image.Image) *run {
	m := imaging.Clone(master)
	return &run{
		e:       e,
		master:  m,
		size:    m.Bounds().Dx(),
		rasters: cache.New[int, *image.NRGBA](0),
	}
}

// raster returns the master downsampled to n px, resizing at most once.
func (r *run) raster(n int) (*image.NRGBA, error) {
	if n == 0 || n == r.size {
		return r.master, nil
	}
	return r.rasters.GetOrCreate(n, func() (*image.NRGBA, error) {
		img, err := Resize(r.master, n)
		if err != nil {
			return nil, err
		}
		assetgen.Logger().Debug("resized", "from", r.size, "to", n)
		return img, nil
	})
}

func (r *run) export(t Target) ([]string, error) {
	switch t.Format {
	case PNG:
		img, err := r.raster(t.Size)
		if err != nil {
			return nil, err
		}
		if err := r.writePNG(t.Path, img); err != nil {
			return nil, err
		}
		return []string{t.Path}, nil
	case Iconset:
		return r.iconset(t.Path)
	case ICNS:
		return r.icns(t.Path)
	case ICO:
		return r.ico(t.Path)
	case XCAssets:
		return r.catalog(t)
	}
	return nil, fmt.Errorf("%w: %q", assetgen.ErrUnsupportedFormat, t.Format)
}
