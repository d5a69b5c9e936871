package pipeline

import (
	"fmt"
	"time"

	"github.com/phantom-term/assetgen"
	"github.com/phantom-term/assetgen/compose"
	"github.com/phantom-term/assetgen/dmg"
	"github.com/phantom-term/assetgen/export"
	"github.com/phantom-term/assetgen/shape"
)

// Pipeline generates every asset of a project.
type Pipeline struct {
	o        options
	layout   Layout
	exporter *export.Exporter
}

// Report lists what a run produced.
type Report struct {
	Artifacts []export.Artifact
	Copies    []string // copies of exported bundles
	DMG       []string // disk image backgrounds
}

// Files returns every file written, in write order.
func (r *Report) Files() []string {
	var files []string
	for _, a := range r.Artifacts {
		files = append(files, a.Files...)
	}
	files = append(files, r.Copies...)
	return append(files, r.DMG...)
}

// New creates a Pipeline. Settings are validated when a stage runs.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		o:        o,
		layout:   o.layout.resolve(o.root),
		exporter: export.New(export.WithCompression(o.compression)),
	}
}

// Shape builds the descriptor at the render resolution.
func (p *Pipeline) Shape() (*shape.Descriptor, error) {
	if p.o.renderScale < 1 {
		return nil, assetgen.Geometryf("render scale %d", p.o.renderScale)
	}
	if p.o.size <= 0 {
		return nil, assetgen.Geometryf("icon size %d", p.o.size)
	}
	d, err := shape.Build(p.o.size*p.o.renderScale, p.o.proportions, p.o.mark)
	if err != nil {
		return nil, fmt.Errorf("build %s shape: %w", p.o.mark, err)
	}
	assetgen.Logger().Info("shape built", "mark", p.o.mark, "size", d.Size)
	return d, nil
}

// Composite merges every layer of d and downsamples the result to the
// icon size.
func (p *Pipeline) Composite(d *shape.Descriptor) (*compose.Result, error) {
	start := time.Now()
	master, err := compose.Compose(d, p.o.palette, compose.WithOutputSize(p.o.size))
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	assetgen.Logger().Info("master composed", "size", master.Size(), "elapsed", time.Since(start))
	return master, nil
}

// Export writes master to every icon path of the layout and copies the
// ICNS bundle into the macOS app resources.
func (p *Pipeline) Export(master *compose.Result) (*Report, error) {
	l := p.layout
	var targets []export.Target
	add := func(path string, f export.Format) {
		if path == "" {
			return
		}
		t := export.Target{Path: path, Format: f}
		if f == export.XCAssets {
			t.Platform = export.IOS
			t.Size = p.o.catalogSize
		}
		targets = append(targets, t)
	}
	add(l.MasterPNG, export.PNG)
	add(l.Iconset, export.Iconset)
	add(l.ICNS, export.ICNS)
	add(l.ICO, export.ICO)
	add(l.Catalog, export.XCAssets)

	arts, err := p.exporter.Export(master, targets)
	rep := &Report{Artifacts: arts}
	for _, a := range arts {
		p.reportArtifact(a)
		if a.Target.Format != export.ICNS || l.MacOSIcon == "" {
			continue
		}
		if err := export.Copy(a.Target.Path, l.MacOSIcon); err != nil {
			return rep, err
		}
		rep.Copies = append(rep.Copies, l.MacOSIcon)
		p.reportf("Copied to: %s", l.MacOSIcon)
	}
	if err != nil {
		return rep, err
	}
	assetgen.Logger().Info("export finished", "targets", len(targets))
	return rep, nil
}

func (p *Pipeline) reportArtifact(a export.Artifact) {
	path := a.Target.Path
	switch a.Target.Format {
	case export.PNG:
		p.reportf("Icon saved: %s", path)
	case export.Iconset:
		p.reportf("Iconset created: %s", path)
	case export.ICNS:
		p.reportf("ICNS created: %s", path)
	case export.ICO:
		p.reportf("ICO created: %s", path)
	case export.XCAssets:
		p.reportf("iOS AppIcon set created: %s", export.AppIconSet(path))
		p.reportf("iOS Assets.xcassets created: %s", path)
	}
}

// RenderDMG draws the disk image background and, when enabled, its Retina
// variant.
func (p *Pipeline) RenderDMG() ([]string, error) {
	outputs := []struct {
		scale int
		path  string
	}{{1, p.layout.DMGBackground}}
	if p.o.retina {
		outputs = append(outputs, struct {
			scale int
			path  string
		}{2, p.layout.DMGBackgroundRetina})
	}

	var files []string
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		c, err := dmg.Render(p.o.dmgLayout, out.scale)
		if err != nil {
			return files, fmt.Errorf("dmg background: %w", err)
		}
		if err := p.exporter.WritePNG(out.path, c.Image()); err != nil {
			return files, err
		}
		files = append(files, out.path)
		p.reportf("Background saved: %s", out.path)
	}
	return files, nil
}

// Run executes every enabled stage in order and stops at the first error.
func (p *Pipeline) Run() (*Report, error) {
	rep := &Report{}
	if p.o.icon {
		d, err := p.Shape()
		if err != nil {
			return rep, err
		}
		master, err := p.Composite(d)
		if err != nil {
			return rep, err
		}
		if rep, err = p.Export(master); err != nil {
			return rep, err
		}
	}
	if p.o.dmg {
		files, err := p.RenderDMG()
		rep.DMG = files
		if err != nil {
			return rep, err
		}
	}

	if p.o.icon {
		p.reportf("\nDone! Generated icons for macOS and iOS.")
	} else {
		p.reportf("\nDone!")
	}
	return rep, nil
}

func (p *Pipeline) reportf(format string, args ...any) {
	fmt.Fprintf(p.o.reporter, format+"\n", args...)
}
