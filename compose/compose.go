package compose

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"

	"github.com/phantom-term/assetgen"
	"github.com/phantom-term/assetgen/internal/parallel"
	"github.com/phantom-term/assetgen/shape"
)

// ErrLayerOrder is returned when a layer is merged twice or out of order.
var ErrLayerOrder = errors.New("compose: layer merged out of order")

// Layer names one visual element of the icon.
type Layer string

// Layers, bottom to top.
const (
	Background  Layer = "background"
	TopLight    Layer = "top-light"
	AmbientGlow Layer = "ambient-glow"
	ShapeGlow   Layer = "shape-glow"
	ShapeFill   Layer = "shape-fill"
	Accent      Layer = "accent"
	AccentGlow  Layer = "accent-glow"
)

// Order is the z-order in which layers are merged. Later layers occlude
// earlier ones.
var Order = []Layer{Background, TopLight, AmbientGlow, ShapeGlow, ShapeFill, Accent, AccentGlow}

// Result is a fully merged master raster.
type Result struct {
	Canvas *assetgen.Canvas
	Layers []Layer // merge order
}

// Size returns the edge length of the master raster.
func (r *Result) Size() int {
	return r.Canvas.Width()
}

// Image returns the master raster.
func (r *Result) Image() image.Image {
	return r.Canvas.Image()
}

// Option configures Compose.
type Option func(*options)

type options struct {
	outputSize int
	workers    int
}

// WithWorkers sets how many layers are rendered at once. Zero, the
// default, uses GOMAXPROCS; 1 renders them one after another. Layers are
// always merged in Order.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithOutputSize downsamples the master to n×n pixels with a Lanczos filter
// once all layers are merged. The descriptor is usually built at a multiple
// of n so that the downsample acts as supersampling.
func WithOutputSize(n int) Option {
	return func(o *options) {
		o.outputSize = n
	}
}

// Compose renders every layer of d in Order and merges it into a new
// transparent master canvas of d.Size×d.Size pixels.
func Compose(d *shape.Descriptor, p Palette, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.outputSize < 0 || o.outputSize > d.Size {
		return nil, assetgen.Geometryf("output size %d outside (0, %d]", o.outputSize, d.Size)
	}

	f := newFrame(d, p)
	layers := make([]*assetgen.Canvas, len(Order))
	elapsed := make([]time.Duration, len(Order))
	tasks := make([]func(), len(Order))
	for i, l := range Order {
		tasks[i] = func() {
			start := time.Now()
			layers[i] = f.render(l)
			elapsed[i] = time.Since(start)
		}
	}
	pool := parallel.NewPool(o.workers)
	pool.Run(tasks)
	pool.Close()

	m := &merger{master: assetgen.NewCanvas(d.Size, d.Size)}
	for i, l := range Order {
		if err := m.merge(l, layers[i]); err != nil {
			return nil, err
		}
		assetgen.Logger().Debug("layer merged", "layer", string(l), "size", d.Size, "render", elapsed[i])
	}

	res := &Result{Canvas: m.master, Layers: m.merged}
	if o.outputSize > 0 && o.outputSize != d.Size {
		res.Canvas = assetgen.CanvasFrom(imaging.Resize(res.Canvas.Image(), o.outputSize, o.outputSize, imaging.Lanczos))
	}
	return res, nil
}

// merger owns the master canvas and enforces the merge order.
type merger struct {
	master *assetgen.Canvas
	merged []Layer
}

func (m *merger) merge(l Layer, layer *assetgen.Canvas) error {
	next := len(m.merged)
	if next >= len(Order) || Order[next] != l {
		return fmt.Errorf("%w: %s after %v", ErrLayerOrder, l, m.merged)
	}
	assetgen.Composite(m.master, layer)
	m.merged = append(m.merged, l)
	return nil
}
