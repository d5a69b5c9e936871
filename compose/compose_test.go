package compose

import (
	"errors"
	"slices"
	"testing"

	"github.com/phantom-term/assetgen"
	"github.com/phantom-term/assetgen/shape"
)

func build(t *testing.T, size int, kind shape.MarkKind) *shape.Descriptor {
	t.Helper()
	d, err := shape.Build(size, shape.DefaultProportions(), kind)
	if err != nil {
		t.Fatalf("shape.Build() error = %v", err)
	}
	return d
}

func compose(t *testing.T, d *shape.Descriptor, opts ...Option) *Result {
	t.Helper()
	res, err := Compose(d, DefaultPalette(), opts...)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	return res
}

func near(a, b, tol uint8) bool {
	if a > b {
		return a-b <= tol
	}
	return b-a <= tol
}

func TestComposeLayerOrder(t *testing.T) {
	res := compose(t, build(t, 64, shape.Letter))

	if !slices.Equal(res.Layers, Order) {
		t.Errorf("Layers = %v, want %v", res.Layers, Order)
	}
	want := []Layer{Background, TopLight, AmbientGlow, ShapeGlow, ShapeFill, Accent, AccentGlow}
	if !slices.Equal(Order, want) {
		t.Errorf("Order = %v, want %v", Order, want)
	}
}

func TestMergerRejectsOutOfOrder(t *testing.T) {
	layer := assetgen.NewCanvas(4, 4)

	tests := []struct {
		name   string
		layers []Layer
	}{
		{"skip background", []Layer{TopLight}},
		{"merge twice", []Layer{Background, Background}},
		{"swap accent and glow", []Layer{Background, TopLight, AmbientGlow, ShapeGlow, ShapeFill, AccentGlow}},
		{"past the end", append(slices.Clone(Order), Accent)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &merger{master: assetgen.NewCanvas(4, 4)}
			var err error
			for _, l := range tt.layers {
				if err = m.merge(l, layer); err != nil {
					break
				}
			}
			if !errors.Is(err, ErrLayerOrder) {
				t.Errorf("merge error = %v, want ErrLayerOrder", err)
			}
		})
	}
}

func TestComposeLetterPixels(t *testing.T) {
	res := compose(t, build(t, 256, shape.Letter))
	c := res.Canvas

	if c.Width() != 256 || c.Height() != 256 {
		t.Fatalf("size = %dx%d, want 256x256", c.Width(), c.Height())
	}

	t.Run("outside tile is transparent", func(t *testing.T) {
		for _, p := range [][2]int{{0, 0}, {2, 2}, {128, 2}, {253, 128}, {255, 255}} {
			if a := c.Alpha(p[0], p[1]); a != 0 {
				t.Errorf("alpha at %v = %d, want 0", p, a)
			}
		}
	})

	t.Run("plain tile is dark", func(t *testing.T) {
		got := c.At(20, 200)
		if got.A != 255 || got.R > 60 || got.G > 60 || got.B > 60 {
			t.Errorf("tile pixel = %+v, want an opaque dark color", got)
		}
	})

	t.Run("stem is filled", func(t *testing.T) {
		got := c.At(117, 100)
		if got.A != 255 || got.R < 100 || got.G < 150 {
			t.Errorf("stem pixel = %+v, want a bright gradient color", got)
		}
	})

	t.Run("cursor is bright", func(t *testing.T) {
		got := c.At(117, 190)
		want := DefaultPalette().GlowBright
		if got.A != 255 || !near(got.R, want.R, 2) || !near(got.G, want.G, 2) || !near(got.B, want.B, 2) {
			t.Errorf("cursor pixel = %+v, want about %+v", got, want)
		}
	})
}

func TestComposeGhostEyes(t *testing.T) {
	res := compose(t, build(t, 256, shape.Ghost))
	c := res.Canvas

	eye := c.At(106, 113)
	body := c.At(128, 113)
	if eye.R >= 40 {
		t.Errorf("eye pixel = %+v, want the dark tile showing through", eye)
	}
	if body.R <= 100 {
		t.Errorf("body pixel = %+v, want the light fill", body)
	}
}

func TestComposeOutputSize(t *testing.T) {
	res := compose(t, build(t, 96, shape.Terminal), WithOutputSize(32))
	if res.Size() != 32 {
		t.Errorf("Size() = %d, want 32", res.Size())
	}
	if b := res.Image().Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("Image().Bounds() = %v", b)
	}
	if !slices.Equal(res.Layers, Order) {
		t.Errorf("Layers = %v", res.Layers)
	}
}

func TestComposeInvalidOutputSize(t *testing.T) {
	d := build(t, 64, shape.Letter)
	for _, n := range []int{-1, 65} {
		_, err := Compose(d, DefaultPalette(), WithOutputSize(n))
		if !errors.Is(err, assetgen.ErrInvalidGeometry) {
			t.Errorf("WithOutputSize(%d): error = %v, want ErrInvalidGeometry", n, err)
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	d := build(t, 128, shape.Letter)
	a := compose(t, d, WithOutputSize(64))
	b := compose(t, d, WithOutputSize(64))
	if !a.Canvas.Equal(b.Canvas) {
		t.Error("two renders of the same descriptor differ")
	}
}

func TestComposeWorkersAgree(t *testing.T) {
	d := build(t, 96, shape.Ghost)
	seq := compose(t, d, WithWorkers(1))
	for _, n := range []int{0, 2, 7} {
		if got := compose(t, d, WithWorkers(n)); !got.Canvas.Equal(seq.Canvas) {
			t.Errorf("WithWorkers(%d) differs from a sequential render", n)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		name string
		c    assetgen.Color
		want string
	}{
		{"background", p.Background, "#0C0C18"},
		{"letter bottom", p.LetterBottom, "#00D29B"},
		{"glow", p.Glow, "#00B482"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.name, got, tt.want)
		}
	}
}
