package dmg

import (
	"errors"
	"testing"

	"github.com/phantom-term/assetgen"
)

func TestRender(t *testing.T) {
	l := DefaultLayout()
	c, err := Render(l, 1)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if c.Width() != 540 || c.Height() != 300 {
		t.Fatalf("size = %dx%d, want 540x300", c.Width(), c.Height())
	}

	tests := []struct {
		name string
		x, y int
		want assetgen.Color
	}{
		{"backdrop", 10, 10, l.Background},
		{"backdrop below arrow", 250, 160, l.Background},
		{"shaft", 250, 140, l.Arrow},
		{"shaft start", 196, 138, l.Arrow},
		{"head", 340, 140, l.Arrow},
		{"above head", 340, 130, l.Background},
		{"past the tip", 347, 140, l.Background},
		{"folder glyph", 400, 150, l.Folder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderRetina(t *testing.T) {
	l := DefaultLayout()
	c, err := Render(l, 2)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != 1080 || c.Height() != 600 {
		t.Fatalf("size = %dx%d, want 1080x600", c.Width(), c.Height())
	}
	if got := c.At(500, 280); got != l.Arrow {
		t.Errorf("shaft pixel = %+v, want %+v", got, l.Arrow)
	}
	if got := c.At(500, 270); got != l.Background {
		t.Errorf("pixel above shaft = %+v, want backdrop", got)
	}
}

func TestRenderWithoutFolder(t *testing.T) {
	l := DefaultLayout()
	l.FolderGlyph = false
	c, err := Render(l, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.At(400, 150); got != l.Background {
		t.Errorf("At(400, 150) = %+v, want backdrop", got)
	}
}

func TestRenderInvalid(t *testing.T) {
	tests := []struct {
		name   string
		scale  int
		mutate func(*Layout)
	}{
		{"zero scale", 0, nil},
		{"zero width", 1, func(l *Layout) { l.Width = 0 }},
		{"negative head", 1, func(l *Layout) { l.HeadSize = -1 }},
		{"icons too close", 1, func(l *Layout) { l.AppsX = l.AppX + 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			if tt.mutate != nil {
				tt.mutate(&l)
			}
			if _, err := Render(l, tt.scale); !errors.Is(err, assetgen.ErrInvalidGeometry) {
				t.Errorf("Render() error = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}
