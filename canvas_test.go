package assetgen

import (
	"image"
	"image/color"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(64, 32)
	if c.Width() != 64 || c.Height() != 32 {
		t.Fatalf("size = %dx%d, want 64x32", c.Width(), c.Height())
	}
	if c.Bounds() != image.Rect(0, 0, 64, 32) {
		t.Errorf("Bounds() = %v", c.Bounds())
	}
	if got := c.At(10, 10); got != Transparent {
		t.Errorf("At(10, 10) = %+v, want transparent", got)
	}
}

func TestNewCanvasNegative(t *testing.T) {
	c := NewCanvas(-1, -1)
	if !c.Bounds().Empty() {
		t.Errorf("Bounds() = %v, want empty", c.Bounds())
	}
	FillRect(c, R(0, 0, 10, 10), White) // must not panic
}

func TestNewCanvasFilled(t *testing.T) {
	bg := RGB(12, 12, 24)
	c := NewCanvasFilled(8, 8, bg)
	for _, p := range []image.Point{{0, 0}, {7, 7}, {3, 5}} {
		if got := c.At(p.X, p.Y); got != bg {
			t.Errorf("At(%d, %d) = %+v, want %+v", p.X, p.Y, got, bg)
		}
	}
}

func TestCanvasAtOutside(t *testing.T) {
	c := NewCanvasFilled(4, 4, White)
	if got := c.At(4, 0); got != Transparent {
		t.Errorf("At(4, 0) = %+v, want transparent", got)
	}
	if got := c.Alpha(-1, 0); got != 0 {
		t.Errorf("Alpha(-1, 0) = %d, want 0", got)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvasFilled(4, 4, White)
	c.Clear(RGBA(255, 0, 0, 128))

	if got := c.Alpha(1, 1); got != 128 {
		t.Errorf("Alpha after Clear = %d, want 128", got)
	}
	if got := c.At(1, 1); got.R != 255 || got.G != 0 {
		t.Errorf("At after Clear = %+v, want red", got)
	}
}

func TestCanvasCloneEqual(t *testing.T) {
	c := NewCanvasFilled(10, 10, RGB(1, 2, 3))
	clone := c.Clone()

	if !c.Equal(clone) {
		t.Fatal("clone should equal original")
	}
	c.Clear(White)
	if c.Equal(clone) {
		t.Error("clone should not share pixels with original")
	}
	if clone.At(5, 5) != RGB(1, 2, 3) {
		t.Errorf("clone At(5, 5) = %+v", clone.At(5, 5))
	}
}

func TestCanvasEqual(t *testing.T) {
	a := NewCanvas(4, 4)
	tests := []struct {
		name  string
		other *Canvas
		want  bool
	}{
		{"nil", nil, false},
		{"different size", NewCanvas(4, 5), false},
		{"same", NewCanvas(4, 4), true},
		{"different pixels", NewCanvasFilled(4, 4, Black), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanvasFrom(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 20, 30))
	src.SetNRGBA(12, 15, color.NRGBA{R: 0, G: 210, B: 155, A: 255})

	c := CanvasFrom(src)
	if c.Width() != 10 || c.Height() != 20 {
		t.Fatalf("size = %dx%d, want 10x20", c.Width(), c.Height())
	}
	if got := c.At(2, 5); got != RGB(0, 210, 155) {
		t.Errorf("At(2, 5) = %+v, want %+v", got, RGB(0, 210, 155))
	}
}
