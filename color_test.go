package assetgen

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xffff},
		{"opaque white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"half red", RGBA(255, 0, 0, 128), 0x8080, 0, 0, 0x8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#0C0C18", RGB(12, 12, 24), false},
		{"00d29b", RGB(0, 210, 155), false},
		{"#fff", White, false},
		{"#00B48280", RGBA(0, 180, 130, 128), false},
		{"  #000000  ", Black, false},
		{"", Color{}, true},
		{"#12345", Color{}, true},
		{"#GGGGGG", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{RGB(12, 12, 24), "#0C0C18"},
		{RGBA(0, 230, 170, 60), "#00E6AA3C"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex() = %q, want %q", got, tt.want)
		}
		back, err := ParseHex(tt.want)
		if err != nil || back != tt.c {
			t.Errorf("ParseHex(%q) = %+v, %v; want %+v", tt.want, back, err, tt.c)
		}
	}
}

func TestColorLerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(255, 100, 10)

	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"middle truncates", 0.5, RGB(127, 50, 5)},
		{"clamped below", -1, a},
		{"clamped above", 2, b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestGradientAt(t *testing.T) {
	g := VerticalGradientOf(RGB(225, 225, 250), RGB(0, 210, 155), 100, 200)

	if got := g.At(50); got != RGB(225, 225, 250) {
		t.Errorf("At(50) = %+v, want top color", got)
	}
	if got := g.At(100); got != RGB(225, 225, 250) {
		t.Errorf("At(100) = %+v, want top color", got)
	}
	if got := g.At(200); got != RGB(0, 210, 155) {
		t.Errorf("At(200) = %+v, want bottom color", got)
	}
	if got := g.At(300); got != RGB(0, 210, 155) {
		t.Errorf("At(300) = %+v, want bottom color", got)
	}
	if got, want := g.At(150), RGB(112, 217, 202); got != want {
		t.Errorf("At(150) = %+v, want %+v", got, want)
	}
}

func TestGradientZeroSpan(t *testing.T) {
	g := VerticalGradientOf(White, Black, 10, 10)
	for _, pos := range []float64{0, 10, 20} {
		if got := g.At(pos); got != White {
			t.Errorf("At(%v) = %+v, want From color", pos, got)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(1, 2, 3).WithAlpha(60)
	if c != RGBA(1, 2, 3, 60) {
		t.Errorf("WithAlpha(60) = %+v", c)
	}
}
