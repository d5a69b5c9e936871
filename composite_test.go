package assetgen

import "testing"

func TestPasteWithMask(t *testing.T) {
	content := NewCanvasFilled(20, 20, RGB(0, 210, 155))
	m := NewMask(20, 20)
	m.Fill(RectPath(R(5, 5, 15, 15)))

	out := PasteWithMask(content, m)

	if got := out.At(10, 10); got != RGB(0, 210, 155) {
		t.Errorf("inside = %+v, want content color", got)
	}
	if got := out.Alpha(2, 2); got != 0 {
		t.Errorf("outside alpha = %d, want 0", got)
	}
	if out.Width() != 20 || out.Height() != 20 {
		t.Errorf("size = %dx%d, want 20x20", out.Width(), out.Height())
	}
}

func TestPasteWithPartialMask(t *testing.T) {
	content := NewCanvasFilled(4, 4, White)
	m := NewMask(4, 4)
	m.FillValue(128)

	out := PasteWithMask(content, m)
	if got := out.Alpha(1, 1); got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}
}

func TestPasteWithMaskDoesNotModifyContent(t *testing.T) {
	content := NewCanvasFilled(4, 4, White)
	before := content.Clone()
	PasteWithMask(content, NewMask(4, 4))
	if !content.Equal(before) {
		t.Error("content canvas was modified")
	}
}

func TestComposite(t *testing.T) {
	dst := NewCanvasFilled(10, 10, RGB(12, 12, 24))
	layer := NewCanvas(10, 10)
	FillRect(layer, R(0, 0, 5, 10), White)

	Composite(dst, layer)

	if got := dst.At(2, 5); got != White {
		t.Errorf("covered pixel = %+v, want white", got)
	}
	if got := dst.At(7, 5); got != RGB(12, 12, 24) {
		t.Errorf("transparent layer pixel changed dst to %+v", got)
	}
}

func TestCompositeHalfAlpha(t *testing.T) {
	dst := NewCanvasFilled(2, 2, Black)
	layer := NewCanvasFilled(2, 2, RGBA(255, 255, 255, 128))

	Composite(dst, layer)

	got := dst.At(0, 0)
	if !colorNear(got, RGB(128, 128, 128), 1) || got.A != 255 {
		t.Errorf("half white over black = %+v, want about gray 128", got)
	}
}
