package export

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/phantom-term/assetgen"
)

// Resize downsamples src to n×n pixels with a Lanczos filter. Asking for
// the source size returns an identical copy, so resizing twice to the same
// size is a no-op. Upscaling is refused.
func Resize(src image.Image, n int) (*image.NRGBA, error) {
	b := src.Bounds()
	if n <= 0 {
		return nil, assetgen.Geometryf("resize to %d px", n)
	}
	if n > b.Dx() || n > b.Dy() {
		return nil, assetgen.Geometryf("resize %dx%d up to %d px", b.Dx(), b.Dy(), n)
	}
	if n == b.Dx() && n == b.Dy() {
		return imaging.Clone(src), nil
	}
	return imaging.Resize(src, n, n, imaging.Lanczos), nil
}
