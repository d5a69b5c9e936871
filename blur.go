package assetgen

import "math"

// blurPasses is the number of box filters used to approximate a Gaussian.
// Three passes keep the error of the approximation within about 3%.
const blurPasses = 3

// Blur returns a copy of c convolved with a symmetric Gaussian of standard
// deviation sigma pixels. The Gaussian is approximated by three successive
// box blurs, so the cost per pixel does not depend on sigma.
// Pixels beyond the canvas edge repeat the edge pixel. sigma <= 0 returns
// an unmodified copy.
func Blur(c *Canvas, sigma float64) *Canvas {
	out := c.Clone()
	blurPlane(plane{pix: out.img.Pix, stride: out.img.Stride, w: out.Width(), h: out.Height(), ch: 4}, sigma)
	return out
}

// BlurMask is Blur for single-channel masks.
func BlurMask(m *Mask, sigma float64) *Mask {
	out := m.Clone()
	blurPlane(plane{pix: out.img.Pix, stride: out.img.Stride, w: out.Width(), h: out.Height(), ch: 1}, sigma)
	return out
}

// plane describes an interleaved 8-bit pixel buffer.
type plane struct {
	pix    []uint8
	stride int
	w, h   int
	ch     int
}

func blurPlane(p plane, sigma float64) {
	if sigma <= 0 || p.w == 0 || p.h == 0 {
		return
	}
	tmp := plane{pix: make([]uint8, p.w*p.h*p.ch), stride: p.w * p.ch, w: p.w, h: p.h, ch: p.ch}
	for _, size := range boxSizes(sigma, blurPasses) {
		r := (size - 1) / 2
		if r == 0 {
			continue
		}
		boxBlurH(p, tmp, r)
		boxBlurV(tmp, p, r)
	}
	Logger().Debug("blur", "sigma", sigma, "width", p.w, "height", p.h, "channels", p.ch)
}

// boxSizes returns the odd widths of n box filters whose successive
// application approximates a Gaussian with standard deviation sigma.
func boxSizes(sigma float64, n int) []int {
	wIdeal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	mIdeal := (12*sigma*sigma - float64(n*wl*wl) - float64(4*n*wl) - float64(3*n)) / float64(-4*wl-4)
	m := int(math.Round(mIdeal))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// boxBlurH averages each pixel with its r left and r right neighbours.
// Reads from src, writes to dst.
func boxBlurH(src, dst plane, r int) {
	d := 2*r + 1
	ch := src.ch
	sums := make([]int, ch)

	for y := 0; y < src.h; y++ {
		in := src.pix[y*src.stride : y*src.stride+src.w*ch]
		out := dst.pix[y*dst.stride : y*dst.stride+dst.w*ch]

		// Seed the window with the leftmost pixel repeated.
		for c := range sums {
			sums[c] = 0
		}
		for i := -r; i <= r; i++ {
			xi := clampIndex(i, src.w)
			for c := 0; c < ch; c++ {
				sums[c] += int(in[xi*ch+c])
			}
		}

		for x := 0; x < src.w; x++ {
			for c := 0; c < ch; c++ {
				out[x*ch+c] = roundDiv(sums[c], d)
			}
			// Slide the window: remove left edge, add right edge.
			oldX := clampIndex(x-r, src.w)
			newX := clampIndex(x+r+1, src.w)
			for c := 0; c < ch; c++ {
				sums[c] += int(in[newX*ch+c]) - int(in[oldX*ch+c])
			}
		}
	}
}

// boxBlurV averages each pixel with its r upper and r lower neighbours.
// Reads from src, writes to dst.
func boxBlurV(src, dst plane, r int) {
	d := 2*r + 1
	ch := src.ch
	sums := make([]int, ch)

	for x := 0; x < src.w; x++ {
		col := x * ch

		for c := range sums {
			sums[c] = 0
		}
		for i := -r; i <= r; i++ {
			yi := clampIndex(i, src.h)
			for c := 0; c < ch; c++ {
				sums[c] += int(src.pix[yi*src.stride+col+c])
			}
		}

		for y := 0; y < src.h; y++ {
			for c := 0; c < ch; c++ {
				dst.pix[y*dst.stride+col+c] = roundDiv(sums[c], d)
			}
			oldY := clampIndex(y-r, src.h)
			newY := clampIndex(y+r+1, src.h)
			for c := 0; c < ch; c++ {
				sums[c] += int(src.pix[newY*src.stride+col+c]) - int(src.pix[oldY*src.stride+col+c])
			}
		}
	}
}

// clampIndex clamps i to [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// roundDiv returns sum/d rounded to nearest, clamped to a byte.
func roundDiv(sum, d int) uint8 {
	v := (sum + d/2) / d
	if v > 255 {
		v = 255
	}
	// #nosec G115 -- v is in [0, 255]
	return uint8(v)
}
