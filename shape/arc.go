package shape

import (
	"math"

	"github.com/phantom-term/assetgen"
)

// Radii are the horizontal and vertical radii of an ellipse.
type Radii struct {
	X, Y float64
}

// Arc samples the elliptical arc around center from startDeg to endDeg in
// samples equal angular steps, returning samples+1 points. Angles are in
// degrees and grow clockwise on screen, so -90 is the top of the ellipse.
func Arc(center assetgen.Point, r Radii, startDeg, endDeg float64, samples int) []assetgen.Point {
	if samples < 1 {
		samples = 1
	}
	pts := make([]assetgen.Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		a := (startDeg + t*(endDeg-startDeg)) * math.Pi / 180
		pts = append(pts, assetgen.Pt(center.X+r.X*math.Cos(a), center.Y+r.Y*math.Sin(a)))
	}
	return pts
}

// Crescent returns the closed outline of a thick arc: the outer arc
// followed by the inner arc walked backwards.
func Crescent(center assetgen.Point, outer, inner Radii, startDeg, endDeg float64, samples int) []assetgen.Point {
	out := Arc(center, outer, startDeg, endDeg, samples)
	in := Arc(center, inner, startDeg, endDeg, samples)
	for i := len(in) - 1; i >= 0; i-- {
		out = append(out, in[i])
	}
	return out
}
