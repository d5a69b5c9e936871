// Package shape turns a canvas size and a set of proportion constants into
// absolute pixel geometry for the icon compositor.
//
// All proportions are fractions: the padding and corner radius are
// fractions of the canvas size, everything else is a fraction of the
// content size (the canvas minus twice the padding). [Build] validates
// the proportions and returns an immutable [Descriptor].
//
//	desc, err := shape.Build(3072, shape.DefaultProportions(), shape.Letter)
//	if err != nil {
//		return err
//	}
//	bg := desc.BackgroundMask()
//	letter := desc.SilhouetteMask()
//
// Curved strokes such as the letter bowl are approximated by sampling an
// elliptical arc into a polygon; [Proportions.ArcSamples] controls the
// fidelity.
package shape
