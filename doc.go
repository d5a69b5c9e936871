// Package assetgen provides the raster primitives used to generate
// application icons and installer artwork.
//
// # Overview
//
// Everything assetgen draws is built from a handful of filled shapes
// (rectangles, rounded rectangles, ellipses, polygons, thick line segments),
// vertical gradients, opacity masks and Gaussian blur. There is no stateful
// drawing context: every operation takes the destination [Canvas] or [Mask]
// explicitly.
//
//	c := assetgen.NewCanvas(512, 512)
//	tile := assetgen.RoundedRectPath(assetgen.R(16, 16, 496, 496), 96)
//	assetgen.FillPath(c, tile, assetgen.RGB(12, 12, 24))
//
//	m := assetgen.NewMask(512, 512)
//	m.Fill(tile)
//	glow := assetgen.PasteWithMask(assetgen.Blur(layer, 24), m)
//	assetgen.Composite(c, glow)
//
// # Architecture
//
// The module is organized into:
//   - assetgen: Canvas, Mask, Path, colors, blur, compositing, errors, logging
//   - shape: proportions → absolute geometry (letterform, ghost, terminal glyph)
//   - compose: renders layers in a fixed z-order onto the master canvas
//   - export: resizing and PNG / iconset / icns / ico / xcassets output
//   - dmg: the installer window background
//   - pipeline: shape → compose → export, driven by cmd/assetgen
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, increases clockwise on screen
//
// Canvases store premultiplied RGBA ([image.RGBA]); colors are given
// non-premultiplied ([Color]).
package assetgen
