// Package export resizes a composed master raster and writes it out in
// platform icon containers.
//
// Supported formats:
//   - png: a single flat raster
//   - iconset: a macOS .iconset folder, one PNG per (size, scale) variant
//   - icns: a multi-resolution macOS icon bundle
//   - ico: a multi-resolution Windows icon
//   - xcassets: an Xcode asset catalog with Contents.json manifests
//
// Downscaling always uses a Lanczos filter and never upscales. Within one
// [Exporter.Export] call each pixel size is resized once and shared by
// every target that needs it; the variant matching the master size reuses
// the master itself.
//
// Folder outputs (iconset, the appiconset inside a catalog) are deleted and
// recreated on every export so that no stale files survive a change of the
// variant set.
package export
