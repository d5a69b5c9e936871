package export

import "fmt"

// Variant is one entry of a macOS icon set: a logical size in points at a
// display scale.
type Variant struct {
	Points int
	Scale  int
}

// CanonicalVariants is the macOS icon set: 16, 32, 128, 256 and 512 points
// at 1x and 2x.
var CanonicalVariants = []Variant{
	{16, 1}, {16, 2},
	{32, 1}, {32, 2},
	{128, 1}, {128, 2},
	{256, 1}, {256, 2},
	{512, 1}, {512, 2},
}

// ICOSizes are the pixel sizes packed into a Windows icon.
var ICOSizes = []int{16, 24, 32, 48, 64, 128, 256}

// Pixels returns the raster edge length.
func (v Variant) Pixels() int {
	return v.Points * v.Scale
}

// Filename returns the icon set file name, e.g. "icon_16x16@2x.png".
func (v Variant) Filename() string {
	if v.Scale == 1 {
		return fmt.Sprintf("icon_%dx%d.png", v.Points, v.Points)
	}
	return fmt.Sprintf("icon_%dx%d@%dx.png", v.Points, v.Points, v.Scale)
}

// SizeString returns the catalog size field, e.g. "16x16".
func (v Variant) SizeString() string {
	return fmt.Sprintf("%dx%d", v.Points, v.Points)
}

// ScaleString returns the catalog scale field, e.g. "2x".
func (v Variant) ScaleString() string {
	return fmt.Sprintf("%dx", v.Scale)
}

// OSType returns the four-character ICNS chunk type holding this variant.
func (v Variant) OSType() string {
	switch v {
	case Variant{16, 1}:
		return "icp4"
	case Variant{16, 2}:
		return "ic11"
	case Variant{32, 1}:
		return "icp5"
	case Variant{32, 2}:
		return "ic12"
	case Variant{128, 1}:
		return "ic07"
	case Variant{128, 2}:
		return "ic13"
	case Variant{256, 1}:
		return "ic08"
	case Variant{256, 2}:
		return "ic14"
	case Variant{512, 1}:
		return "ic09"
	case Variant{512, 2}:
		return "ic10"
	}
	return ""
}

// VariantsUpTo returns the canonical variants whose rasters are at most
// maxPixels wide.
func VariantsUpTo(maxPixels int) []Variant {
	var out []Variant
	for _, v := range CanonicalVariants {
		if v.Pixels() <= maxPixels {
			out = append(out, v)
		}
	}
	return out
}
