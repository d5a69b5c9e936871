package export

import (
	"fmt"
	"strings"

	"github.com/phantom-term/assetgen"
)

// Format is an output container type.
type Format string

// Supported formats.
const (
	PNG      Format = "png"
	Iconset  Format = "iconset"
	ICNS     Format = "icns"
	ICO      Format = "ico"
	XCAssets Format = "xcassets"
)

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.valid() {
		return "", fmt.Errorf("%w: %q", assetgen.ErrUnsupportedFormat, s)
	}
	return f, nil
}

func (f Format) valid() bool {
	switch f {
	case PNG, Iconset, ICNS, ICO, XCAssets:
		return true
	}
	return false
}

// Platform selects the asset catalog layout.
type Platform string

// Catalog platforms.
const (
	IOS   Platform = "ios"
	MacOS Platform = "macos"
)

// Target is one requested output.
type Target struct {
	// Size is the pixel size of a png target (zero means the master size)
	// and of the single universal raster of an iOS catalog (zero means
	// IOSUniversalSize). Other formats use their own size sets.
	Size     int
	Path     string
	Format   Format
	Platform Platform // xcassets only; defaults to IOS
}

// Artifact describes what one target produced.
type Artifact struct {
	Target Target
	Files  []string // every file written, in write order
}
