package export

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/phantom-term/assetgen"
)

// IOSUniversalSize is the edge length of the single raster iOS derives
// every app icon size from.
const IOSUniversalSize = 1024

const (
	appIconSet     = "AppIcon.appiconset"
	manifestName   = "Contents.json"
	universalImage = "AppIcon.png"
)

// Manifest is the Contents.json document of an asset catalog folder.
type Manifest struct {
	Images []ManifestImage `json:"images,omitempty"`
	Info   ManifestInfo    `json:"info"`
}

// ManifestImage describes one raster of an app icon set.
type ManifestImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Platform string `json:"platform,omitempty"`
	Scale    string `json:"scale,omitempty"`
	Size     string `json:"size"`
}

// ManifestInfo identifies the tool that wrote a manifest.
type ManifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

var xcodeInfo = ManifestInfo{Author: "xcode", Version: 1}

// AppIconSet returns the icon set folder inside the asset catalog at dir.
func AppIconSet(dir string) string {
	return filepath.Join(dir, appIconSet)
}

// catalog writes an asset catalog with a root manifest and an app icon set.
// The icon set is rebuilt from scratch.
func (r *run) catalog(t Target) ([]string, error) {
	size := t.Size
	if size == 0 {
		size = IOSUniversalSize
	}
	if t.Platform != MacOS && size > r.size {
		return nil, assetgen.Geometryf("ios catalog needs a %d px master, got %d px", size, r.size)
	}

	root := filepath.Join(t.Path, manifestName)
	if err := writeManifest(root, Manifest{Info: xcodeInfo}); err != nil {
		return nil, err
	}
	files := []string{root}

	dir := AppIconSet(t.Path)
	if err := recreateDir(dir); err != nil {
		return files, err
	}

	var (
		m   Manifest
		err error
	)
	switch t.Platform {
	case MacOS:
		m, err = r.macCatalog(dir, &files)
	default:
		m, err = r.iosCatalog(dir, size, &files)
	}
	if err != nil {
		return files, err
	}

	path := filepath.Join(dir, manifestName)
	if err := writeManifest(path, m); err != nil {
		return files, err
	}
	return append(files, path), nil
}

// iosCatalog writes the single universal raster modern iOS derives every
// other size from.
func (r *run) iosCatalog(dir string, size int, files *[]string) (Manifest, error) {
	img, err := r.raster(size)
	if err != nil {
		return Manifest{}, err
	}
	path := filepath.Join(dir, universalImage)
	if err := r.writePNG(path, img); err != nil {
		return Manifest{}, err
	}
	*files = append(*files, path)

	n := img.Bounds().Dx()
	return Manifest{
		Images: []ManifestImage{{
			Filename: universalImage,
			Idiom:    "universal",
			Platform: string(IOS),
			Size:     fmt.Sprintf("%dx%d", n, n),
		}},
		Info: xcodeInfo,
	}, nil
}

// macCatalog writes one raster per canonical variant.
func (r *run) macCatalog(dir string, files *[]string) (Manifest, error) {
	m := Manifest{Info: xcodeInfo}
	for _, v := range VariantsUpTo(r.size) {
		img, err := r.raster(v.Pixels())
		if err != nil {
			return Manifest{}, err
		}
		path := filepath.Join(dir, v.Filename())
		if err := r.writePNG(path, img); err != nil {
			return Manifest{}, err
		}
		*files = append(*files, path)
		m.Images = append(m.Images, ManifestImage{
			Filename: v.Filename(),
			Idiom:    "mac",
			Scale:    v.ScaleString(),
			Size:     v.SizeString(),
		})
	}
	return m, nil
}

// writeManifest writes m as two-space indented JSON with a trailing newline.
func writeManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return writeFile(path, func(w io.Writer) error {
		_, err := w.Write(append(data, '\n'))
		return err
	})
}
