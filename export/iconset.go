package export

import (
	"path/filepath"

	"github.com/phantom-term/assetgen"
)

// iconset writes one PNG per variant into a freshly recreated folder.
func (r *run) iconset(dir string) ([]string, error) {
	variants := VariantsUpTo(r.size)
	if len(variants) == 0 {
		return nil, assetgen.Geometryf("master of %d px is smaller than every icon set variant", r.size)
	}
	if err := recreateDir(dir); err != nil {
		return nil, err
	}

	files := make([]string, 0, len(variants))
	for _, v := range variants {
		img, err := r.raster(v.Pixels())
		if err != nil {
			return files, err
		}
		path := filepath.Join(dir, v.Filename())
		if err := r.writePNG(path, img); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}
