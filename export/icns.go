package export

import (
	"io"

	"github.com/jackmordaunt/icns/v3"

	"github.com/phantom-term/assetgen"
)

// icns writes a bundle with one entry per canonical variant.
func (r *run) icns(path string) ([]string, error) {
	variants := VariantsUpTo(r.size)
	if len(variants) == 0 {
		return nil, assetgen.Geometryf("master of %d px is smaller than every icns entry", r.size)
	}

	set := &icns.IconSet{}
	for _, v := range variants {
		img, err := r.raster(v.Pixels())
		if err != nil {
			return nil, err
		}
		set.Icons = append(set.Icons, &icns.Icon{
			Type:  icns.OsType{ID: v.OSType(), Size: uint(v.Pixels())},
			Image: img,
		})
	}

	err := writeFile(path, func(w io.Writer) error {
		_, err := set.WriteTo(w)
		return err
	})
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}
