package export

import (
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/phantom-term/assetgen"
)

// ico writes a Windows icon holding every ICOSizes entry that fits the
// master.
func (r *run) ico(path string) ([]string, error) {
	var imgs []image.Image
	for _, n := range ICOSizes {
		if n > r.size {
			break
		}
		img, err := r.raster(n)
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	if len(imgs) == 0 {
		return nil, assetgen.Geometryf("master of %d px is smaller than every ico entry", r.size)
	}

	err := writeFile(path, func(w io.Writer) error {
		return ico.EncodeAll(w, imgs)
	})
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}
