package export

import (
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/phantom-term/assetgen"
)

func mkdirAll(dir string) error {
	return assetgen.NewIOError("mkdir", dir, os.MkdirAll(dir, 0o755))
}

// recreateDir deletes dir with everything in it and creates it empty.
func recreateDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return assetgen.NewIOError("remove", dir, err)
	}
	return mkdirAll(dir)
}

// writeFile creates path, creating its parent directories, and streams the
// output of write into it.
func writeFile(path string, write func(io.Writer) error) error {
	if err := mkdirAll(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return assetgen.NewIOError("create", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return assetgen.NewIOError("write", path, err)
	}
	if err := f.Close(); err != nil {
		return assetgen.NewIOError("write", path, err)
	}
	assetgen.Logger().Debug("file written", "path", path)
	return nil
}

func (r *run) writePNG(path string, img image.Image) error {
	return r.e.WritePNG(path, img)
}

// WritePNG encodes img to path with the exporter's compression level,
// creating parent directories as needed.
func (e *Exporter) WritePNG(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error {
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(e.compression))
	})
}

// Copy copies the file at from to to, creating to's parent directories.
// Copying a file onto itself is a no-op.
func Copy(from, to string) error {
	if filepath.Clean(from) == filepath.Clean(to) {
		return nil
	}
	src, err := os.Open(from)
	if err != nil {
		return assetgen.NewIOError("copy", from, err)
	}
	defer src.Close()

	if dst, err := os.Stat(to); err == nil {
		info, err := src.Stat()
		if err != nil {
			return assetgen.NewIOError("copy", from, err)
		}
		if os.SameFile(info, dst) {
			return nil
		}
	}

	return writeFile(to, func(w io.Writer) error {
		_, err := io.Copy(w, src)
		return err
	})
}
