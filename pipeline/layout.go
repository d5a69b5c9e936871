package pipeline

import "path/filepath"

// Layout lists where each artifact is written. Relative paths are resolved
// against the pipeline root; an empty path skips that artifact.
type Layout struct {
	MasterPNG           string
	Iconset             string
	ICNS                string
	ICO                 string
	Catalog             string // iOS Assets.xcassets folder
	MacOSIcon           string // copy of the ICNS bundle for the menu bar app
	DMGBackground       string
	DMGBackgroundRetina string
}

// DefaultLayout returns the repository layout of the Phantom apps.
func DefaultLayout() Layout {
	return Layout{
		MasterPNG:           filepath.Join("build", "phantom-icon.png"),
		Iconset:             filepath.Join("build", "AppIcon.iconset"),
		ICNS:                filepath.Join("build", "AppIcon.icns"),
		ICO:                 filepath.Join("build", "AppIcon.ico"),
		Catalog:             filepath.Join("ios", "Phantom", "Assets.xcassets"),
		MacOSIcon:           filepath.Join("macos", "PhantomBar", "Resources", "AppIcon.icns"),
		DMGBackground:       filepath.Join("build", "dmg-background.png"),
		DMGBackgroundRetina: filepath.Join("build", "dmg-background@2x.png"),
	}
}

func (l Layout) resolve(root string) Layout {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, p)
	}
	return Layout{
		MasterPNG:           join(l.MasterPNG),
		Iconset:             join(l.Iconset),
		ICNS:                join(l.ICNS),
		ICO:                 join(l.ICO),
		Catalog:             join(l.Catalog),
		MacOSIcon:           join(l.MacOSIcon),
		DMGBackground:       join(l.DMGBackground),
		DMGBackgroundRetina: join(l.DMGBackgroundRetina),
	}
}
