// Package config loads the generator settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/phantom-term/assetgen"
	"github.com/phantom-term/assetgen/compose"
	"github.com/phantom-term/assetgen/dmg"
	"github.com/phantom-term/assetgen/export"
	"github.com/phantom-term/assetgen/internal/logging"
	"github.com/phantom-term/assetgen/pipeline"
	"github.com/phantom-term/assetgen/shape"
)

// Config holds all generator configuration.
type Config struct {
	Root    string        `yaml:"root"`
	Icon    IconConfig    `yaml:"icon"`
	Outputs OutputsConfig `yaml:"outputs"`
	DMG     DMGConfig     `yaml:"dmg"`
	Logging LoggingConfig `yaml:"logging"`
}

// IconConfig holds the icon artwork settings.
type IconConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Size        int           `yaml:"size"`
	RenderScale int           `yaml:"render_scale"`
	CatalogSize int           `yaml:"catalog_size"`
	Mark        string        `yaml:"mark"`
	Palette     PaletteConfig `yaml:"palette"`
}

// PaletteConfig holds the icon colors as hex strings.
type PaletteConfig struct {
	Background   string `yaml:"background"`
	LetterTop    string `yaml:"letter_top"`
	LetterBottom string `yaml:"letter_bottom"`
	Glow         string `yaml:"glow"`
	GlowBright   string `yaml:"glow_bright"`
}

// OutputsConfig holds artifact paths relative to the root. An empty path
// skips the artifact.
type OutputsConfig struct {
	MasterPNG           string `yaml:"master_png"`
	Iconset             string `yaml:"iconset"`
	ICNS                string `yaml:"icns"`
	ICO                 string `yaml:"ico"`
	Catalog             string `yaml:"catalog"`
	MacOSIcon           string `yaml:"macos_icon"`
	DMGBackground       string `yaml:"dmg_background"`
	DMGBackgroundRetina string `yaml:"dmg_background_retina"`
}

// DMGConfig holds the disk image background settings.
type DMGConfig struct {
	Enabled     bool `yaml:"enabled"`
	Retina      bool `yaml:"retina"`
	FolderGlyph bool `yaml:"folder_glyph"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the settings of the release build.
func Default() *Config {
	pal := compose.DefaultPalette()
	l := pipeline.DefaultLayout()
	lg := logging.DefaultConfig()
	return &Config{
		Root: ".",
		Icon: IconConfig{
			Enabled:     true,
			Size:        1024,
			RenderScale: 3,
			CatalogSize: export.IOSUniversalSize,
			Mark:        string(shape.Letter),
			Palette: PaletteConfig{
				Background:   pal.Background.Hex(),
				LetterTop:    pal.LetterTop.Hex(),
				LetterBottom: pal.LetterBottom.Hex(),
				Glow:         pal.Glow.Hex(),
				GlowBright:   pal.GlowBright.Hex(),
			},
		},
		Outputs: OutputsConfig{
			MasterPNG:           filepath.ToSlash(l.MasterPNG),
			Iconset:             filepath.ToSlash(l.Iconset),
			ICNS:                filepath.ToSlash(l.ICNS),
			ICO:                 filepath.ToSlash(l.ICO),
			Catalog:             filepath.ToSlash(l.Catalog),
			MacOSIcon:           filepath.ToSlash(l.MacOSIcon),
			DMGBackground:       filepath.ToSlash(l.DMGBackground),
			DMGBackgroundRetina: filepath.ToSlash(l.DMGBackgroundRetina),
		},
		DMG: DMGConfig{
			Enabled:     true,
			Retina:      true,
			FolderGlyph: true,
		},
		Logging: LoggingConfig{
			Level:  lg.Level,
			Format: lg.Format,
		},
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return assetgen.NewIOError("read", path, err)
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() error {
	if v := os.Getenv("ASSETGEN_ROOT"); v != "" {
		c.Root = v
	}
	if v := os.Getenv("ASSETGEN_MARK"); v != "" {
		c.Icon.Mark = v
	}
	if v := os.Getenv("ASSETGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ASSETGEN_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("ASSETGEN_LOG_FILE"); v != "" {
		c.Logging.File = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"ASSETGEN_ICON_SIZE", &c.Icon.Size},
		{"ASSETGEN_RENDER_SCALE", &c.Icon.RenderScale},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"ASSETGEN_ICON", &c.Icon.Enabled},
		{"ASSETGEN_DMG", &c.DMG.Enabled},
		{"ASSETGEN_DMG_RETINA", &c.DMG.Retina},
	}
	for _, e := range bools {
		if v := os.Getenv(e.key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = b
		}
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("root is required")
	}
	if c.Icon.Size <= 0 {
		return fmt.Errorf("invalid icon size: %d", c.Icon.Size)
	}
	if c.Icon.RenderScale < 1 {
		return fmt.Errorf("invalid render scale: %d", c.Icon.RenderScale)
	}
	if c.Icon.CatalogSize <= 0 {
		return fmt.Errorf("invalid catalog size: %d", c.Icon.CatalogSize)
	}
	if _, err := shape.ParseMarkKind(c.Icon.Mark); err != nil {
		return err
	}
	if _, err := c.Icon.Palette.palette(); err != nil {
		return err
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	if !c.Icon.Enabled && !c.DMG.Enabled {
		return errors.New("icon and dmg are both disabled")
	}
	return nil
}

// palette overlays the configured colors on the default palette.
func (p PaletteConfig) palette() (compose.Palette, error) {
	pal := compose.DefaultPalette()
	fields := []struct {
		name string
		hex  string
		dst  *assetgen.Color
	}{
		{"background", p.Background, &pal.Background},
		{"letter_top", p.LetterTop, &pal.LetterTop},
		{"letter_bottom", p.LetterBottom, &pal.LetterBottom},
		{"glow", p.Glow, &pal.Glow},
		{"glow_bright", p.GlowBright, &pal.GlowBright},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := assetgen.ParseHex(f.hex)
		if err != nil {
			return compose.Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return pal, nil
}

// Layout returns the artifact paths.
func (o OutputsConfig) Layout() pipeline.Layout {
	return pipeline.Layout{
		MasterPNG:           filepath.FromSlash(o.MasterPNG),
		Iconset:             filepath.FromSlash(o.Iconset),
		ICNS:                filepath.FromSlash(o.ICNS),
		ICO:                 filepath.FromSlash(o.ICO),
		Catalog:             filepath.FromSlash(o.Catalog),
		MacOSIcon:           filepath.FromSlash(o.MacOSIcon),
		DMGBackground:       filepath.FromSlash(o.DMGBackground),
		DMGBackgroundRetina: filepath.FromSlash(o.DMGBackgroundRetina),
	}
}

// LogConfig converts the logging section for the logging package.
func (c *Config) LogConfig() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Format = c.Logging.Format
	lc.FilePath = c.Logging.File
	return lc
}

// PipelineOptions converts the configuration into pipeline options.
func (c *Config) PipelineOptions() ([]pipeline.Option, error) {
	mark, err := shape.ParseMarkKind(c.Icon.Mark)
	if err != nil {
		return nil, err
	}
	pal, err := c.Icon.Palette.palette()
	if err != nil {
		return nil, err
	}
	dl := dmg.DefaultLayout()
	dl.FolderGlyph = c.DMG.FolderGlyph

	return []pipeline.Option{
		pipeline.WithRoot(c.Root),
		pipeline.WithSize(c.Icon.Size),
		pipeline.WithRenderScale(c.Icon.RenderScale),
		pipeline.WithCatalogSize(c.Icon.CatalogSize),
		pipeline.WithMark(mark),
		pipeline.WithPalette(pal),
		pipeline.WithLayout(c.Outputs.Layout()),
		pipeline.WithIcon(c.Icon.Enabled),
		pipeline.WithDMG(c.DMG.Enabled),
		pipeline.WithRetina(c.DMG.Retina),
		pipeline.WithDMGLayout(dl),
	}, nil
}
