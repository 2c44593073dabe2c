// Package config loads pawview settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pawview/pawview/pkg/imageview"
	"github.com/pawview/pawview/pkg/responsive"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// DebugEnv forces logging to DefaultLogFile when set to 1.
const DebugEnv = "PAWVIEW_DEBUG"

// DefaultLogFile is used when DebugEnv is set and no log file is configured.
const DefaultLogFile = "pawview.log"

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config is the on-disk configuration.
type Config struct {
	Listings     string        `yaml:"listings"`
	AssetsDir    string        `yaml:"assets_dir"`
	FavoritesDB  string        `yaml:"favorites_db"`
	Reference    Size          `yaml:"reference"`
	Cell         Size          `yaml:"cell"`
	ImageTimeout time.Duration `yaml:"image_timeout"`
	ShowLoading  *bool         `yaml:"show_loading"`
	ImageWidth   string        `yaml:"image_width"`
	ImageHeight  string        `yaml:"image_height"`
	ImageAspect  float64       `yaml:"image_aspect_ratio"`
	FontPath     string        `yaml:"font_path"`
	LogFile      string        `yaml:"log_file"`
}

// Dir returns the pawview config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pawview")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pawview"
	}
	return filepath.Join(home, ".config", "pawview")
}

// DefaultPath is the config file location when none is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the built-in configuration.
func Default() Config {
	show := true
	return Config{
		Listings:     "pets.jsonl",
		FavoritesDB:  filepath.Join(Dir(), "favorites.db"),
		Reference:    Size{Width: responsive.DefaultReference.Width, Height: responsive.DefaultReference.Height},
		Cell:         Size{Width: responsive.DefaultCellSize.Width, Height: responsive.DefaultCellSize.Height},
		ImageTimeout: 10 * time.Second,
		ShowLoading:  &show,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return cfg.withEnv(), nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg.withEnv(), nil
}

func (c Config) withEnv() Config {
	if os.Getenv(DebugEnv) == "1" && c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Listings == "":
		return fmt.Errorf("%w: listings path is required", ErrInvalid)
	case c.Reference.Width <= 0 || c.Reference.Height <= 0:
		return fmt.Errorf("%w: reference size must be positive, got %vx%v", ErrInvalid, c.Reference.Width, c.Reference.Height)
	case c.Cell.Width <= 0 || c.Cell.Height <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %vx%v", ErrInvalid, c.Cell.Width, c.Cell.Height)
	case c.ImageTimeout < 0:
		return fmt.Errorf("%w: image_timeout must not be negative", ErrInvalid)
	case c.ImageAspect < 0:
		return fmt.Errorf("%w: image_aspect_ratio must not be negative", ErrInvalid)
	}
	if _, err := imageview.ParseDimension(c.ImageWidth); err != nil {
		return fmt.Errorf("%w: image_width: %v", ErrInvalid, err)
	}
	if _, err := imageview.ParseDimension(c.ImageHeight); err != nil {
		return fmt.Errorf("%w: image_height: %v", ErrInvalid, err)
	}
	return nil
}

// ImageOptions builds the photo display options. Unset or unparsable
// dimensions keep the display defaults; Validate reports the latter.
func (c Config) ImageOptions() imageview.Options {
	opts := imageview.DefaultOptions()
	opts.ShowLoading = c.LoadingEnabled()
	if w, err := imageview.ParseDimension(c.ImageWidth); err == nil && w.IsSet() {
		opts.Width = w
	}
	if h, err := imageview.ParseDimension(c.ImageHeight); err == nil && h.IsSet() {
		opts.Height = h
	}
	opts.AspectRatio = c.ImageAspect
	return opts
}

// ReferenceMetrics returns the design baseline.
func (c Config) ReferenceMetrics() responsive.Reference {
	return responsive.Reference{Width: c.Reference.Width, Height: c.Reference.Height}
}

// CellSize returns the terminal cell footprint.
func (c Config) CellSize() responsive.CellSize {
	return responsive.CellSize{Width: c.Cell.Width, Height: c.Cell.Height}
}

// LoadingEnabled reports whether the loading spinner is shown.
func (c Config) LoadingEnabled() bool {
	return c.ShowLoading == nil || *c.ShowLoading
}

// AssetRoot resolves the directory local photos are relative to, defaulting
// to the listings file's directory.
func (c Config) AssetRoot() string {
	if c.AssetsDir != "" {
		return c.AssetsDir
	}
	return filepath.Dir(c.Listings)
}
