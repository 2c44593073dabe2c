package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pawview/pawview/pkg/imageview"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(DebugEnv, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Reference.Width != 414 || cfg.Reference.Height != 896 {
		t.Errorf("reference = %+v, want 414x896", cfg.Reference)
	}
	if !cfg.LoadingEnabled() {
		t.Error("loading spinner should default on")
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
listings: /srv/pets.yaml
reference:
  width: 375
  height: 667
image_timeout: 3s
show_loading: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listings != "/srv/pets.yaml" {
		t.Errorf("Listings = %q", cfg.Listings)
	}
	if cfg.ReferenceMetrics().Width != 375 {
		t.Errorf("reference width = %v, want 375", cfg.ReferenceMetrics().Width)
	}
	if cfg.CellSize().Width != 8 {
		t.Errorf("cell width = %v, want default 8", cfg.CellSize().Width)
	}
	if cfg.ImageTimeout != 3*time.Second {
		t.Errorf("ImageTimeout = %v, want 3s", cfg.ImageTimeout)
	}
	if cfg.LoadingEnabled() {
		t.Error("show_loading: false should disable the spinner")
	}
	if cfg.AssetRoot() != "/srv" {
		t.Errorf("AssetRoot() = %q, want /srv", cfg.AssetRoot())
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cell:\n  width: 0\n  height: 16\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, want ErrInvalid", err)
	}

	if err := os.WriteFile(path, []byte("reference: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, want parse error", err)
	}
}

func TestDebugEnvSetsLogFile(t *testing.T) {
	t.Setenv(DebugEnv, "1")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, DefaultLogFile)
	}
}

func TestDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultPath(); got != "/tmp/xdg/pawview/config.yaml" {
		t.Errorf("DefaultPath() = %q", got)
	}
}

func TestImageOptions(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantWidth  imageview.Dimension
		wantHeight imageview.Dimension
	}{
		{"defaults", Default(), imageview.Percent(100), imageview.Dimension{}},
		{"percent width", Config{ImageWidth: "60%"}, imageview.Percent(60), imageview.Dimension{}},
		{"points and auto", Config{ImageWidth: "320", ImageHeight: "auto"}, imageview.Points(320), imageview.Auto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.cfg.ImageOptions()
			if opts.Width != tt.wantWidth {
				t.Errorf("Width = %v, want %v", opts.Width, tt.wantWidth)
			}
			if opts.Height != tt.wantHeight {
				t.Errorf("Height = %v, want %v", opts.Height, tt.wantHeight)
			}
			if !opts.ShowLoading {
				t.Error("ShowLoading should follow show_loading (default on)")
			}
		})
	}
}

func TestValidateRejectsBadImageDimensions(t *testing.T) {
	for _, field := range []string{"image_width: wide", "image_height: 50%%", "image_aspect_ratio: -1"} {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(field+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: Load() error = %v, want ErrInvalid", field, err)
		}
	}
}
